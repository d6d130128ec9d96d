package pipeline

import (
	"golang.org/x/net/html"
)

const paywallDiffThreshold = 6

// RemovePaywallDuplicates looks for elements carrying an amp-access
// attribute whose preceding sibling shares the same tag and also carries
// amp-access — the shape AMP pages use for a paywalled/teaser pair sharing
// one slot. When the structural-summary diff between the two looks like
// "mostly the same content" (maxclines at or above the threshold) and the
// earlier sibling carries more average text per node, the later (narrower,
// teaser) sibling is dropped in favor of keeping the fuller one in place.
func RemovePaywallDuplicates(body *html.Node) {
	candidates := ampAccessElements(body)
	for _, elem := range candidates {
		if elem.Parent == nil {
			continue
		}
		prev := prevReal(elem)
		if prev == nil || !IsElement(prev) {
			continue
		}
		if Tag(prev) != Tag(elem) {
			continue
		}
		if _, ok := Attr(prev, "amp-access"); !ok {
			continue
		}

		prevTree := StructuralSummary(prev)
		curTree := StructuralSummary(elem)
		_, _, maxclines := diffClassify(summaryLines(prevTree), summaryLines(curTree))
		if maxclines < paywallDiffThreshold {
			continue
		}

		if avgTextLength(prevTree) > avgTextLength(curTree) {
			Remove(elem)
		}
	}
}

func ampAccessElements(body *html.Node) []*html.Node {
	var out []*html.Node
	for _, n := range Iter(body) {
		if !IsElement(n) {
			continue
		}
		if _, ok := Attr(n, "amp-access"); ok {
			out = append(out, n)
		}
	}
	return out
}

func avgTextLength(entries []SummaryEntry) float64 {
	if len(entries) == 0 {
		return 0
	}
	sum := 0
	for _, e := range entries {
		sum += e.TextLength
	}
	return float64(sum) / float64(len(entries))
}
