package pipeline

import (
	"fmt"

	"golang.org/x/net/html"
)

// RecoverHeadings detaches the container from the page, then looks for a
// heading that sat above it: the single outermost heading strictly shallower
// than highestHeaderLevel, plus every h2-h6 remaining anywhere in body once
// one is found. Recovered headings are prepended ahead of content, the
// walker's already-emitted fragments.
//
// The final step — once any heading has been recovered, every remaining
// element child of the last heading's parent is appended as well — can pull
// in unrelated sibling content alongside the genuine headline. That is the
// behavior as designed, not a bug to paper over, and is preserved here
// rather than "fixed".
func RecoverHeadings(top, body *html.Node, highestHeaderLevel int, content []*html.Node) []*html.Node {
	RemoveAfter(top)

	var parent *html.Node
	if top.Parent != nil {
		parent = top.Parent
		Remove(top)
	}

	var headers []*html.Node
	lowestHdr := 0

	for i := 1; i < highestHeaderLevel; i++ {
		matches := IterTag(body, fmt.Sprintf("h%d", i))
		if len(matches) == 0 {
			continue
		}
		elem := matches[len(matches)-1]
		ClearTail(elem)
		headers = append(headers, elem)
		RemoveBefore(elem)
		parent = elem.Parent
		Remove(elem)
		lowestHdr = i
		break
	}

	if lowestHdr != 0 {
		for _, elem := range Iter(body) {
			if !IsElement(elem) {
				continue
			}
			switch Tag(elem) {
			case "h2", "h3", "h4", "h5", "h6":
				ClearTail(elem)
				headers = append(headers, elem)
				parent = elem.Parent
				Remove(elem)
			}
		}

		if parent != nil {
			for _, elem := range Children(parent) {
				if !IsElement(elem) {
					continue
				}
				ClearTail(elem)
				headers = append(headers, elem)
			}
		}
	}

	return append(headers, content...)
}
