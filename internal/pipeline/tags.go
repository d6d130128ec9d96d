package pipeline

import (
	"sort"
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Categorise maps an element to an integer score: positive for tags that
// usually carry article content, negative for tags that usually carry
// clutter, zero for tags that carry neither signal on their own. Non-element
// nodes (comments, doctypes) always score -1, same as any unrecognised tag.
func Categorise(n *html.Node) int {
	if !IsElement(n) {
		return -1
	}

	result := 0
	switch Tag(n) {
	case "img":
		result = categoriseImg(n)
	case "p":
		result = 20
	case "article", "dd", "dt", "figure", "h1", "h2", "h3", "h4", "h5", "h6", "h7", "li":
		result = 10
	case "dl", "ol", "table", "ul":
		result = 1
	case "a":
		if _, ok := Attr(n, "onclick"); ok {
			result = -5
		} else if href, ok := Attr(n, "href"); ok && strings.HasPrefix(href, "http") {
			result = -2
		} else {
			result = 0
		}
	case "b", "br", "em", "i", "div", "small", "span", "strong", "tbody", "td", "thead", "tr":
		result = 0
	case "blink", "script":
		result = -5
	case "amp-lightbox":
		result = -20
	default:
		result = -1
	}

	if itemprop, ok := Attr(n, "itemprop"); ok {
		switch itemprop {
		case "article", "articleBody":
			result += 50
		case "text":
			result += 30
		case "articleSection", "dateCreated", "headline", "description", "author", "publisher":
			result += 10
		}
	}

	return result
}

func categoriseImg(n *html.Node) int {
	src, hasSrc := Attr(n, "src")
	srcset, _ := Attr(n, "srcset")
	noSrc := !hasSrc || src == ""

	if noSrc && srcset != "" {
		cands := parseSrcSet(srcset)
		if len(cands) == 0 {
			return -3
		}
		maxWidth := cands[0].Width
		for _, c := range cands {
			if c.Width > maxWidth {
				maxWidth = c.Width
			}
		}
		return maxWidth / 10
	}

	if noSrc || strings.ContainsAny(src, "?&;") {
		return -5
	}

	widthStr, hasW := Attr(n, "width")
	heightStr, hasH := Attr(n, "height")
	if hasW && widthStr != "" && hasH && heightStr != "" {
		width, err1 := strconv.Atoi(widthStr)
		height, err2 := strconv.Atoi(heightStr)
		if err1 != nil || err2 != nil {
			return -3
		}
		if width*height > 10000 {
			return (width * height) / 16
		}
		return -3
	}

	title, _ := Attr(n, "title")
	alt, _ := Attr(n, "alt")
	return 4 * (len(title) + len(alt))
}

// SrcSetCandidate is one responsive image candidate parsed out of a srcset
// attribute: a URL and the declared pixel width of its descriptor (0 if the
// descriptor isn't a width descriptor).
type SrcSetCandidate struct {
	Width int
	URL   string
}

// parseSrcSet splits a srcset attribute into candidates, sorted ascending by
// (width, url). Entries with no descriptor token at all are malformed and
// dropped; entries whose descriptor isn't a width ("600w") keep width 0
// rather than being dropped, matching the scoring table's candidate scan.
func parseSrcSet(raw string) []SrcSetCandidate {
	var out []SrcSetCandidate
	for _, part := range strings.Split(raw, ",") {
		fields := strings.Fields(strings.TrimSpace(part))
		if len(fields) < 2 {
			continue
		}
		url, desc := fields[0], fields[1]
		width := 0
		if strings.HasSuffix(desc, "w") {
			if w, err := strconv.Atoi(desc[:len(desc)-1]); err == nil {
				width = w
			}
		}
		out = append(out, SrcSetCandidate{Width: width, URL: url})
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Width != out[j].Width {
			return out[i].Width < out[j].Width
		}
		return out[i].URL < out[j].URL
	})
	return out
}

// positiveSrcSet is parseSrcSet filtered to candidates with a genuine
// positive width, used by image refinement (unlike categorise's scan, which
// keeps zero-width entries in the running).
func positiveSrcSet(raw string) []SrcSetCandidate {
	all := parseSrcSet(raw)
	out := all[:0:0]
	for _, c := range all {
		if c.Width > 0 {
			out = append(out, c)
		}
	}
	return out
}
