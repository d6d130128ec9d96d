package pipeline

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Walk emits the container's scored content as a flat list of top-level
// fragments. A list container (dl/ol/ul) is emitted whole. Otherwise each
// descendant with a positive Categorise score is considered: an image is
// attributed to its parent unless that parent is the container itself,
// and any element that lies at most nesting levels below the container —
// or that is itself a heading — is walked up to its
// highest ancestor still inside the container and that ancestor is emitted,
// once, the first time any of its descendants qualifies.
//
// highestHeaderLevel tracks the shallowest heading level seen (starting at
// 7, deeper than any real heading tag), feeding heading recovery's search
// range.
func Walk(top *html.Node, nesting int) (fragments []*html.Node, highestHeaderLevel int) {
	highestHeaderLevel = 7
	visited := make(map[*html.Node]bool)

	for _, p := range Iter(top) {
		if p == top {
			switch Tag(top) {
			case "dl", "ol", "ul":
				ClearTail(top)
				fragments = append(fragments, top)
				return fragments, highestHeaderLevel
			default:
				continue
			}
		}

		if !IsElement(p) {
			continue
		}
		if Categorise(p) <= 0 {
			continue
		}

		elem := p
		if Tag(elem) == "img" {
			if parent := elem.Parent; parent != top {
				elem = parent
			}
		}

		towrite := false
		if tag := Tag(elem); strings.HasPrefix(tag, "h") {
			if lvl, err := strconv.Atoi(tag[1:]); err == nil {
				towrite = true
				if lvl < highestHeaderLevel {
					highestHeaderLevel = lvl
				}
			}
		}

		encl := elem
		parent := elem.Parent
		i := nesting
		for parent != nil && parent != top {
			encl, parent = parent, parent.Parent
			i--
		}

		if !towrite {
			towrite = i > 0
		}

		if towrite && !visited[encl] {
			for _, d := range Iter(encl) {
				visited[d] = true
			}
			ClearTail(encl)
			fragments = append(fragments, encl)
		}
	}

	return fragments, highestHeaderLevel
}
