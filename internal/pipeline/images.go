package pipeline

import (
	"sort"

	"golang.org/x/net/html"
)

const (
	srcSetMinWidth   = 600
	srcSetFloorWidth = 300
)

// RefineImages walks every img under root and, where Categorise scores it
// negatively, clears it down to an empty, attribute-less element rather
// than dropping it outright (an image slot that later turns out to matter —
// e.g. as a lone child of an otherwise-empty figure — survives as a hook
// rather than vanishing silently). Where a responsive srcset is present, the
// chosen src is replaced with the first candidate at or above 600px wide,
// provided the candidate just below it is at least 300px wide, preferring
// the smallest adequate rendition over the largest available one.
func RefineImages(root *html.Node) {
	for _, img := range IterTag(root, "img") {
		if Categorise(img) < 0 {
			Clear(img)
			continue
		}

		srcset, ok := Attr(img, "srcset")
		if !ok || srcset == "" {
			continue
		}
		cands := positiveSrcSet(srcset)
		if len(cands) == 0 {
			continue
		}

		idx := sort.Search(len(cands), func(i int) bool { return cands[i].Width >= srcSetMinWidth })
		if idx == 0 || idx == len(cands) {
			continue
		}
		if cands[idx-1].Width < srcSetFloorWidth {
			continue
		}
		SetAttr(img, "src", cands[idx].URL)
		DelAttr(img, "width")
		DelAttr(img, "height")
		DelAttr(img, "srcset")
	}
}
