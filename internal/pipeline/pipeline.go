package pipeline

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Extract runs the full pipeline over a raw HTML document: sanitizer-lite,
// paywall-duplicate removal, block scoring, container selection, content
// walking, heading recovery, image refinement, and the full sanitizer, plus
// metadata extraction. It returns the sanitized HTML of each emitted
// fragment, in order, alongside the page's metadata.
//
// Per the error-handling design, this never returns an error: malformed
// input degrades to whatever golang.org/x/net/html's tolerant parser can
// make of it, and a document with no qualifying container degrades to a
// nil fragment slice, not a failure.
func Extract(rawHTML string) ([]string, RawMetadata) {
	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, RawMetadata{}
	}

	meta := ExtractMetadata(goquery.NewDocumentFromNode(root))

	body := SanitizeLite(root)
	RemovePaywallDuplicates(body)

	scores := ScoreBlocks(body)
	top, nesting, ok := SelectContainer(scores)
	if !ok {
		return nil, meta
	}

	content, highestHeaderLevel := Walk(top, nesting)
	fragments := RecoverHeadings(top, body, highestHeaderLevel, content)

	out := make([]string, 0, len(fragments))
	for _, frag := range fragments {
		RefineImages(frag)
		out = append(out, Sanitize(renderFragment(frag)))
	}

	return out, meta
}

func renderFragment(n *html.Node) string {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return ""
	}
	return buf.String()
}
