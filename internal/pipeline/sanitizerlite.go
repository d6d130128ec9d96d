package pipeline

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// ampStripSelectors names the AMP custom elements that carry no content of
// their own worth scoring — ad slots, analytics pixels, consent dialogs —
// plus bare <script> tags, which sanitizer-lite strips up front so they
// never skew block scoring later in the pipeline.
var ampStripSelectors = []string{
	"amp-ad", "amp-analytics", "amp-consent", "amp-iframe",
	"amp-script", "amp-social-share", "amp-sticky-ad", "script",
}

// SanitizeLite runs the pipeline's first stage: stripping AMP ad/tracking
// elements, renaming amp-img to img so the rest of the pipeline treats it as
// an ordinary image, and removing empty leaves (elements with no children
// and no non-whitespace text or tail) to a fixed point. Returns the body
// element the remaining stages operate on (the document's <body>, or the
// document root if none is present).
func SanitizeLite(root *html.Node) *html.Node {
	doc := goquery.NewDocumentFromNode(root)
	bodySel := doc.Find("body").First()

	var body *html.Node
	if bodySel.Length() > 0 {
		body = bodySel.Get(0)
	} else {
		body = root
	}

	bodyDoc := goquery.NewDocumentFromNode(body)
	bodyDoc.Find(strings.Join(ampStripSelectors, ", ")).Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes) > 0 {
			Remove(s.Nodes[0])
		}
	})
	bodyDoc.Find("amp-img").Each(func(_ int, s *goquery.Selection) {
		if len(s.Nodes) > 0 {
			s.Nodes[0].Data = "img"
		}
	})

	for {
		removedAny := false
		bodyDoc.Find("*").Each(func(_ int, s *goquery.Selection) {
			if len(s.Nodes) == 0 {
				return
			}
			n := s.Nodes[0]
			if n.Parent == nil || Tag(n) == "img" {
				return
			}
			if len(Children(n)) != 0 {
				return
			}
			if strings.TrimSpace(TextOf(n)) != "" || strings.TrimSpace(TailOf(n)) != "" {
				return
			}
			Remove(n)
			removedAny = true
		})
		if !removedAny {
			break
		}
	}

	return body
}
