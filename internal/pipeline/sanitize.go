package pipeline

import (
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// sanitizePolicy mirrors the lxml Cleaner configuration this stage is
// ported from. Scripts, styles, noscript, templates, embedded objects,
// frames, forms, head/title and meta tags are stripped with their content
// discarded. Every other tag outside the allow-list (page-structure wrapper
// tags, "annoying" tags such as blink/marquee, unrecognised tags) is
// unwrapped: the tag is dropped and its text kept. Attributes outside the
// allow-list, including style and on* handlers, are removed. Links are left
// exactly as authored — no rel=nofollow is injected, matching
// add_nofollow=False.
var (
	sanitizePolicy     *bluemonday.Policy
	sanitizePolicyOnce sync.Once
)

func getSanitizePolicy() *bluemonday.Policy {
	sanitizePolicyOnce.Do(func() {
		p := bluemonday.NewPolicy()

		p.AllowElements(
			"p", "br", "hr", "strong", "b", "em", "i", "u", "s", "sub", "sup", "mark", "small",
			"h1", "h2", "h3", "h4", "h5", "h6",
			"ul", "ol", "li", "dl", "dt", "dd",
			"blockquote", "pre", "code", "q", "cite",
			"table", "thead", "tbody", "tfoot", "tr", "td", "th", "caption",
			"figure", "figcaption", "article", "section", "span", "div", "a", "img",
		)

		p.AllowAttrs("href").OnElements("a")
		p.AllowStandardURLs()
		p.RequireNoFollowOnLinks(false)

		p.AllowAttrs("src", "alt", "width", "height", "srcset", "sizes", "title").OnElements("img")
		p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")

		p.SkipElementsContent(
			"script", "style", "noscript", "template",
			"object", "embed", "applet",
			"iframe", "frame", "frameset",
			"form", "head", "title", "meta",
		)

		sanitizePolicy = p
	})
	return sanitizePolicy
}

// Sanitize runs a fragment of serialized HTML through the full sanitizer,
// the pipeline's last hardening pass before output.
func Sanitize(fragmentHTML string) string {
	return getSanitizePolicy().Sanitize(fragmentHTML)
}
