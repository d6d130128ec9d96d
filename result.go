package quill

import (
	"strings"
	"time"

	"github.com/inkloom/quill/internal/plaintext"
)

// Result is the outcome of a Parse/ParseHTML call: the page's metadata and
// the sanitized HTML of every fragment the pipeline selected as content.
type Result struct {
	URL         string
	Title       string
	Description string
	Published   string
	Modified    string

	ParsedPublished *time.Time
	ParsedModified  *time.Time

	// Fragments holds the sanitized HTML of each content fragment, in
	// document order.
	Fragments []string

	ignoreEntityErrors bool
}

// IsEmpty reports whether no content fragments were found — a successful
// parse of a page with nothing worth extracting, not a failure.
func (r *Result) IsEmpty() bool {
	return len(r.Fragments) == 0
}

// Text renders every fragment through the plain-text linearizer and joins
// them with a blank line between each, giving callers the plain-text output
// shape without needing to call the linearizer themselves. A fragment whose
// linearization isn't trustworthy falls back to its raw HTML rather than
// being dropped — too many undecodable references means the text can't be
// trusted, not that the content doesn't exist.
func (r *Result) Text() string {
	opts := plaintext.Options{IgnoreErrors: r.ignoreEntityErrors}
	parts := make([]string, 0, len(r.Fragments))
	for _, frag := range r.Fragments {
		text, ok := plaintext.Linearize(frag, opts)
		if !ok {
			text = frag
		}
		if text == "" {
			continue
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, "\n\n")
}
