// Package quill extracts the main article content out of arbitrary web
// pages: a DOM-scoring pipeline ranks subtrees by heuristic density, picks a
// container via path-coincidence voting, walks its content, recovers
// headings left outside the container, deduplicates paywall teasers,
// sanitizes the result, and refines responsive images. A plain-text
// linearizer turns the sanitized fragments into prose for callers who want
// text instead of HTML.
package quill
