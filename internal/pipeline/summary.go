package pipeline

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// SummaryEntry is one line of a structural summary: a label (a depth marker
// or a tag name) paired with the stripped text length accumulated at that
// point. Identical subtrees produce identical summaries — the property the
// paywall-duplicate detector relies on. Text enters only through its length,
// so structurally identical subtrees whose texts differ but have equal
// lengths produce identical summaries too.
type SummaryEntry struct {
	Label      string
	TextLength int
}

func (e SummaryEntry) key() string {
	return e.Label + "\x00" + strconv.Itoa(e.TextLength)
}

// StructuralSummary produces a depth-first description of elem's subtree:
// for every descending step a "+"-depth marker entry is appended, for every
// ascending step a "-"-depth marker, and every element contributes its own
// tag-labeled entry carrying the stripped text length accumulated from its
// own text plus its children's tails.
func StructuralSummary(elem *html.Node) []SummaryEntry {
	entries, _ := getTree(elem, 0)
	return entries
}

func getTree(elem *html.Node, depth int) ([]SummaryEntry, int) {
	var prefix []SummaryEntry
	switch {
	case depth < 0:
		prefix = append(prefix, SummaryEntry{Label: strings.Repeat("-", -depth)})
	case depth > 0:
		prefix = append(prefix, SummaryEntry{Label: strings.Repeat("+", depth)})
	}
	prefix = append(prefix, SummaryEntry{Label: Tag(elem)})

	t := 0
	if text := strings.TrimSpace(TextOf(elem)); text != "" {
		t += utf8.RuneCountInString(text)
	}

	childDepth := 0
	var rest []SummaryEntry
	for _, child := range ElementChildren(elem) {
		if tail := strings.TrimSpace(TailOf(child)); tail != "" {
			t += utf8.RuneCountInString(tail)
		}
		subList, d := getTree(child, childDepth+1)
		rest = append(rest, subList...)
		childDepth = d
	}

	prefix[len(prefix)-1].TextLength = t
	return append(prefix, rest...), childDepth - 1
}
