package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStructuralSummarySingleChild(t *testing.T) {
	div := parseFragment(t, "<div><p>hi</p></div>")
	got := StructuralSummary(div)
	want := []SummaryEntry{
		{Label: "div", TextLength: 0},
		{Label: "+", TextLength: 0},
		{Label: "p", TextLength: 2},
	}
	assert.Equal(t, want, got)
}

func TestStructuralSummaryTwoChildren(t *testing.T) {
	div := parseFragment(t, "<div><p>a</p><p>b</p></div>")
	got := StructuralSummary(div)
	want := []SummaryEntry{
		{Label: "div", TextLength: 0},
		{Label: "+", TextLength: 0},
		{Label: "p", TextLength: 1},
		{Label: "p", TextLength: 1},
	}
	assert.Equal(t, want, got)
}

func TestStructuralSummaryIdenticalSubtreesMatch(t *testing.T) {
	a := parseFragment(t, "<div><p>same text</p></div>")
	b := parseFragment(t, "<div><p>same text</p></div>")
	assert.Equal(t, StructuralSummary(a), StructuralSummary(b))
}

func TestStructuralSummaryDiffersOnText(t *testing.T) {
	a := parseFragment(t, "<div><p>one</p></div>")
	b := parseFragment(t, "<div><p>two words</p></div>")
	assert.NotEqual(t, StructuralSummary(a), StructuralSummary(b))
}
