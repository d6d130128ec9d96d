package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiffClassifyIdenticalLines(t *testing.T) {
	clines, dlines, maxclines := diffClassify([]string{"a", "b", "c"}, []string{"a", "b", "c"})
	assert.Equal(t, 3, clines)
	assert.Equal(t, 0, dlines)
	assert.Equal(t, 3, maxclines)
}

func TestDiffClassifyWhollyDifferent(t *testing.T) {
	clines, dlines, maxclines := diffClassify([]string{"a"}, []string{"b"})
	assert.Equal(t, 0, clines)
	assert.Equal(t, 2, dlines)
	assert.Equal(t, 0, maxclines)
}

func TestDiffClassifyOneCommonLineThenReplace(t *testing.T) {
	clines, dlines, maxclines := diffClassify([]string{"a", "b"}, []string{"a", "c"})
	assert.Equal(t, 1, clines)
	assert.Equal(t, 2, dlines)
	assert.Equal(t, 1, maxclines)
}

func TestSummaryLinesEncodesLabelAndLength(t *testing.T) {
	entries := []SummaryEntry{{Label: "p", TextLength: 12}, {Label: "+", TextLength: 0}}
	lines := summaryLines(entries)
	assert.Equal(t, []string{"p\x0012", "+\x000"}, lines)
}
