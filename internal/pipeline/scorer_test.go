package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreBlocksAccumulatesParagraphIntoParent(t *testing.T) {
	div := parseFragment(t, "<div><p>hello world</p></div>")

	scores := ScoreBlocks(div)

	got, ok := scores.values[div]
	require.True(t, ok)
	assert.Equal(t, Triple{Length: 30, Words: 1, Clutter: 0}, got)
}

func TestScoreBlocksAccumulatesMultipleBlocksIntoSameParent(t *testing.T) {
	div := parseFragment(t, "<div><p>one</p><li>two</li></div>")

	scores := ScoreBlocks(div)

	got, ok := scores.values[div]
	require.True(t, ok)
	wantP := Valuate(IterTag(div, "p")[0])
	wantLi := Valuate(IterTag(div, "li")[0])
	assert.Equal(t, sumTriple(wantP, wantLi), got)
}

func TestScoreBlocksSkipsNonPositiveImages(t *testing.T) {
	div := parseFragment(t, `<div><img></div>`)
	scores := ScoreBlocks(div)
	assert.Empty(t, scores.order)
}

func TestScoreBlocksAddsPositiveImageTriple(t *testing.T) {
	div := parseFragment(t, `<div><img src="pic.jpg" title="hi" alt="world"></div>`)

	scores := ScoreBlocks(div)

	got, ok := scores.values[div]
	require.True(t, ok)
	assert.Equal(t, Triple{Length: 28, Words: 1, Clutter: 1}, got)
}

func TestScoreMapOrderIsFirstSeen(t *testing.T) {
	body := parseFragmentBody(t, "<div><p>a</p></div><div><p>b</p></div>")

	scores := ScoreBlocks(body)
	divs := ElementChildren(body)
	require.Len(t, divs, 2)
	require.Len(t, scores.order, 2)
	assert.Same(t, divs[0], scores.order[0])
	assert.Same(t, divs[1], scores.order[1])
}
