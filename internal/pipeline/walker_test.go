package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWalkListContainerEmitsWhole(t *testing.T) {
	top := parseFragment(t, "<ul><li>a</li></ul>")
	fragments, highest := Walk(top, 1)

	require.Len(t, fragments, 1)
	assert.Same(t, top, fragments[0])
	assert.Equal(t, 7, highest)
}

func TestWalkDirectChildQualifiesAtNestingOne(t *testing.T) {
	top := parseFragment(t, "<div><p>hello</p></div>")
	fragments, highest := Walk(top, 1)

	p := IterTag(top, "p")[0]
	require.Len(t, fragments, 1)
	assert.Same(t, p, fragments[0])
	assert.Equal(t, 7, highest)
}

func TestWalkSkipsTooDeepContentBelowNesting(t *testing.T) {
	top := parseFragment(t, "<div><div><p>hello</p></div></div>")
	fragments, _ := Walk(top, 1)
	assert.Empty(t, fragments)
}

func TestWalkCapturesEnclosingAncestorWithinNesting(t *testing.T) {
	top := parseFragment(t, "<div><div><p>hello</p></div></div>")
	fragments, _ := Walk(top, 2)

	inner := ElementChildren(top)[0]
	require.Len(t, fragments, 1)
	assert.Same(t, inner, fragments[0])
}

func TestWalkHeadingAlwaysQualifiesAndTracksLowestLevel(t *testing.T) {
	top := parseFragment(t, "<div><h2>Title</h2><p>Body</p></div>")
	fragments, highest := Walk(top, 1)

	h2 := IterTag(top, "h2")[0]
	p := IterTag(top, "p")[0]
	require.Len(t, fragments, 2)
	assert.Same(t, h2, fragments[0])
	assert.Same(t, p, fragments[1])
	assert.Equal(t, 2, highest)
}

func TestWalkImageAttributesToNonTopParent(t *testing.T) {
	top := parseFragment(t, `<div><span><img src="pic.jpg" width="200" height="200"></span></div>`)
	fragments, _ := Walk(top, 1)

	span := IterTag(top, "span")[0]
	require.Len(t, fragments, 1)
	assert.Same(t, span, fragments[0])
}
