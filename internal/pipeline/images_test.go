package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefineImagesClearsNegativeImage(t *testing.T) {
	root := parseFragment(t, `<div><img></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	assert.Empty(t, img.Attr)
	assert.Nil(t, img.FirstChild)
}

func TestRefineImagesKeepsZeroScoreImage(t *testing.T) {
	root := parseFragment(t, `<div><img src="pic.jpg"></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	src, _ := Attr(img, "src")
	assert.Equal(t, "pic.jpg", src)
}

func TestRefineImagesLeavesPositiveImageWithoutSrcsetAlone(t *testing.T) {
	root := parseFragment(t, `<div><img src="pic.jpg" width="200" height="200"></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	src, _ := Attr(img, "src")
	assert.Equal(t, "pic.jpg", src)
}

func TestRefineImagesSkipsWhenSmallestCandidateAlreadyMeetsMinWidth(t *testing.T) {
	root := parseFragment(t, `<div><img src="orig.jpg" width="200" height="200" srcset="a.jpg 700w, b.jpg 800w"></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	src, _ := Attr(img, "src")
	assert.Equal(t, "orig.jpg", src)
}

func TestRefineImagesPicksFirstCandidateAtOrAboveMinWidth(t *testing.T) {
	root := parseFragment(t, `<div><img src="orig.jpg" width="200" height="200" srcset="a.jpg 300w, b.jpg 600w, c.jpg 1200w"></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	src, _ := Attr(img, "src")
	assert.Equal(t, "b.jpg", src)
	_, hasW := Attr(img, "width")
	_, hasH := Attr(img, "height")
	_, hasSet := Attr(img, "srcset")
	assert.False(t, hasW)
	assert.False(t, hasH)
	assert.False(t, hasSet)
}

func TestRefineImagesSkipsWhenNoCandidateReachesMinWidth(t *testing.T) {
	root := parseFragment(t, `<div><img src="orig.jpg" width="200" height="200" srcset="a.jpg 100w, b.jpg 200w"></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	src, _ := Attr(img, "src")
	assert.Equal(t, "orig.jpg", src)
	_, hasSet := Attr(img, "srcset")
	assert.True(t, hasSet)
}

func TestRefineImagesSkipsWhenFloorCandidateTooNarrow(t *testing.T) {
	root := parseFragment(t, `<div><img src="orig.jpg" width="200" height="200" srcset="a.jpg 150w, b.jpg 700w"></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	src, _ := Attr(img, "src")
	assert.Equal(t, "orig.jpg", src)
}

func TestRefineImagesSkipsWhenSrcsetHasNoPositiveCandidates(t *testing.T) {
	root := parseFragment(t, `<div><img src="orig.jpg" width="200" height="200" srcset="a.jpg 2x"></div>`)
	RefineImages(root)

	img := IterTag(root, "img")[0]
	src, _ := Attr(img, "src")
	assert.Equal(t, "orig.jpg", src)
}

func TestRefineImagesHandlesMultipleImages(t *testing.T) {
	root := parseFragment(t, `<div><img><img src="pic.jpg" width="200" height="200"></div>`)
	RefineImages(root)

	imgs := IterTag(root, "img")
	require.Len(t, imgs, 2)
	assert.Empty(t, imgs[0].Attr)
	src, _ := Attr(imgs[1], "src")
	assert.Equal(t, "pic.jpg", src)
}
