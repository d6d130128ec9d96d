package pipeline

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsScriptContent(t *testing.T) {
	got := Sanitize(`<p>Hello <script>alert('evil')</script>world</p>`)

	assert.Contains(t, got, "Hello")
	assert.Contains(t, got, "world")
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "<script")
}

func TestSanitizeKeepsAnchorHrefWithoutNofollow(t *testing.T) {
	got := Sanitize(`<a href="http://example.com">link</a>`)

	assert.Contains(t, got, `href="http://example.com"`)
	assert.Contains(t, got, "link")
	assert.NotContains(t, got, "nofollow")
}

func TestSanitizeKeepsImageAttributes(t *testing.T) {
	got := Sanitize(`<img src="a.jpg" alt="pic" width="100" height="50">`)

	assert.Contains(t, got, `src="a.jpg"`)
	assert.Contains(t, got, `alt="pic"`)
	assert.Contains(t, got, `width="100"`)
}

func TestSanitizeUnwrapsDisallowedTagButKeepsText(t *testing.T) {
	got := Sanitize(`<aside>note</aside>`)

	assert.Contains(t, got, "note")
	assert.False(t, strings.Contains(got, "<aside"))
}

func TestSanitizeDropsOnclickAttribute(t *testing.T) {
	got := Sanitize(`<p onclick="evil()">text</p>`)

	assert.Contains(t, got, "text")
	assert.NotContains(t, got, "onclick")
}

func TestSanitizeDiscardsFormContent(t *testing.T) {
	got := Sanitize(`<div>before<form><input type="text"></form>after</div>`)

	assert.Contains(t, got, "before")
	assert.Contains(t, got, "after")
	assert.NotContains(t, got, "<form")
	assert.NotContains(t, got, "<input")
}
