package main

import (
	"bytes"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inkloom/quill"
)

func TestExitCodeForParseErrorReturnsTwo(t *testing.T) {
	err := &quill.ParseError{Code: quill.ErrParse, Op: "ParseHTML"}
	assert.Equal(t, 2, exitCodeFor(err))
}

func TestExitCodeForFetchErrorReturnsOne(t *testing.T) {
	err := &quill.ParseError{Code: quill.ErrFetch, Op: "Parse"}
	assert.Equal(t, 1, exitCodeFor(err))
}

func TestExitCodeForPlainErrorReturnsOne(t *testing.T) {
	assert.Equal(t, 1, exitCodeFor(errors.New("boom")))
}

func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	orig := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w
	fn()
	w.Close()
	os.Stdout = orig

	var buf bytes.Buffer
	io.Copy(&buf, r)
	return buf.String()
}

func TestPrintResultDefaultsToPlainText(t *testing.T) {
	htmlMode, textMode, markdownMode = false, false, false
	result := &quill.Result{Fragments: []string{"<p>Hello there</p>"}, Title: "A Title"}

	out := captureStdout(t, func() { printResult(result) })

	assert.Contains(t, out, "Hello there")
	assert.Contains(t, out, "title: A Title")
}

func TestPrintResultHTMLModeEmitsFragmentsVerbatim(t *testing.T) {
	htmlMode, textMode, markdownMode = true, false, false
	defer func() { htmlMode = false }()

	result := &quill.Result{Fragments: []string{"<p>Raw</p>"}}
	out := captureStdout(t, func() { printResult(result) })

	assert.Contains(t, out, "<p>Raw</p>")
}

func TestPrintResultMarkdownModeConvertsFragments(t *testing.T) {
	htmlMode, textMode, markdownMode = false, false, true
	defer func() { markdownMode = false }()

	result := &quill.Result{Fragments: []string{"<p><strong>bold</strong> text</p>"}}
	out := captureStdout(t, func() { printResult(result) })

	assert.Contains(t, out, "**bold**")
}

func TestPrintResultOmitsDescriptionWhenEmpty(t *testing.T) {
	htmlMode, textMode, markdownMode = false, false, false
	result := &quill.Result{Fragments: []string{"<p>x</p>"}}

	out := captureStdout(t, func() { printResult(result) })

	assert.NotContains(t, out, "description:")
}
