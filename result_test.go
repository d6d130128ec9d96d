package quill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultIsEmpty(t *testing.T) {
	empty := &Result{}
	assert.True(t, empty.IsEmpty())

	nonEmpty := &Result{Fragments: []string{"<p>hi</p>"}}
	assert.False(t, nonEmpty.IsEmpty())
}

func TestResultTextJoinsFragmentsWithBlankLine(t *testing.T) {
	r := &Result{Fragments: []string{"<p>One</p>", "<p>Two</p>"}}
	assert.Equal(t, "One\n\nTwo", r.Text())
}

func TestResultTextSkipsFragmentsThatLinearizeEmpty(t *testing.T) {
	r := &Result{Fragments: []string{"<p>   </p>", "<p>Kept</p>"}}
	assert.Equal(t, "Kept", r.Text())
}

func TestResultTextFallsBackToRawHTMLWhenUntrusted(t *testing.T) {
	strict := &Result{Fragments: []string{"<p>a&zzz;b</p>"}}
	assert.Equal(t, "<p>a&zzz;b</p>", strict.Text())
}

func TestResultTextHonorsIgnoreEntityErrors(t *testing.T) {
	relaxed := &Result{Fragments: []string{"<p>a&zzz;b</p>"}, ignoreEntityErrors: true}
	assert.Equal(t, "ab", relaxed.Text())
}
