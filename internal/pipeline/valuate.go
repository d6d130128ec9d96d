package pipeline

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Triple is the (length, words, clutter) accumulator the scorer works in:
// length is a weighted character count, words is a word-gap count, clutter
// is a non-negative penalty total. A block's final rank is derived from the
// combination of all three, not length alone.
type Triple struct {
	Length  int
	Words   int
	Clutter int
}

func sumTriple(a, b Triple) Triple {
	return Triple{
		Length:  a.Length + b.Length,
		Words:   a.Words + b.Words,
		Clutter: a.Clutter + b.Clutter,
	}
}

// getVal folds a triple down to a single rank: 100 * length * words, divided
// by (clutter + 5). Denser, longer prose with fewer interruptions scores
// higher.
func getVal(t Triple) int {
	return 100 * t.Length * t.Words / (t.Clutter + 5)
}

// textLen returns the character count across a text run's words, and the
// number of gaps between them (word count minus one, or zero for no words).
func textLen(s string) (int, int) {
	words := strings.Fields(s)
	if len(words) == 0 {
		return 0, 0
	}
	total := 0
	for _, w := range words {
		total += utf8.RuneCountInString(w)
	}
	return total, len(words) - 1
}

// Valuate walks p's subtree and accumulates a Triple from its text, tails,
// and the Categorise score of every descendant. div/span/p/article subtrees
// start with zero clutter; anything else starts with a clutter bias of 3.
func Valuate(p *html.Node) Triple {
	var t Triple
	switch Tag(p) {
	case "p", "article", "div", "span":
	default:
		t.Clutter = 3
	}

	for _, n := range Iter(p) {
		tl, tw := textLen(TextOf(n))
		t.Length += tl
		t.Words += tw

		if n != p {
			tl, tw = textLen(TailOf(n))
			t.Length += tl
			t.Words += tw
		}

		v := Categorise(n)
		if v > 0 {
			t.Length += v
		} else {
			t.Clutter -= v
		}
	}

	return t
}
