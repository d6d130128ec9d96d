// Package plaintext implements the HTML→plain-text linearizer: the
// pipeline's auxiliary output stage, turning a sanitized fragment's HTML
// into whitespace-normalized prose with list markers and line breaks at
// block boundaries.
package plaintext

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
)

// Options configures linearization. IgnoreErrors disables the
// processed/errors completion check (see Linearize's doc comment below) and
// always returns ok=true.
type Options struct {
	IgnoreErrors bool
}

// Linearize converts a fragment of HTML into plain text. Runs of whitespace
// outside <pre> are collapsed to a single space; text inside <pre> is
// passed through verbatim. Line-level tags (br, h1-h7, div, p, pre, tr)
// force a newline break, li additionally gets a " * " bullet marker, and td
// separates cells with a single space. An img contributes its alt text, or
// its title if no alt is present. Whitespace-only text runs between tags
// are dropped entirely rather than collapsed, so inline markup boundaries
// never introduce a space on their own.
//
// Entity and numeric character references are decoded by hand (see
// entities.go) so that an unrecognised name or a malformed numeric
// reference can be counted rather than silently swallowed: a failed
// reference is dropped from the output and counted in errors, while
// processed counts every tag and comment consumed. The second return value
// reports whether the result should be trusted: true when the caller asked
// to ignore errors, when there were no errors at all, or when processed
// markup outnumbers the failures by more than 3 to 1. An untrusted result
// means the caller should fall back to the original HTML.
func Linearize(fragmentHTML string, opts Options) (string, bool) {
	l := &linearizer{hasSpace: true, hasNL: true}
	z := html.NewTokenizer(strings.NewReader(fragmentHTML))

loop:
	for {
		switch z.Next() {
		case html.ErrorToken:
			break loop

		case html.TextToken:
			l.text(string(z.Raw()))

		case html.StartTagToken, html.SelfClosingTagToken:
			name, hasAttr := z.TagName()
			tag := string(name)
			var alt, title string
			if tag == "img" {
				for hasAttr {
					var k, v []byte
					k, v, hasAttr = z.TagAttr()
					switch string(k) {
					case "alt":
						alt = string(v)
					case "title":
						title = string(v)
					}
				}
			}
			l.startTag(tag, alt, title)

		case html.EndTagToken:
			name, _ := z.TagName()
			l.endTag(string(name))

		case html.CommentToken:
			// The tokenizer surfaces bogus <![...]> declarations as
			// comments whose data begins with "[".
			if strings.HasPrefix(z.Token().Data, "[") {
				l.errors++
			} else {
				l.processed++
			}
		}
	}

	ok := opts.IgnoreErrors || l.errors == 0 || l.processed > 3*l.errors
	return strings.TrimSpace(l.buf.String()), ok
}

type linearizer struct {
	buf       strings.Builder
	inPre     bool
	hasSpace  bool
	hasNL     bool
	processed int
	errors    int
}

func isBreakSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\r' || b == '\n'
}

// data applies the whitespace rule to one run of decoded text. Outside pre,
// the run is split into words: a leading space is emitted only when the raw
// run began with whitespace and none is pending, a trailing space only when
// the raw run ended with one. A run with no words at all is dropped without
// touching the pending-space state.
func (l *linearizer) data(s string) {
	if s == "" {
		return
	}
	if l.inPre {
		l.buf.WriteString(s)
		return
	}
	words := strings.Fields(s)
	if len(words) == 0 {
		return
	}
	preSpace := !l.hasSpace && isBreakSpace(s[0])
	postSpace := isBreakSpace(s[len(s)-1])
	if preSpace {
		l.buf.WriteByte(' ')
	}
	l.buf.WriteString(strings.Join(words, " "))
	if postSpace {
		l.buf.WriteByte(' ')
	}
	l.hasSpace = postSpace
	l.hasNL = false
}

func (l *linearizer) startTag(tag, alt, title string) {
	switch tag {
	case "br", "h1", "h2", "h3", "h4", "h5", "h6", "h7", "div", "p", "pre", "tr":
		if !l.hasNL {
			l.buf.WriteByte('\n')
			l.hasNL, l.hasSpace = true, true
		}
		if tag == "pre" {
			l.inPre = true
		}
	case "li":
		if !l.hasNL {
			l.buf.WriteByte('\n')
		}
		l.buf.WriteString(" * ")
		l.hasNL, l.hasSpace = true, true
	case "td":
		if !l.hasSpace && !l.hasNL {
			l.buf.WriteByte(' ')
			l.hasNL, l.hasSpace = false, true
		}
	case "img":
		if alt != "" {
			l.data(alt)
		} else {
			l.data(title)
		}
	}
	l.processed++
}

func (l *linearizer) endTag(tag string) {
	if tag == "pre" {
		l.inPre, l.hasNL, l.hasSpace = false, false, true
	}
	l.processed++
}

// text splits one raw (undecoded) text run into plain chunks and character
// references, routing each decoded piece through data so the whitespace rule
// sees the same event stream an entity-aware parser would deliver. A failed
// reference contributes nothing to the output and counts as one error.
func (l *linearizer) text(raw string) {
	i := 0
	for i < len(raw) {
		j := strings.IndexByte(raw[i:], '&')
		if j < 0 {
			l.data(raw[i:])
			return
		}
		if j > 0 {
			l.data(raw[i : i+j])
			i += j
		}
		decoded, adv, ok := decodeRef(raw[i:])
		if adv == 0 {
			l.data("&")
			i++
			continue
		}
		if ok {
			l.data(decoded)
		} else {
			l.errors++
		}
		i += adv
	}
}

// decodeRef examines s, which starts with '&'. adv is the number of bytes
// consumed: 0 means s doesn't look like a reference at all and the ampersand
// should pass through as data. ok reports whether the reference resolved to
// a code point.
func decodeRef(s string) (decoded string, adv int, ok bool) {
	semi := strings.IndexByte(s, ';')
	if semi < 2 || semi > 32 {
		return "", 0, false
	}
	ref := s[1:semi]

	if ref[0] == '#' {
		num := ref[1:]
		var v int64
		var err error
		if len(num) > 1 && (num[0] == 'x' || num[0] == 'X') {
			v, err = strconv.ParseInt(num[1:], 16, 32)
		} else {
			v, err = strconv.ParseInt(num, 10, 32)
		}
		if err != nil || v <= 0 || !utf8.ValidRune(rune(v)) {
			return "", semi + 1, false
		}
		return string(rune(v)), semi + 1, true
	}

	for k := 0; k < len(ref); k++ {
		c := ref[k]
		alnum := c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
		if !alnum {
			return "", 0, false
		}
	}
	r, found := namedEntities[ref]
	if !found {
		return "", semi + 1, false
	}
	return string(r), semi + 1, true
}
