// Package pipeline implements the content-extraction pipeline: sanitizer-lite,
// paywall-duplicate detection, block scoring, container voting, content
// walking, heading recovery, image refinement, full sanitization, and
// metadata extraction.
package pipeline

import (
	"strings"

	"golang.org/x/net/html"
)

// golang.org/x/net/html models text as sibling nodes rather than as string
// fields on an element, unlike the lxml tree this pipeline's algorithms were
// designed against. text/tail below are derived accessors over that sibling
// chain rather than stored fields.

func isReal(n *html.Node) bool {
	if n == nil {
		return false
	}
	switch n.Type {
	case html.ElementNode, html.CommentNode, html.DoctypeNode:
		return true
	default:
		return false
	}
}

// IsElement reports whether n is an element node (as opposed to a comment,
// doctype, or text node).
func IsElement(n *html.Node) bool {
	return n != nil && n.Type == html.ElementNode
}

// Tag returns the lowercase tag name of an element node, or "" for anything
// else.
func Tag(n *html.Node) string {
	if !IsElement(n) {
		return ""
	}
	return strings.ToLower(n.Data)
}

// Attr returns the value of attribute key on n and whether it was present.
func Attr(n *html.Node, key string) (string, bool) {
	if n == nil {
		return "", false
	}
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets (or replaces) an attribute on n.
func SetAttr(n *html.Node, key, val string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr[i].Val = val
			return
		}
	}
	n.Attr = append(n.Attr, html.Attribute{Key: key, Val: val})
}

// DelAttr removes attribute key from n if present.
func DelAttr(n *html.Node, key string) {
	if n == nil {
		return
	}
	for i, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			n.Attr = append(n.Attr[:i], n.Attr[i+1:]...)
			return
		}
	}
}

// TextOf returns the text run immediately inside n, before its first child
// of any kind (the lxml ".text" equivalent).
func TextOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			break
		}
		sb.WriteString(c.Data)
	}
	return sb.String()
}

// TailOf returns the text run immediately following n, before its next
// sibling of any kind (the lxml ".tail" equivalent).
func TailOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var sb strings.Builder
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if c.Type != html.TextNode {
			break
		}
		sb.WriteString(c.Data)
	}
	return sb.String()
}

// ClearTail removes the text-node siblings that make up n's tail, leaving it
// empty.
func ClearTail(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	parent := n.Parent
	for c := n.NextSibling; c != nil; {
		next := c.NextSibling
		if c.Type != html.TextNode {
			break
		}
		parent.RemoveChild(c)
		c = next
	}
}

// Clear empties n: all children are detached, all attributes stripped, and
// its tail cleared, mirroring lxml's Element.clear(keep_tail=False).
func Clear(n *html.Node) {
	if n == nil {
		return
	}
	for n.FirstChild != nil {
		n.RemoveChild(n.FirstChild)
	}
	n.Attr = nil
	ClearTail(n)
}

// Remove detaches n from its parent, discarding n's tail text along with it
// (lxml's parent.remove(child) semantics: the tail belongs to the removed
// element). A no-op if n has no parent.
func Remove(n *html.Node) {
	if n == nil || n.Parent == nil {
		return
	}
	parent := n.Parent
	tail := n.NextSibling
	parent.RemoveChild(n)
	for tail != nil && tail.Type == html.TextNode {
		next := tail.NextSibling
		parent.RemoveChild(tail)
		tail = next
	}
}

func nextReal(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.NextSibling; c != nil; c = c.NextSibling {
		if isReal(c) {
			return c
		}
	}
	return nil
}

func prevReal(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	for c := n.PrevSibling; c != nil; c = c.PrevSibling {
		if isReal(c) {
			return c
		}
	}
	return nil
}

// RemoveAfter removes every sibling that follows elem, then every sibling
// following elem's parent, climbing the ancestor chain (the lxml
// remove_after idiom used ahead of heading recovery).
func RemoveAfter(elem *html.Node) {
	parent := elem.Parent
	for parent != nil {
		for next := nextReal(elem); next != nil; next = nextReal(elem) {
			Remove(next)
		}
		elem, parent = parent, parent.Parent
	}
}

// RemoveBefore is the mirror image of RemoveAfter: it removes every sibling
// preceding elem, then every sibling preceding elem's parent, climbing the
// ancestor chain.
func RemoveBefore(elem *html.Node) {
	parent := elem.Parent
	for parent != nil {
		for prev := prevReal(elem); prev != nil; prev = prevReal(elem) {
			Remove(prev)
		}
		elem, parent = parent, parent.Parent
	}
}

// Children returns n's "real" children (elements, comments, doctypes) in
// document order, skipping text nodes — lxml has no standalone text-node
// children, so this is the equivalent of iterating an lxml Element directly.
func Children(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if isReal(c) {
			out = append(out, c)
		}
	}
	return out
}

// ElementChildren is Children filtered to element nodes only, excluding
// comments and doctypes.
func ElementChildren(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if IsElement(c) {
			out = append(out, c)
		}
	}
	return out
}

// Iter returns n and every "real" descendant, in document (pre-)order — the
// lxml Element.iter() equivalent.
func Iter(n *html.Node) []*html.Node {
	if n == nil {
		return nil
	}
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(x *html.Node) {
		if isReal(x) {
			out = append(out, x)
		}
		for c := x.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

// IterTag is Iter filtered to element nodes with the given tag name.
func IterTag(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	for _, d := range Iter(n) {
		if IsElement(d) && Tag(d) == tag {
			out = append(out, d)
		}
	}
	return out
}
