package templates

import (
	"html"
	"strings"
)

// Node is one element of a rendered layout tree. The tree is what both the
// on-screen preview and the PDF export consume, so the two can never drift
// apart. Serialization is deterministic: identical trees produce identical
// HTML byte for byte.
type Node struct {
	Tag      string
	Style    string
	Text     string
	Children []*Node
}

// El builds an element node.
func El(tag, style string, children ...*Node) *Node {
	return &Node{Tag: tag, Style: style, Children: children}
}

// Text builds a text leaf.
func Text(s string) *Node {
	return &Node{Text: s}
}

// Span is shorthand for a styled span wrapping a single text leaf.
func Span(style, text string) *Node {
	return El("span", style, Text(text))
}

// P is shorthand for a styled paragraph wrapping a single text leaf.
func P(style, text string) *Node {
	return El("p", style, Text(text))
}

// Append adds children to the node and returns it for chaining.
func (n *Node) Append(children ...*Node) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// HTML serializes the tree. Text content and the style attribute are
// escaped; tags come from renderer code only.
func (n *Node) HTML() string {
	var b strings.Builder
	n.writeTo(&b)
	return b.String()
}

func (n *Node) writeTo(b *strings.Builder) {
	if n == nil {
		return
	}
	if n.Tag == "" {
		b.WriteString(html.EscapeString(n.Text))
		return
	}
	b.WriteString("<")
	b.WriteString(n.Tag)
	if n.Style != "" {
		b.WriteString(` style="`)
		b.WriteString(html.EscapeString(n.Style))
		b.WriteString(`"`)
	}
	b.WriteString(">")
	for _, c := range n.Children {
		c.writeTo(b)
	}
	b.WriteString("</")
	b.WriteString(n.Tag)
	b.WriteString(">")
}

// Page wraps a rendered resume tree in a complete printable HTML document.
// Preview and PDF export both call this with the same tree.
func Page(root *Node) string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><head><meta charset=\"utf-8\">")
	b.WriteString("<style>")
	b.WriteString("*{margin:0;padding:0;box-sizing:border-box}")
	b.WriteString("body{background:#fff;-webkit-print-color-adjust:exact;print-color-adjust:exact}")
	b.WriteString("ul{list-style-position:outside}")
	b.WriteString("@page{size:A4;margin:0}")
	b.WriteString("</style></head><body>")
	b.WriteString(root.HTML())
	b.WriteString("</body></html>")
	return b.String()
}
