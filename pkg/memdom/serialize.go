package memdom

import (
	"sort"
	"strings"

	"github.com/gomorph/gomorph/pkg/dom"
)

// voidElements have no closing tag and no children when serialized.
var voidElements = map[string]bool{
	"area":   true,
	"base":   true,
	"br":     true,
	"col":    true,
	"embed":  true,
	"hr":     true,
	"img":    true,
	"input":  true,
	"link":   true,
	"meta":   true,
	"param":  true,
	"source": true,
	"track":  true,
	"wbr":    true,
}

// OuterHTML serializes a node and its subtree to HTML. Attributes are
// emitted in sorted name order so that logically equal trees produce
// byte-identical markup. Works on any dom implementation, not just memdom.
func OuterHTML(node dom.Node) string {
	var b strings.Builder
	writeNode(&b, node)
	return b.String()
}

// InnerHTML serializes an element's children.
func InnerHTML(el dom.Element) string {
	var b strings.Builder
	for _, child := range el.ChildNodes() {
		writeNode(&b, child)
	}
	return b.String()
}

func writeNode(b *strings.Builder, node dom.Node) {
	switch n := node.(type) {
	case dom.Element:
		writeElement(b, n)
	case dom.Text:
		b.WriteString(escapeHTML(n.Data()))
	case *Comment:
		b.WriteString("<!--")
		b.WriteString(n.Data())
		b.WriteString("-->")
	}
}

func writeElement(b *strings.Builder, el dom.Element) {
	tag := el.TagName()
	b.WriteByte('<')
	b.WriteString(tag)

	names := el.AttributeNames()
	sort.Strings(names)
	for _, name := range names {
		value, ok := el.Attribute(name)
		if !ok {
			continue
		}
		b.WriteByte(' ')
		b.WriteString(name)
		b.WriteString(`="`)
		b.WriteString(escapeAttr(value))
		b.WriteByte('"')
	}
	b.WriteByte('>')

	if voidElements[strings.ToLower(tag)] {
		return
	}

	for _, child := range el.ChildNodes() {
		writeNode(b, child)
	}

	b.WriteString("</")
	b.WriteString(tag)
	b.WriteByte('>')
}

// escapeHTML escapes text for safe inclusion in HTML content.
func escapeHTML(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}

// escapeAttr escapes text for safe inclusion in attribute values.
func escapeAttr(s string) string {
	var buf strings.Builder
	buf.Grow(len(s))
	for _, r := range s {
		switch r {
		case '&':
			buf.WriteString("&amp;")
		case '<':
			buf.WriteString("&lt;")
		case '>':
			buf.WriteString("&gt;")
		case '"':
			buf.WriteString("&quot;")
		case '\'':
			buf.WriteString("&#39;")
		default:
			buf.WriteRune(r)
		}
	}
	return buf.String()
}
