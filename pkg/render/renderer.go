package render

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	"github.com/gomorph/gomorph/pkg/vdom"
)

// Config configures the HTML renderer.
type Config struct {
	// Pretty enables pretty-printed HTML output with indentation.
	// Should only be used in development as it increases output size.
	Pretty bool

	// Indent is the string used for each indentation level in pretty mode.
	// Defaults to two spaces if not specified.
	Indent string
}

// Renderer serializes VNode trees to HTML.
type Renderer struct {
	config Config
}

// New creates a Renderer with the given configuration.
func New(config Config) *Renderer {
	if config.Indent == "" {
		config.Indent = "  "
	}
	return &Renderer{config: config}
}

// ToString renders a description to HTML using a default renderer.
func ToString(node *vdom.VNode) (string, error) {
	return New(Config{}).RenderToString(node)
}

// RenderToString renders a VNode tree to an HTML string.
func (r *Renderer) RenderToString(node *vdom.VNode) (string, error) {
	var buf bytes.Buffer
	if err := r.RenderToWriter(&buf, node); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RenderToWriter streams a VNode tree to the given writer.
func (r *Renderer) RenderToWriter(w io.Writer, node *vdom.VNode) error {
	return r.renderNode(w, node, 0)
}

func (r *Renderer) renderNode(w io.Writer, node *vdom.VNode, depth int) error {
	if node == nil {
		return nil
	}
	switch node.Kind {
	case vdom.KindElement:
		return r.renderElement(w, node, depth)
	case vdom.KindText:
		_, err := io.WriteString(w, escapeHTML(node.Text))
		return err
	default:
		return fmt.Errorf("render: unknown node kind: %d", node.Kind)
	}
}

func (r *Renderer) renderElement(w io.Writer, node *vdom.VNode, depth int) error {
	if r.config.Pretty && depth > 0 {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}

	if _, err := fmt.Fprintf(w, "<%s", node.Tag); err != nil {
		return err
	}
	if err := r.renderAttributes(w, node); err != nil {
		return err
	}
	if _, err := w.Write([]byte{'>'}); err != nil {
		return err
	}

	if isVoidElement(node.Tag) {
		if r.config.Pretty {
			io.WriteString(w, "\n")
		}
		return nil
	}

	hasBlockChildren := len(node.Children) > 0 && !isInlineElement(node.Tag)
	if r.config.Pretty && hasBlockChildren {
		io.WriteString(w, "\n")
	}

	for _, child := range node.Children {
		if err := r.renderNode(w, child, depth+1); err != nil {
			return err
		}
	}

	if r.config.Pretty && hasBlockChildren {
		if err := r.writeIndent(w, depth); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "</%s>", node.Tag); err != nil {
		return err
	}
	if r.config.Pretty {
		io.WriteString(w, "\n")
	}
	return nil
}

// renderAttributes writes attributes in sorted name order so output is
// deterministic and comparable with memdom's serializer.
func (r *Renderer) renderAttributes(w io.Writer, node *vdom.VNode) error {
	if len(node.Attrs) == 0 {
		return nil
	}
	names := make([]string, 0, len(node.Attrs))
	for name := range node.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, err := fmt.Fprintf(w, ` %s="%s"`, name, escapeAttr(node.Attrs[name])); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) writeIndent(w io.Writer, depth int) error {
	for i := 0; i < depth; i++ {
		if _, err := io.WriteString(w, r.config.Indent); err != nil {
			return err
		}
	}
	return nil
}
