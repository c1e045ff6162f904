// Package markup holds the generic parsed representation of a marked-up
// document: a tree of nodes carrying tag name, attributes, ordered children
// and text. It knows nothing about any particular grammar.
package markup

import (
	"encoding/xml"
	"fmt"
	"io"
	"strings"
)

// Node is one element or text run in a parsed document. A text run has an
// empty Tag and its content in Text; an element has a Tag and may carry
// attributes and children. Children keep source order, text interleaved
// with elements.
type Node struct {
	Tag      string
	Attrs    []Attr
	Children []*Node
	Text     string
}

// Attr is a single element attribute. Namespace prefixes are dropped; only
// the local name is kept.
type Attr struct {
	Name  string
	Value string
}

// IsText reports whether the node is a text run rather than an element.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Attr returns the value of the named attribute, or "" if absent.
func (n *Node) Attr(name string) string {
	for _, a := range n.Attrs {
		if a.Name == name {
			return a.Value
		}
	}
	return ""
}

// FirstChild returns the first direct child element with the given tag,
// or nil.
func (n *Node) FirstChild(tag string) *Node {
	for _, c := range n.Children {
		if c.Tag == tag {
			return c
		}
	}
	return nil
}

// Find returns the first element with the given tag in document order,
// searching n itself and all descendants. Returns nil when absent.
func (n *Node) Find(tag string) *Node {
	if n.Tag == tag {
		return n
	}
	for _, c := range n.Children {
		if found := c.Find(tag); found != nil {
			return found
		}
	}
	return nil
}

// FindAll returns every element with the given tag in document order,
// searching n itself and all descendants.
func (n *Node) FindAll(tag string) []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(n *Node) {
		if n.Tag == tag {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return out
}

// TextContent concatenates every text run under n in document order.
func (n *Node) TextContent() string {
	var buf strings.Builder
	var walk func(*Node)
	walk = func(n *Node) {
		if n.IsText() {
			buf.WriteString(n.Text)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}

// ChildText returns the trimmed text content of the first direct child with
// the given tag, or "" when the child is absent.
func (n *Node) ChildText(tag string) string {
	c := n.FirstChild(tag)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.TextContent())
}

// Parse decodes XML from r into a generic node tree. The returned root is a
// synthetic container whose children are the document's top-level nodes.
// Any well-formedness error from the decoder is returned as-is; callers can
// treat it as distinct from "parsed but unexpected structure".
func Parse(r io.Reader) (*Node, error) {
	dec := xml.NewDecoder(r)
	root := &Node{}
	stack := []*Node{root}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode markup: %w", err)
		}

		top := stack[len(stack)-1]
		switch t := tok.(type) {
		case xml.StartElement:
			el := &Node{Tag: t.Name.Local}
			for _, a := range t.Attr {
				el.Attrs = append(el.Attrs, Attr{Name: a.Name.Local, Value: a.Value})
			}
			top.Children = append(top.Children, el)
			stack = append(stack, el)
		case xml.EndElement:
			if len(stack) > 1 {
				stack = stack[:len(stack)-1]
			}
		case xml.CharData:
			text := string(t)
			if text == "" {
				break
			}
			top.Children = append(top.Children, &Node{Text: text})
		}
	}

	if len(root.Children) == 0 {
		return nil, fmt.Errorf("decode markup: empty document")
	}
	return root, nil
}

// ParseString is Parse over a string input.
func ParseString(s string) (*Node, error) {
	return Parse(strings.NewReader(s))
}
