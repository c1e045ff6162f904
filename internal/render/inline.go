package render

import (
	"github.com/lawlens/aknrender/internal/lawdoc"
	"github.com/lawlens/aknrender/internal/markup"
)

var inlineKinds = map[string]lawdoc.Kind{
	"b":    lawdoc.KindBold,
	"i":    lawdoc.KindItalic,
	"u":    lawdoc.KindUnderline,
	"ref":  lawdoc.KindRef,
	"def":  lawdoc.KindTerm,
	"term": lawdoc.KindTerm,
}

func isInlineTag(tag string) bool {
	_, ok := inlineKinds[tag]
	return ok
}

// renderInlineChildren walks n's children in source order: text runs become
// plain spans exactly as written (no whitespace normalization), known
// formatting tags wrap their recursively rendered content, and anything else
// passes its children through without a wrapper. Nesting depth is unbounded.
func renderInlineChildren(n *markup.Node) []*lawdoc.Node {
	var out []*lawdoc.Node
	for _, c := range n.Children {
		out = append(out, renderInlineNode(c)...)
	}
	return out
}

func renderInlineNode(n *markup.Node) []*lawdoc.Node {
	if n.IsText() {
		if n.Text == "" {
			return nil
		}
		return []*lawdoc.Node{lawdoc.TextNode(n.Text)}
	}

	kind, ok := inlineKinds[n.Tag]
	if !ok {
		// Unrecognized inline tag: render its content transparently.
		return renderInlineChildren(n)
	}

	node := &lawdoc.Node{Kind: kind, Children: renderInlineChildren(n)}
	if kind == lawdoc.KindRef {
		node.Target = n.Attr("href")
	}
	return []*lawdoc.Node{node}
}
