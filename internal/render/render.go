// Package render converts Akoma Ntoso style act markup into a lawdoc tree.
// The render is a pure function of the input text: parse, extract metadata,
// then a single recursive pass over the body and attachments. Unrecognized
// elements degrade to their children or text instead of failing the render;
// only an unparseable input or a missing act root is fatal.
package render

import (
	"strings"

	"github.com/lawlens/aknrender/internal/lawdoc"
	"github.com/lawlens/aknrender/internal/markup"
)

// Structural tags and the kind each maps to. num and heading children are
// pulled out before the content pass so a node never renders its own label
// twice.
var structuralKinds = map[string]lawdoc.Kind{
	"part":         lawdoc.KindPart,
	"chapter":      lawdoc.KindChapter,
	"section":      lawdoc.KindSection,
	"subsection":   lawdoc.KindSubsection,
	"paragraph":    lawdoc.KindParagraph,
	"subparagraph": lawdoc.KindSubparagraph,
	"point":        lawdoc.KindPoint,
	"hcontainer":   lawdoc.KindHContainer,
	"attachment":   lawdoc.KindSchedule,
}

// Wrapper tags that contribute no node of their own; their children render
// in place.
var transparentTags = map[string]bool{
	"content":  true,
	"body":     true,
	"mainBody": true,
	"doc":      true,
	"subFlow":  true,
}

// Render parses markupText and produces the rendered document. The only
// failures are *ParseError (malformed markup) and *StructureError (no act
// element); everything else degrades per-node.
func Render(markupText string) (*lawdoc.Document, error) {
	tree, err := markup.ParseString(markupText)
	if err != nil {
		return nil, &ParseError{Err: err}
	}

	act := tree.Find("act")
	if act == nil {
		return nil, &StructureError{Msg: "document has no act element"}
	}

	doc := &lawdoc.Document{Meta: ExtractMeta(tree)}

	// Body first, attachments after: schedules are appended material, not
	// part of the primary hierarchy.
	if body := act.FirstChild("body"); body != nil {
		doc.Body = renderChildren(body)
	}
	doc.Schedules = renderAttachments(act)

	return doc, nil
}

func renderAttachments(act *markup.Node) []*lawdoc.Node {
	var out []*lawdoc.Node
	for _, c := range act.Children {
		switch c.Tag {
		case "attachments":
			for _, a := range c.Children {
				out = append(out, renderNode(a)...)
			}
		case "attachment":
			out = append(out, renderNode(c)...)
		}
	}
	return out
}

// renderChildren renders every child of n in order, dropping nodes that
// produce nothing.
func renderChildren(n *markup.Node) []*lawdoc.Node {
	var out []*lawdoc.Node
	for _, c := range n.Children {
		out = append(out, renderNode(c)...)
	}
	return out
}

// renderNode is the dispatcher: one markup node to zero or more rendered
// nodes. Text between block elements renders trimmed; pure whitespace
// renders nothing.
func renderNode(n *markup.Node) []*lawdoc.Node {
	if n.IsText() {
		if t := strings.TrimSpace(n.Text); t != "" {
			return []*lawdoc.Node{lawdoc.TextNode(t)}
		}
		return nil
	}

	if kind, ok := structuralKinds[n.Tag]; ok {
		return []*lawdoc.Node{renderStructural(kind, n)}
	}
	if transparentTags[n.Tag] {
		return renderChildren(n)
	}
	if isInlineTag(n.Tag) {
		return renderInlineNode(n)
	}

	switch n.Tag {
	case "p":
		return []*lawdoc.Node{{Kind: lawdoc.KindTextParagraph, Children: renderInlineChildren(n)}}
	case "intro", "listIntroduction":
		return []*lawdoc.Node{{Kind: lawdoc.KindIntro, Children: renderChildren(n)}}
	case "wrapUp", "listWrapUp":
		return []*lawdoc.Node{{Kind: lawdoc.KindWrapUp, Children: renderChildren(n)}}
	case "blockList":
		return []*lawdoc.Node{{Kind: lawdoc.KindBlockList, Children: renderChildren(n)}}
	case "item":
		return []*lawdoc.Node{{Kind: lawdoc.KindListItem, Children: renderChildren(n)}}
	case "table":
		return []*lawdoc.Node{renderTable(n)}
	}

	return renderFallback(n)
}

// renderStructural extracts the first num and heading children, then renders
// every remaining child as content. Nodes tagged num or heading never appear
// among the content children.
func renderStructural(kind lawdoc.Kind, n *markup.Node) *lawdoc.Node {
	node := &lawdoc.Node{
		Kind:    kind,
		Num:     n.ChildText("num"),
		Heading: n.ChildText("heading"),
	}
	for _, c := range n.Children {
		if c.Tag == "num" || c.Tag == "heading" {
			continue
		}
		node.Children = append(node.Children, renderNode(c)...)
	}
	return node
}

// renderFallback implements the unknown-tag policy: render element children
// flattened, else render trimmed text, else nothing.
func renderFallback(n *markup.Node) []*lawdoc.Node {
	if hasElementChildren(n) {
		return renderChildren(n)
	}
	if t := strings.TrimSpace(n.TextContent()); t != "" {
		return []*lawdoc.Node{lawdoc.TextNode(t)}
	}
	return nil
}

func hasElementChildren(n *markup.Node) bool {
	for _, c := range n.Children {
		if !c.IsText() {
			return true
		}
	}
	return false
}
