package source

import (
	"io"
	"strings"

	"github.com/lawlens/aknrender/internal/lawdoc"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownSource handles markdown-authored drafts using goldmark. Headings
// become structural nodes by level, inline emphasis and links map onto the
// lawdoc inline kinds.
type MarkdownSource struct{}

// Heading levels map straight onto the structural hierarchy.
var headingKinds = [...]lawdoc.Kind{
	1: lawdoc.KindPart,
	2: lawdoc.KindChapter,
	3: lawdoc.KindSection,
	4: lawdoc.KindSubsection,
	5: lawdoc.KindParagraph,
	6: lawdoc.KindSubparagraph,
}

func (s *MarkdownSource) Load(r io.Reader, filename string) (*lawdoc.Document, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	md := goldmark.New()
	root := md.Parser().Parse(text.NewReader(src))

	// Stack tracks the current structural nesting by heading level.
	type stackEntry struct {
		node  *lawdoc.Node
		level int
	}
	top := &lawdoc.Node{}
	stack := []stackEntry{{node: top, level: 0}}

	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		if h, ok := n.(*ast.Heading); ok {
			level := h.Level
			if level > 6 {
				level = 6
			}
			sec := &lawdoc.Node{
				Kind:    headingKinds[level],
				Heading: strings.TrimSpace(string(h.Text(src))),
			}
			for len(stack) > 1 && stack[len(stack)-1].level >= level {
				stack = stack[:len(stack)-1]
			}
			parent := stack[len(stack)-1].node
			parent.Children = append(parent.Children, sec)
			stack = append(stack, stackEntry{node: sec, level: level})
			continue
		}

		blocks := markdownBlock(n, src)
		cur := stack[len(stack)-1].node
		cur.Children = append(cur.Children, blocks...)
	}

	return &lawdoc.Document{Body: top.Children}, nil
}

// markdownBlock converts one block-level goldmark node.
func markdownBlock(n ast.Node, src []byte) []*lawdoc.Node {
	switch node := n.(type) {
	case *ast.Paragraph, *ast.TextBlock:
		spans := markdownInlines(n, src)
		if len(spans) == 0 {
			return nil
		}
		return []*lawdoc.Node{{Kind: lawdoc.KindTextParagraph, Children: spans}}
	case *ast.List:
		list := &lawdoc.Node{Kind: lawdoc.KindBlockList}
		for item := node.FirstChild(); item != nil; item = item.NextSibling() {
			li := &lawdoc.Node{Kind: lawdoc.KindListItem}
			for c := item.FirstChild(); c != nil; c = c.NextSibling() {
				li.Children = append(li.Children, markdownBlock(c, src)...)
			}
			list.Children = append(list.Children, li)
		}
		return []*lawdoc.Node{list}
	case *ast.Blockquote:
		var out []*lawdoc.Node
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			out = append(out, markdownBlock(c, src)...)
		}
		return out
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		t := blockLines(n, src)
		if t == "" {
			return nil
		}
		return []*lawdoc.Node{{
			Kind:     lawdoc.KindTextParagraph,
			Children: []*lawdoc.Node{lawdoc.TextNode(t)},
		}}
	case *ast.ThematicBreak:
		return nil
	default:
		// Unknown block: flatten whatever inline content it has.
		spans := markdownInlines(n, src)
		if len(spans) == 0 {
			return nil
		}
		return []*lawdoc.Node{{Kind: lawdoc.KindTextParagraph, Children: spans}}
	}
}

// markdownInlines converts the inline children of a block, preserving order
// and nesting.
func markdownInlines(n ast.Node, src []byte) []*lawdoc.Node {
	var out []*lawdoc.Node
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, markdownInline(c, src)...)
	}
	return out
}

func markdownInline(n ast.Node, src []byte) []*lawdoc.Node {
	switch node := n.(type) {
	case *ast.Text:
		t := string(node.Value(src))
		if node.SoftLineBreak() || node.HardLineBreak() {
			t += "\n"
		}
		if t == "" {
			return nil
		}
		return []*lawdoc.Node{lawdoc.TextNode(t)}
	case *ast.Emphasis:
		kind := lawdoc.KindItalic
		if node.Level >= 2 {
			kind = lawdoc.KindBold
		}
		return []*lawdoc.Node{{Kind: kind, Children: markdownInlines(n, src)}}
	case *ast.Link:
		return []*lawdoc.Node{{
			Kind:     lawdoc.KindRef,
			Target:   string(node.Destination),
			Children: markdownInlines(n, src),
		}}
	case *ast.AutoLink:
		url := string(node.URL(src))
		return []*lawdoc.Node{{
			Kind:     lawdoc.KindRef,
			Target:   url,
			Children: []*lawdoc.Node{lawdoc.TextNode(url)},
		}}
	default:
		return markdownInlines(n, src)
	}
}

// blockLines collects the raw source lines of a block node.
func blockLines(n ast.Node, src []byte) string {
	var buf strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		buf.Write(line.Value(src))
	}
	return strings.TrimRight(buf.String(), "\n")
}
