package render

import (
	"github.com/lawlens/aknrender/internal/lawdoc"
	"github.com/lawlens/aknrender/internal/markup"
)

// renderTable dispatches a table's children individually: rows hold cells,
// cells hold inline content. Anything that is not a row or cell where one is
// expected falls through to the generic dispatcher, so malformed nesting
// still renders whatever content it has.
func renderTable(n *markup.Node) *lawdoc.Node {
	table := &lawdoc.Node{Kind: lawdoc.KindTable}
	for _, c := range n.Children {
		if c.Tag == "tr" {
			table.Children = append(table.Children, renderRow(c))
			continue
		}
		table.Children = append(table.Children, renderNode(c)...)
	}
	return table
}

func renderRow(n *markup.Node) *lawdoc.Node {
	row := &lawdoc.Node{Kind: lawdoc.KindRow}
	for _, c := range n.Children {
		switch c.Tag {
		case "th":
			row.Children = append(row.Children, &lawdoc.Node{
				Kind:     lawdoc.KindHeaderCell,
				Children: renderInlineChildren(c),
			})
		case "td":
			row.Children = append(row.Children, &lawdoc.Node{
				Kind:     lawdoc.KindDataCell,
				Children: renderInlineChildren(c),
			})
		default:
			row.Children = append(row.Children, renderNode(c)...)
		}
	}
	return row
}
