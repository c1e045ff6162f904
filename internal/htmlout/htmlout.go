// Package htmlout is a thin adapter from the rendered lawdoc tree to HTML.
// The output uses per-kind classes and an indent class per structural node;
// the caller's size preference becomes a class on the document wrapper, so
// actual styling stays in the host page's stylesheet.
package htmlout

import (
	"fmt"
	"strings"

	"github.com/lawlens/aknrender/internal/lawdoc"
	"golang.org/x/net/html"
)

// Size is the caller-supplied text size preference.
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// Normalize maps unknown values to the medium default.
func (s Size) Normalize() Size {
	switch s {
	case SizeSmall, SizeMedium, SizeLarge:
		return s
	}
	return SizeMedium
}

// Render produces the HTML for a rendered document.
func Render(doc *lawdoc.Document, size Size) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="akn-document akn-size-%s">`, size.Normalize())

	if doc.Meta != nil {
		writeMeta(&b, doc.Meta)
	}
	for _, n := range doc.Body {
		writeNode(&b, n)
	}
	if len(doc.Schedules) > 0 {
		b.WriteString(`<div class="akn-schedules"><h2 class="akn-schedules-heading">Schedules</h2>`)
		for _, n := range doc.Schedules {
			writeNode(&b, n)
		}
		b.WriteString(`</div>`)
	}

	b.WriteString(`</div>`)
	return b.String()
}

func writeMeta(b *strings.Builder, m *lawdoc.Meta) {
	b.WriteString(`<header class="akn-meta">`)
	if m.CountryName != "" {
		fmt.Fprintf(b, `<div class="akn-meta-country">%s</div>`, html.EscapeString(m.CountryName))
	}
	if m.Title != "" {
		fmt.Fprintf(b, `<h1 class="akn-meta-title">%s</h1>`, html.EscapeString(m.Title))
	}
	if m.ChapterLabel != "" {
		fmt.Fprintf(b, `<div class="akn-meta-chapter">%s</div>`, html.EscapeString(m.ChapterLabel))
	}
	if m.LongTitle != "" {
		fmt.Fprintf(b, `<p class="akn-meta-long-title">%s</p>`, html.EscapeString(m.LongTitle))
	}
	if m.PublicationName != "" || m.PublicationDate != "" {
		fmt.Fprintf(b, `<div class="akn-meta-publication">%s</div>`,
			html.EscapeString(strings.TrimSpace(m.PublicationName+" "+m.PublicationDate)))
	}
	if m.AssentDate != "" {
		fmt.Fprintf(b, `<div class="akn-meta-assent">Assented to %s</div>`, html.EscapeString(m.AssentDate))
	}
	b.WriteString(`</header>`)
}

func writeNode(b *strings.Builder, n *lawdoc.Node) {
	switch {
	case n.Kind.IsStructural():
		writeStructural(b, n)
	case n.Kind == lawdoc.KindText:
		b.WriteString(html.EscapeString(n.Text))
	default:
		writeBlockOrInline(b, n)
	}
}

func writeStructural(b *strings.Builder, n *lawdoc.Node) {
	fmt.Fprintf(b, `<div class="%s akn-indent-%d">`, n.Kind.Class(), n.Kind.IndentLevel())
	if n.Num != "" || n.Heading != "" {
		b.WriteString(`<div class="akn-label">`)
		if n.Num != "" {
			fmt.Fprintf(b, `<span class="akn-num">%s</span>`, html.EscapeString(n.Num))
		}
		if n.Heading != "" {
			fmt.Fprintf(b, `<span class="akn-heading">%s</span>`, html.EscapeString(n.Heading))
		}
		b.WriteString(`</div>`)
	}
	for _, c := range n.Children {
		writeNode(b, c)
	}
	b.WriteString(`</div>`)
}

func writeBlockOrInline(b *strings.Builder, n *lawdoc.Node) {
	open, closing := tagFor(n)
	b.WriteString(open)
	for _, c := range n.Children {
		writeNode(b, c)
	}
	b.WriteString(closing)
}

func tagFor(n *lawdoc.Node) (string, string) {
	class := n.Kind.Class()
	switch n.Kind {
	case lawdoc.KindTextParagraph:
		return fmt.Sprintf(`<p class="%s">`, class), `</p>`
	case lawdoc.KindBold:
		return `<b>`, `</b>`
	case lawdoc.KindItalic:
		return `<i>`, `</i>`
	case lawdoc.KindUnderline:
		return `<u>`, `</u>`
	case lawdoc.KindRef:
		return fmt.Sprintf(`<a class="%s" href="%s">`, class, html.EscapeString(n.Target)), `</a>`
	case lawdoc.KindTerm:
		return fmt.Sprintf(`<span class="%s">`, class), `</span>`
	case lawdoc.KindTable:
		return fmt.Sprintf(`<table class="%s">`, class), `</table>`
	case lawdoc.KindRow:
		return `<tr>`, `</tr>`
	case lawdoc.KindHeaderCell:
		return fmt.Sprintf(`<th class="%s">`, class), `</th>`
	case lawdoc.KindDataCell:
		return fmt.Sprintf(`<td class="%s">`, class), `</td>`
	default:
		// Intro, wrap-up, lists and list items are generic blocks.
		return fmt.Sprintf(`<div class="%s">`, class), `</div>`
	}
}
