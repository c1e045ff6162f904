package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/lawlens/aknrender/internal/lawdoc"
)

// renderParagraph renders a single <p> body and returns its inline children.
func renderParagraph(t *testing.T, inner string) []*lawdoc.Node {
	t.Helper()
	doc, err := Render(`<act><body><section><num>1</num><content><p>` + inner + `</p></content></section></body></act>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	p := doc.Body[0].Children[0]
	if p.Kind != lawdoc.KindTextParagraph {
		t.Fatalf("expected text paragraph, got %v", p.Kind)
	}
	return p.Children
}

func TestInline_NestedFormattingPreserved(t *testing.T) {
	spans := renderParagraph(t, `before <b>bold <ref href="#s2">linked <i>italic</i></ref></b> after`)

	want := []*lawdoc.Node{
		lawdoc.TextNode("before "),
		{
			Kind: lawdoc.KindBold,
			Children: []*lawdoc.Node{
				lawdoc.TextNode("bold "),
				{
					Kind:   lawdoc.KindRef,
					Target: "#s2",
					Children: []*lawdoc.Node{
						lawdoc.TextNode("linked "),
						{
							Kind:     lawdoc.KindItalic,
							Children: []*lawdoc.Node{lawdoc.TextNode("italic")},
						},
					},
				},
			},
		},
		lawdoc.TextNode(" after"),
	}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("inline tree mismatch (-want +got):\n%s", diff)
	}
}

func TestInline_OrderPreservedAcrossMixedContent(t *testing.T) {
	spans := renderParagraph(t, `a <i>b</i> c <u>d</u> e`)

	wantKinds := []lawdoc.Kind{
		lawdoc.KindText,
		lawdoc.KindItalic,
		lawdoc.KindText,
		lawdoc.KindUnderline,
		lawdoc.KindText,
	}
	if len(spans) != len(wantKinds) {
		t.Fatalf("expected %d spans, got %d", len(wantKinds), len(spans))
	}
	for i, k := range wantKinds {
		if spans[i].Kind != k {
			t.Errorf("spans[%d]: expected %v, got %v", i, k, spans[i].Kind)
		}
	}
}

func TestInline_WhitespaceNotNormalized(t *testing.T) {
	spans := renderParagraph(t, `keep  double  spaces`)
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	if spans[0].Text != "keep  double  spaces" {
		t.Errorf("inline text must not be normalized, got %q", spans[0].Text)
	}
}

func TestInline_DefinedTermVariants(t *testing.T) {
	for _, tag := range []string{"def", "term"} {
		spans := renderParagraph(t, `the <`+tag+`>Commission</`+tag+`>`)
		if len(spans) != 2 {
			t.Fatalf("%s: expected 2 spans, got %d", tag, len(spans))
		}
		if spans[1].Kind != lawdoc.KindTerm {
			t.Errorf("%s: expected term kind, got %v", tag, spans[1].Kind)
		}
	}
}

func TestInline_UnknownTagRecursesTransparently(t *testing.T) {
	spans := renderParagraph(t, `a <span>b <b>c</b></span> d`)

	want := []*lawdoc.Node{
		lawdoc.TextNode("a "),
		lawdoc.TextNode("b "),
		{Kind: lawdoc.KindBold, Children: []*lawdoc.Node{lawdoc.TextNode("c")}},
		lawdoc.TextNode(" d"),
	}
	if diff := cmp.Diff(want, spans); diff != "" {
		t.Errorf("unknown inline tag should flatten (-want +got):\n%s", diff)
	}
}

func TestInline_DeepNesting(t *testing.T) {
	inner := "deep"
	for i := 0; i < 30; i++ {
		inner = "<b>" + inner + "</b>"
	}
	spans := renderParagraph(t, inner)

	depth := 0
	n := spans[0]
	for n.Kind == lawdoc.KindBold {
		depth++
		n = n.Children[0]
	}
	if depth != 30 {
		t.Errorf("expected nesting depth 30, got %d", depth)
	}
	if n.Text != "deep" {
		t.Errorf("expected innermost text %q, got %q", "deep", n.Text)
	}
}
