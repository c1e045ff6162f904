package markup

import (
	"strings"
	"testing"
)

func TestParse_BasicElement(t *testing.T) {
	root, err := ParseString(`<act><body><section id="s1">text</section></body></act>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(root.Children) != 1 {
		t.Fatalf("expected 1 top-level node, got %d", len(root.Children))
	}

	act := root.Children[0]
	if act.Tag != "act" {
		t.Errorf("expected tag %q, got %q", "act", act.Tag)
	}

	section := act.Find("section")
	if section == nil {
		t.Fatal("expected to find section")
	}
	if section.Attr("id") != "s1" {
		t.Errorf("expected id %q, got %q", "s1", section.Attr("id"))
	}
	if got := section.TextContent(); got != "text" {
		t.Errorf("expected text %q, got %q", "text", got)
	}
}

func TestParse_MixedContentPreservesOrder(t *testing.T) {
	root, err := ParseString(`<p>before <b>bold</b> middle <i>italic</i> after</p>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p := root.Children[0]
	want := []struct {
		tag  string
		text string
	}{
		{"", "before "},
		{"b", ""},
		{"", " middle "},
		{"i", ""},
		{"", " after"},
	}
	if len(p.Children) != len(want) {
		t.Fatalf("expected %d children, got %d", len(want), len(p.Children))
	}
	for i, w := range want {
		c := p.Children[i]
		if c.Tag != w.tag {
			t.Errorf("child[%d]: expected tag %q, got %q", i, w.tag, c.Tag)
		}
		if w.tag == "" && c.Text != w.text {
			t.Errorf("child[%d]: expected text %q, got %q", i, w.text, c.Text)
		}
	}
}

func TestParse_MalformedInput(t *testing.T) {
	cases := []string{
		`<act><body>`,
		`<act></wrong>`,
		`not xml at all < >`,
		``,
	}
	for _, input := range cases {
		if _, err := ParseString(input); err == nil {
			t.Errorf("expected error for input %q", input)
		}
	}
}

func TestParse_NamespacePrefixesDropped(t *testing.T) {
	root, err := ParseString(`<akn:act xmlns:akn="http://example.com/akn"><akn:body/></akn:act>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Children[0].Tag != "act" {
		t.Errorf("expected local tag %q, got %q", "act", root.Children[0].Tag)
	}
	if root.Children[0].FirstChild("body") == nil {
		t.Error("expected to find body by local name")
	}
}

func TestFirstChild_DirectOnly(t *testing.T) {
	root, err := ParseString(`<section><content><num>nested</num></content><num>direct</num></section>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	section := root.Children[0]

	num := section.FirstChild("num")
	if num == nil {
		t.Fatal("expected direct num child")
	}
	if got := num.TextContent(); got != "direct" {
		t.Errorf("FirstChild should skip nested matches, got %q", got)
	}
}

func TestFindAll_DocumentOrder(t *testing.T) {
	root, err := ParseString(`<doc><ref>a</ref><sub><ref>b</ref></sub><ref>c</ref></doc>`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	refs := root.FindAll("ref")
	if len(refs) != 3 {
		t.Fatalf("expected 3 refs, got %d", len(refs))
	}
	for i, want := range []string{"a", "b", "c"} {
		if got := refs[i].TextContent(); got != want {
			t.Errorf("refs[%d]: expected %q, got %q", i, want, got)
		}
	}
}

func TestChildText_Trimmed(t *testing.T) {
	root, err := ParseString("<section><num>\n  1.\n</num></section>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := root.Children[0].ChildText("num"); got != "1." {
		t.Errorf("expected %q, got %q", "1.", got)
	}
	if got := root.Children[0].ChildText("heading"); got != "" {
		t.Errorf("expected empty for absent child, got %q", got)
	}
}

func TestParse_Reader(t *testing.T) {
	root, err := Parse(strings.NewReader(`<act/>`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if root.Children[0].Tag != "act" {
		t.Errorf("expected act, got %q", root.Children[0].Tag)
	}
}
