package render

import (
	"testing"

	"github.com/lawlens/aknrender/internal/markup"
)

func parseMeta(t *testing.T, input string) *markup.Node {
	t.Helper()
	tree, err := markup.ParseString(input)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}
	return tree
}

func TestExtractMeta_AllFields(t *testing.T) {
	input := `<akomaNtoso><act>
		<meta><identification>
			<FRBRWork>
				<FRBRcountry value="ke"/>
				<FRBRalias name="title" value="Example Act"/>
				<FRBRnumber value="Cap. 16"/>
				<FRBRdate name="assent" date="1998-07-15"/>
			</FRBRWork>
		</identification>
		<publication name="Gazette" showAs="Kenya Gazette Supplement" date="1998-08-01"/>
		</meta>
		<preface><longTitle><p>An Act of Parliament to exemplify rendering.</p></longTitle></preface>
		<body><section><num>1</num></section></body>
	</act></akomaNtoso>`

	meta := ExtractMeta(parseMeta(t, input))
	if meta == nil {
		t.Fatal("expected metadata")
	}
	if meta.CountryCode != "ke" || meta.CountryName != "Kenya" {
		t.Errorf("country: got %q / %q", meta.CountryCode, meta.CountryName)
	}
	if meta.Title != "Example Act" {
		t.Errorf("title: got %q", meta.Title)
	}
	if meta.ChapterLabel != "Cap. 16" {
		t.Errorf("chapter label: got %q", meta.ChapterLabel)
	}
	if meta.PublicationName != "Kenya Gazette Supplement" {
		t.Errorf("publication name: got %q", meta.PublicationName)
	}
	if meta.PublicationDate != "1998-08-01" {
		t.Errorf("publication date: got %q", meta.PublicationDate)
	}
	if meta.AssentDate != "1998-07-15" {
		t.Errorf("assent date: got %q", meta.AssentDate)
	}
	if meta.Year != "1998" {
		t.Errorf("year: got %q", meta.Year)
	}
	if meta.LongTitle != "An Act of Parliament to exemplify rendering." {
		t.Errorf("long title: got %q", meta.LongTitle)
	}
}

func TestExtractMeta_FieldsIndependentlyOptional(t *testing.T) {
	input := `<act><meta><identification><FRBRWork><FRBRcountry value="zm"/></FRBRWork></identification></meta><body/></act>`
	meta := ExtractMeta(parseMeta(t, input))
	if meta == nil {
		t.Fatal("expected metadata from a single field")
	}
	if meta.CountryName != "ZM" {
		t.Errorf("unmapped codes are upper-cased, got %q", meta.CountryName)
	}
	if meta.Title != "" || meta.AssentDate != "" || meta.LongTitle != "" {
		t.Errorf("absent fields must stay empty, got %+v", meta)
	}
}

func TestExtractMeta_NothingFound(t *testing.T) {
	meta := ExtractMeta(parseMeta(t, `<act><body><section><num>1</num></section></body></act>`))
	if meta != nil {
		t.Errorf("expected nil when no field is present, got %+v", meta)
	}
}

func TestExtractMeta_AliasMustBeTitle(t *testing.T) {
	input := `<act><meta><identification><FRBRWork>
		<FRBRalias name="shortTitle" value="Wrong"/>
		<FRBRalias name="title" value="Right"/>
	</FRBRWork></identification></meta><body/></act>`
	meta := ExtractMeta(parseMeta(t, input))
	if meta == nil || meta.Title != "Right" {
		t.Fatalf("expected the title alias, got %+v", meta)
	}
}

func TestExtractMeta_AssentDateMustBeTagged(t *testing.T) {
	input := `<act><meta><identification><FRBRWork>
		<FRBRdate name="publication" date="2001-01-01"/>
		<FRBRdate name="assent" date="2004-10-01"/>
	</FRBRWork></identification></meta><body/></act>`
	meta := ExtractMeta(parseMeta(t, input))
	if meta == nil || meta.AssentDate != "2004-10-01" {
		t.Fatalf("expected the assent date, got %+v", meta)
	}
	if meta.Year != "2004" {
		t.Errorf("year: got %q", meta.Year)
	}
}

func TestExtractMeta_YearDerivation(t *testing.T) {
	cases := []struct {
		date string
		want string
	}{
		{"1998-07-15", "1998"},
		{"2024", "2024"},
		{"15/07/1998", ""},
		{"n.d.", ""},
		{"", ""},
	}
	for _, tc := range cases {
		if got := yearOf(tc.date); got != tc.want {
			t.Errorf("yearOf(%q): expected %q, got %q", tc.date, tc.want, got)
		}
	}
}

func TestExtractMeta_PublicationShowAsFallsBackToName(t *testing.T) {
	input := `<act><meta><publication name="Gazette" date="2020-01-01"/></meta><body/></act>`
	meta := ExtractMeta(parseMeta(t, input))
	if meta == nil || meta.PublicationName != "Gazette" {
		t.Fatalf("expected name fallback, got %+v", meta)
	}
}
