package render

import (
	"strings"

	"github.com/lawlens/aknrender/internal/lawdoc"
	"github.com/lawlens/aknrender/internal/markup"
)

// ExtractMeta scans the parsed tree once for document-level metadata. Every
// field is read independently and tolerates absence; the result is nil only
// when no field at all was found. Extraction never fails a render.
func ExtractMeta(tree *markup.Node) *lawdoc.Meta {
	meta := lawdoc.Meta{}

	if country := tree.Find("FRBRcountry"); country != nil {
		if code := country.Attr("value"); code != "" {
			meta.CountryCode = code
			meta.CountryName = countryName(code)
		}
	}

	for _, alias := range tree.FindAll("FRBRalias") {
		if alias.Attr("name") == "title" {
			meta.Title = alias.Attr("value")
			break
		}
	}

	// The work number carries the chapter label, e.g. "Cap. 16".
	if num := tree.Find("FRBRnumber"); num != nil {
		meta.ChapterLabel = num.Attr("value")
	}

	if pub := tree.Find("publication"); pub != nil {
		meta.PublicationName = pub.Attr("showAs")
		if meta.PublicationName == "" {
			meta.PublicationName = pub.Attr("name")
		}
		meta.PublicationDate = pub.Attr("date")
	}

	for _, date := range tree.FindAll("FRBRdate") {
		if date.Attr("name") == "assent" {
			meta.AssentDate = date.Attr("date")
			meta.Year = yearOf(meta.AssentDate)
			break
		}
	}

	if preface := tree.Find("preface"); preface != nil {
		if long := preface.Find("longTitle"); long != nil {
			meta.LongTitle = strings.TrimSpace(long.TextContent())
		}
	}

	if meta == (lawdoc.Meta{}) {
		return nil
	}
	return &meta
}

func countryName(code string) string {
	if strings.EqualFold(code, "ke") {
		return "Kenya"
	}
	return strings.ToUpper(code)
}

// yearOf takes the leading four digits of an ISO-style date. Dates that do
// not start with four digits yield no year.
func yearOf(date string) string {
	if len(date) < 4 {
		return ""
	}
	year := date[:4]
	for _, r := range year {
		if r < '0' || r > '9' {
			return ""
		}
	}
	return year
}
