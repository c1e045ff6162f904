// Package lawdoc defines the rendered legal-document tree: a plain recursive
// data structure the presentation layer consumes. It carries no rendering
// logic and no UI coupling; per-kind class markers and indent levels are the
// hook points styling attaches to.
package lawdoc

import "encoding/json"

// Kind identifies what a rendered node is. The set is closed: structural
// hierarchy, block content, inline runs, and table parts.
type Kind int

const (
	// Structural kinds, in decreasing hierarchy rank.
	KindPart Kind = iota
	KindChapter
	KindSection
	KindSubsection
	KindParagraph
	KindSubparagraph
	KindPoint
	KindHContainer
	KindSchedule

	// Block content kinds.
	KindIntro
	KindWrapUp
	KindTextParagraph
	KindBlockList
	KindListItem

	// Inline kinds.
	KindText
	KindBold
	KindItalic
	KindUnderline
	KindRef
	KindTerm

	// Table kinds.
	KindTable
	KindRow
	KindHeaderCell
	KindDataCell
)

// Node is one rendered node. Which fields are meaningful depends on Kind:
// structural nodes may carry Num and Heading, KindText carries Text,
// KindRef carries Target. Children keep source order.
type Node struct {
	Kind     Kind    `json:"kind"`
	Num      string  `json:"num,omitempty"`
	Heading  string  `json:"heading,omitempty"`
	Text     string  `json:"text,omitempty"`
	Target   string  `json:"target,omitempty"`
	Children []*Node `json:"children,omitempty"`
}

// Meta is document-level metadata pulled from the identification block.
// Every field is optional; absent fields are empty.
type Meta struct {
	CountryCode     string `json:"country_code,omitempty"`
	CountryName     string `json:"country_name,omitempty"`
	Title           string `json:"title,omitempty"`
	ChapterLabel    string `json:"chapter_label,omitempty"`
	PublicationName string `json:"publication_name,omitempty"`
	PublicationDate string `json:"publication_date,omitempty"`
	AssentDate      string `json:"assent_date,omitempty"`
	Year            string `json:"year,omitempty"`
	LongTitle       string `json:"long_title,omitempty"`
}

// Document is a complete render result. Schedules hold attachment material,
// rendered after the body under its own grouping by the presentation layer.
// Meta is nil when no metadata was found in the source.
type Document struct {
	Meta      *Meta   `json:"meta,omitempty"`
	Body      []*Node `json:"body"`
	Schedules []*Node `json:"schedules,omitempty"`
}

var kindNames = map[Kind]string{
	KindPart:          "part",
	KindChapter:       "chapter",
	KindSection:       "section",
	KindSubsection:    "subsection",
	KindParagraph:     "paragraph",
	KindSubparagraph:  "subparagraph",
	KindPoint:         "point",
	KindHContainer:    "hcontainer",
	KindSchedule:      "schedule",
	KindIntro:         "intro",
	KindWrapUp:        "wrapup",
	KindTextParagraph: "text-paragraph",
	KindBlockList:     "block-list",
	KindListItem:      "list-item",
	KindText:          "text",
	KindBold:          "bold",
	KindItalic:        "italic",
	KindUnderline:     "underline",
	KindRef:           "ref",
	KindTerm:          "term",
	KindTable:         "table",
	KindRow:           "row",
	KindHeaderCell:    "header-cell",
	KindDataCell:      "data-cell",
}

// Class returns the CSS-class-equivalent marker for the node kind.
func (k Kind) Class() string {
	if name, ok := kindNames[k]; ok {
		return "akn-" + name
	}
	return "akn-unknown"
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

// MarshalJSON emits the kind name rather than its ordinal so the JSON tree
// is stable across reorderings of the enumeration.
func (k Kind) MarshalJSON() ([]byte, error) {
	return json.Marshal(k.String())
}

// Indent levels per structural kind. Higher means deeper in the hierarchy;
// sibling kinds at the bottom share a level.
var indentLevels = map[Kind]int{
	KindPart:         0,
	KindChapter:      1,
	KindSection:      2,
	KindSubsection:   3,
	KindParagraph:    4,
	KindSubparagraph: 5,
	KindPoint:        5,
	KindHContainer:   2,
	KindSchedule:     0,
}

// IndentLevel returns the hierarchy indent for structural kinds and 0 for
// everything else.
func (k Kind) IndentLevel() int {
	return indentLevels[k]
}

// IsStructural reports whether the kind carries hierarchy (num/heading).
func (k Kind) IsStructural() bool {
	_, ok := indentLevels[k]
	return ok
}

// TextNode builds a plain text run.
func TextNode(text string) *Node {
	return &Node{Kind: KindText, Text: text}
}
