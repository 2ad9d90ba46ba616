// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the ecfr-linker pipeline:
// stage configuration and the reports the stages produce.
package types

// Location identifies where in a document a paragraph lives.
type Location string

const (
	LocationBody  Location = "body"
	LocationTable Location = "table"
)

// CitationLink is a citation found in a paragraph and the eCFR URL it links to.
type CitationLink struct {
	// Citation is the matched text, e.g. "97.111(a)(1)".
	Citation string `json:"citation" yaml:"citation"`

	// Section is the section number captured from the citation, e.g. "111".
	Section string `json:"section" yaml:"section"`

	// URL is the generated deep link.
	URL string `json:"url" yaml:"url"`

	// Start and End are byte offsets of Citation within the paragraph text.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// ParagraphReport lists the citations found in one paragraph.
type ParagraphReport struct {
	// Index is the zero-based position of the paragraph among the paragraphs
	// of the same Location.
	Index int `json:"index" yaml:"index"`

	Location Location `json:"location" yaml:"location"`

	// Text is the paragraph's plain text.
	Text string `json:"text" yaml:"text"`

	Citations []CitationLink `json:"citations" yaml:"citations"`
}

// ScanReport is the read-only result of scanning a document for citations.
type ScanReport struct {
	// Source is the scanned document path.
	Source string `json:"source" yaml:"source"`

	// Paragraphs is the number of paragraphs examined.
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`

	// Citations is the total number of citations found.
	Citations int `json:"citations" yaml:"citations"`

	// Matches holds one entry per paragraph with at least one citation, in
	// document order.
	Matches []ParagraphReport `json:"matches" yaml:"matches"`
}
