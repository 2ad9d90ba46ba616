// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package linker rewrites Part 97 citations in a document as eCFR hyperlinks.
// It drives the pipeline: open the document, rebuild each paragraph that holds
// a citation, and save the result.
package linker

import (
	"github.com/pdiddy/ecfr-linker/internal/citation"
	"github.com/pdiddy/ecfr-linker/internal/docx"
)

// Paragraph is the part of a document paragraph the rebuilder needs: its
// plain text and a way to replace its content wholesale. Replace returns the
// hyperlinks it registered, one per link segment.
type Paragraph interface {
	Text() string
	Replace(segs []docx.Segment) []docx.Link
}

// Plan splits text around matches into the segments that replace it. Gaps
// between citations become literal segments (empty gaps are dropped) and each
// citation becomes a link segment showing the citation text. Concatenating
// the segment texts yields text unchanged. Matches must be ordered and
// non-overlapping, as citation.Scan produces them.
func Plan(text string, matches []citation.Match) []docx.Segment {
	segs := make([]docx.Segment, 0, 2*len(matches)+1)
	last := 0
	for _, m := range matches {
		if m.Start > last {
			segs = append(segs, docx.Segment{Text: text[last:m.Start]})
		}
		segs = append(segs, docx.Segment{Text: m.Citation, URL: m.URL()})
		last = m.End
	}
	if last < len(text) {
		segs = append(segs, docx.Segment{Text: text[last:]})
	}
	return segs
}

// RebuildResult describes what RebuildParagraph did to one paragraph.
type RebuildResult struct {
	// Candidate is true when the paragraph contains the citation prefix.
	Candidate bool

	// Matches lists the citations found, in order.
	Matches []citation.Match

	// Rebuilt is true when the paragraph content was replaced.
	Rebuilt bool

	// Links are the hyperlinks inserted, in paragraph order.
	Links []docx.Link
}

// RebuildParagraph links every citation in p. A paragraph without the
// citation prefix, or with the prefix but no full citation, is left exactly
// as it was. Otherwise the whole content is planned first and then swapped in
// with a single Replace.
func RebuildParagraph(p Paragraph) RebuildResult {
	text := p.Text()
	if !citation.MayContain(text) {
		return RebuildResult{}
	}

	res := RebuildResult{Candidate: true, Matches: citation.FindAll(text)}
	if len(res.Matches) == 0 {
		return res
	}

	res.Links = p.Replace(Plan(text, res.Matches))
	res.Rebuilt = true
	return res
}
