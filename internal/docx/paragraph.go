// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import (
	"strings"

	"baliance.com/gooxml"
	"baliance.com/gooxml/document"
	"baliance.com/gooxml/schema/soo/wml"
)

const (
	// LinkColor is the RGB value applied to every generated hyperlink run.
	LinkColor = "0000FF"
	// LinkUnderline is the underline style applied to every generated
	// hyperlink run.
	LinkUnderline = "single"
)

// Segment is one element of a rebuilt paragraph: literal text when URL is
// empty, otherwise a hyperlink to URL displaying Text.
type Segment struct {
	Text string
	URL  string
}

// IsLink reports whether the segment renders as a hyperlink.
func (s Segment) IsLink() bool { return s.URL != "" }

// Span is a run read back from a paragraph, in document order.
type Span struct {
	Text string

	// LinkID is the relationship ID of the enclosing w:hyperlink, or empty
	// for runs outside a hyperlink.
	LinkID string

	// Color and Underline are the w:val of the run's w:color and w:u
	// properties, empty when unset.
	Color     string
	Underline string
}

// Paragraph is a mutable view of a single w:p element.
type Paragraph struct {
	p document.Paragraph
}

// Text returns the concatenated text of every run in the paragraph, including
// runs inside hyperlinks. Tabs read as '\t', line breaks as '\n', and
// non-breaking hyphens as '-'.
func (p Paragraph) Text() string {
	var b strings.Builder
	for _, s := range p.Spans() {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Spans returns the paragraph's runs in document order.
func (p Paragraph) Spans() []Span {
	var spans []Span
	for _, pc := range p.p.X().EG_PContent {
		spans = appendHyperlinkSpans(spans, pc.Hyperlink)
		spans = appendRunSpans(spans, pc.EG_ContentRunContent, "")
	}
	return spans
}

// Replace discards the paragraph's runs and hyperlinks and appends segs in
// order. Paragraph properties are kept. It returns the hyperlinks it added.
func (p Paragraph) Replace(segs []Segment) []Link {
	p.p.X().EG_PContent = nil
	var links []Link
	for _, s := range segs {
		if s.IsLink() {
			links = append(links, p.AppendHyperlink(s.URL, s.Text))
			continue
		}
		p.AppendText(s.Text)
	}
	return links
}

// AppendText appends a plain run showing text. Tabs and newlines become
// w:tab and w:br so the run reads back identically.
func (p Paragraph) AppendText(text string) {
	if text == "" {
		return
	}
	setRunText(p.p.AddRun(), text)
}

// AppendHyperlink registers url as an external hyperlink relationship of the
// document part and appends a w:hyperlink showing text in a blue, single
// underlined run. It returns the registered relationship.
func (p Paragraph) AppendHyperlink(url, text string) Link {
	hl := p.p.AddHyperLink()
	hl.SetTarget(url)

	run := hl.AddRun()
	rpr := run.Properties().X()
	rpr.Color = wml.NewCT_Color()
	rpr.Color.ValAttr.ST_HexColorRGB = gooxml.String(LinkColor)
	rpr.U = wml.NewCT_Underline()
	rpr.U.ValAttr = wml.ST_UnderlineSingle
	setRunText(run, text)

	var id string
	if hl.X().IdAttr != nil {
		id = *hl.X().IdAttr
	}
	return Link{ID: id, Target: url}
}

func setRunText(run document.Run, text string) {
	for i, line := range strings.Split(text, "\n") {
		if i > 0 {
			run.AddBreak()
		}
		for j, part := range strings.Split(line, "\t") {
			if j > 0 {
				run.AddTab()
			}
			if part != "" {
				run.AddText(part)
			}
		}
	}
}

func appendHyperlinkSpans(spans []Span, hl *wml.CT_Hyperlink) []Span {
	if hl == nil {
		return spans
	}
	var id string
	if hl.IdAttr != nil {
		id = *hl.IdAttr
	}
	spans = appendHyperlinkSpans(spans, hl.Hyperlink)
	return appendRunSpans(spans, hl.EG_ContentRunContent, id)
}

func appendRunSpans(spans []Span, content []*wml.EG_ContentRunContent, linkID string) []Span {
	for _, rc := range content {
		if rc.R == nil {
			continue
		}
		s := Span{Text: runText(rc.R), LinkID: linkID}
		if rpr := rc.R.RPr; rpr != nil {
			if rpr.Color != nil && rpr.Color.ValAttr.ST_HexColorRGB != nil {
				s.Color = *rpr.Color.ValAttr.ST_HexColorRGB
			}
			if rpr.U != nil {
				s.Underline = rpr.U.ValAttr.String()
			}
		}
		spans = append(spans, s)
	}
	return spans
}

// runText renders the visible characters of a run. Anything else in the run,
// such as a page break or textbox content, contributes nothing.
func runText(r *wml.CT_R) string {
	var b strings.Builder
	for _, ic := range r.EG_RunInnerContent {
		switch {
		case ic.T != nil:
			b.WriteString(ic.T.Content)
		case ic.Tab != nil, ic.Ptab != nil:
			b.WriteByte('\t')
		case ic.Br != nil:
			if isLineBreak(ic.Br) {
				b.WriteByte('\n')
			}
		case ic.Cr != nil:
			b.WriteByte('\n')
		case ic.NoBreakHyphen != nil:
			b.WriteByte('-')
		}
	}
	return b.String()
}

func isLineBreak(br *wml.CT_Br) bool {
	return br.TypeAttr == wml.ST_BrTypeUnset || br.TypeAttr == wml.ST_BrTypeTextWrapping
}
