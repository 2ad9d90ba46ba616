// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package linker

import (
	"bytes"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ecfr-linker/internal/docx"
	"github.com/pdiddy/ecfr-linker/pkg/types"
)

func TestScanDocument(t *testing.T) {
	doc := docx.New()
	doc.AddParagraph().AppendText("Intro text.")
	doc.AddParagraph().AppendText("See 97.3(a) and 97.3(b).")
	doc.AddParagraph().AppendText("Ends with 97.")

	report := ScanDocument(doc, false, zerolog.Nop())

	assert.Equal(t, 3, report.Paragraphs)
	assert.Equal(t, 2, report.Citations)
	require.Len(t, report.Matches, 1)

	body := report.Matches[0]
	assert.Equal(t, 1, body.Index)
	assert.Equal(t, types.LocationBody, body.Location)
	assert.Equal(t, "See 97.3(a) and 97.3(b).", body.Text)
	assert.Equal(t, []types.CitationLink{
		{Citation: "97.3(a)", Section: "3", URL: "https://www.ecfr.gov/current/title-47/part-97/section-97.3#p-97.3(a)", Start: 4, End: 11},
		{Citation: "97.3(b)", Section: "3", URL: "https://www.ecfr.gov/current/title-47/part-97/section-97.3#p-97.3(b)", Start: 16, End: 23},
	}, body.Citations)
}

func TestScanDocument_Tables(t *testing.T) {
	doc, err := docx.Open(filepath.Join("testdata", "pool.docx"))
	require.NoError(t, err)

	report := ScanDocument(doc, true, zerolog.Nop())

	assert.Equal(t, 6, report.Paragraphs)
	assert.Equal(t, 4, report.Citations)
	require.Len(t, report.Matches, 4)

	assert.Equal(t, "Per 97.119(a), a two-way contact", report.Matches[1].Text)

	cell := report.Matches[2]
	assert.Equal(t, 1, cell.Index)
	assert.Equal(t, types.LocationTable, cell.Location)
	assert.Equal(t, "97.119(a)", cell.Citations[0].Citation)

	// Scanning never adds hyperlinks.
	for _, p := range append(doc.Paragraphs(), doc.TableParagraphs()...) {
		for _, s := range p.Spans() {
			assert.Empty(t, s.LinkID)
		}
	}
}

func TestScan(t *testing.T) {
	dir := t.TempDir()
	input := writeFixture(t, dir, "97.101(a)", "plain")

	report, err := Scan(types.ScanConfig{DocumentConfig: types.DocumentConfig{Input: input}}, zerolog.Nop())
	require.NoError(t, err)
	assert.Equal(t, input, report.Source)
	assert.Equal(t, 2, report.Paragraphs)
	assert.Equal(t, 1, report.Citations)

	_, err = Scan(types.ScanConfig{DocumentConfig: types.DocumentConfig{Input: filepath.Join(dir, "missing.docx")}}, zerolog.Nop())
	var loadErr *docx.LoadError
	assert.True(t, errors.As(err, &loadErr))
}

func TestWriteReport(t *testing.T) {
	report := types.ScanReport{
		Source:     "pool.docx",
		Paragraphs: 3,
		Citations:  1,
		Matches: []types.ParagraphReport{
			{
				Index:    2,
				Location: types.LocationBody,
				Text:     "[97.111(a)(1)]",
				Citations: []types.CitationLink{
					{
						Citation: "97.111(a)(1)",
						Section:  "111",
						URL:      "https://www.ecfr.gov/current/title-47/part-97/section-97.111#p-97.111(a)(1)",
						Start:    1,
						End:      13,
					},
				},
			},
		},
	}

	t.Run("yaml", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, report, types.ReportYAML))
		assert.Contains(t, buf.String(), "source: pool.docx")

		var got types.ScanReport
		require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, report, got)
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, WriteReport(&buf, report, types.ReportJSON))
		assert.Contains(t, buf.String(), `"section": "111"`)

		var got types.ScanReport
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, report, got)
	})

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		err := WriteReport(&buf, report, "toml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported report format")
	})
}
