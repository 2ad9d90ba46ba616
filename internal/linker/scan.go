// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package linker

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/ecfr-linker/internal/citation"
	"github.com/pdiddy/ecfr-linker/internal/docx"
	"github.com/pdiddy/ecfr-linker/pkg/types"
)

// Scan opens cfg.Input and reports every citation and the URL it would be
// linked to. The document is not modified.
func Scan(cfg types.ScanConfig, logger zerolog.Logger) (types.ScanReport, error) {
	doc, err := docx.Open(cfg.Input)
	if err != nil {
		return types.ScanReport{}, err
	}
	report := ScanDocument(doc, cfg.IncludeTables, logger)
	report.Source = cfg.Input
	logger.Info().
		Int("paragraphs", report.Paragraphs).
		Int("citations", report.Citations).
		Msg("scan complete")
	return report, nil
}

// ScanDocument reports the citations in doc, in the same order Process would
// link them.
func ScanDocument(doc *docx.Document, includeTables bool, logger zerolog.Logger) types.ScanReport {
	var report types.ScanReport
	for _, sec := range sections(doc, includeTables) {
		for i, p := range sec.paragraphs {
			report.Paragraphs++
			text := p.Text()
			if !citation.MayContain(text) {
				continue
			}
			matches := citation.FindAll(text)
			if len(matches) == 0 {
				continue
			}

			pr := types.ParagraphReport{
				Index:     i,
				Location:  sec.location,
				Text:      text,
				Citations: make([]types.CitationLink, len(matches)),
			}
			for j, m := range matches {
				pr.Citations[j] = types.CitationLink{
					Citation: m.Citation,
					Section:  m.Section,
					URL:      m.URL(),
					Start:    m.Start,
					End:      m.End,
				}
			}
			report.Citations += len(matches)
			report.Matches = append(report.Matches, pr)
			logger.Debug().
				Str("location", string(sec.location)).
				Int("paragraph", i).
				Int("citations", len(matches)).
				Msg("citations found")
		}
	}
	return report
}

// WriteReport encodes report to w as YAML or JSON.
func WriteReport(w io.Writer, report types.ScanReport, format types.ReportFormat) error {
	switch format {
	case types.ReportJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return nil
	case types.ReportYAML, "":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("encoding report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unsupported report format %q (want yaml or json)", format)
	}
}
