// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package linker

import (
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/pdiddy/ecfr-linker/internal/docx"
	"github.com/pdiddy/ecfr-linker/pkg/types"
)

// linkedSuffix is appended to the input base name to form the default output
// path.
const linkedSuffix = "_linked"

// Summary counts what a link run did.
type Summary struct {
	// Paragraphs is the number of paragraphs examined.
	Paragraphs int `json:"paragraphs" yaml:"paragraphs"`

	// Candidates is the number of paragraphs containing the citation prefix.
	Candidates int `json:"candidates" yaml:"candidates"`

	// Rebuilt is the number of paragraphs whose content was replaced.
	Rebuilt int `json:"rebuilt" yaml:"rebuilt"`

	// Links is the number of hyperlinks inserted.
	Links int `json:"links" yaml:"links"`

	// Hyperlinks lists the relationship ID and target of every inserted
	// hyperlink, in document order.
	Hyperlinks []docx.Link `json:"hyperlinks,omitempty" yaml:"hyperlinks,omitempty"`

	// Output is the path the linked document was saved to.
	Output string `json:"output" yaml:"output"`
}

// DefaultOutputPath derives an output path from input by inserting "_linked"
// before the extension: "pool.docx" becomes "pool_linked.docx".
func DefaultOutputPath(input string) string {
	ext := filepath.Ext(input)
	if ext == "" {
		ext = ".docx"
	}
	return strings.TrimSuffix(input, filepath.Ext(input)) + linkedSuffix + ext
}

// Run opens cfg.Input, links every citation, and saves the result to
// cfg.Output (or the default output path). A load failure returns a
// *docx.LoadError and nothing is written; a save failure returns a
// *docx.SaveError and leaves no partial output.
func Run(cfg types.LinkConfig, logger zerolog.Logger) (Summary, error) {
	output := cfg.Output
	if output == "" {
		output = DefaultOutputPath(cfg.Input)
	}

	doc, err := docx.Open(cfg.Input)
	if err != nil {
		return Summary{}, err
	}
	logger.Debug().Str("input", cfg.Input).Msg("opened document")

	summary := Process(doc, cfg.IncludeTables, logger)

	if err := doc.SaveAs(output); err != nil {
		return Summary{}, err
	}
	summary.Output = output

	logger.Info().
		Int("paragraphs", summary.Paragraphs).
		Int("rebuilt", summary.Rebuilt).
		Int("links", summary.Links).
		Str("output", output).
		Msg("linked document saved")
	return summary, nil
}

// Process rebuilds every paragraph of doc that holds a citation, in document
// order: body paragraphs first, then table paragraphs when includeTables is
// set. It only mutates the in-memory document.
func Process(doc *docx.Document, includeTables bool, logger zerolog.Logger) Summary {
	var summary Summary
	for _, sec := range sections(doc, includeTables) {
		for i, p := range sec.paragraphs {
			summary.Paragraphs++
			res := RebuildParagraph(p)
			if !res.Candidate {
				continue
			}
			summary.Candidates++
			if !res.Rebuilt {
				logger.Debug().
					Str("location", string(sec.location)).
					Int("paragraph", i).
					Msg("prefix without citation, left unchanged")
				continue
			}
			summary.Rebuilt++
			summary.Links += len(res.Links)
			summary.Hyperlinks = append(summary.Hyperlinks, res.Links...)
			for _, l := range res.Links {
				logger.Debug().
					Str("location", string(sec.location)).
					Int("paragraph", i).
					Str("rel", l.ID).
					Str("url", l.Target).
					Msg("hyperlink inserted")
			}
		}
	}
	return summary
}

type section struct {
	location   types.Location
	paragraphs []docx.Paragraph
}

func sections(doc *docx.Document, includeTables bool) []section {
	secs := []section{{location: types.LocationBody, paragraphs: doc.Paragraphs()}}
	if includeTables {
		secs = append(secs, section{location: types.LocationTable, paragraphs: doc.TableParagraphs()})
	}
	return secs
}
