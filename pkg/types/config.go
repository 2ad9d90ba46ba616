// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// ReportFormat selects how a scan report is rendered.
type ReportFormat string

const (
	ReportYAML ReportFormat = "yaml"
	ReportJSON ReportFormat = "json"
)

// DocumentConfig holds settings shared by every stage that reads a document.
type DocumentConfig struct {
	// Input is the path of the .docx file to read.
	Input string `json:"input" yaml:"input"`

	// IncludeTables extends processing to paragraphs inside body tables.
	// Only top-level body paragraphs are processed when false.
	IncludeTables bool `json:"include_tables" yaml:"include_tables"`
}

// LinkConfig holds settings for the link stage.
type LinkConfig struct {
	DocumentConfig `yaml:",inline"`

	// Output is the path the linked document is written to. An existing file
	// is overwritten. When empty, DefaultOutputPath(Input) is used.
	Output string `json:"output" yaml:"output"`
}

// ScanConfig holds settings for the scan stage.
type ScanConfig struct {
	DocumentConfig `yaml:",inline"`

	// Format selects the report encoding: yaml or json.
	Format ReportFormat `json:"format" yaml:"format"`
}
