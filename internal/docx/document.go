// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package docx wraps a Word (.docx) package as an ordered list of paragraphs
// that can be read as plain text and rebuilt from text and hyperlink segments.
// It is the only package that touches the OOXML object model.
package docx

import (
	"fmt"
	"os"
	"path/filepath"

	"baliance.com/gooxml/document"
	"github.com/google/renameio/v2"
)

// Document is an open .docx package held fully in memory.
type Document struct {
	doc *document.Document
}

// Link is an external hyperlink relationship registered on the main document
// part.
type Link struct {
	ID     string `json:"id" yaml:"id"`
	Target string `json:"target" yaml:"target"`
}

// New returns an empty document. It is used to build fixtures and by callers
// that assemble documents from scratch.
func New() *Document {
	return &Document{doc: document.New()}
}

// Open reads the .docx package at path. Any failure is returned as a
// *LoadError.
func Open(path string) (*Document, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	doc, err := document.Open(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}
	return &Document{doc: doc}, nil
}

// Paragraphs returns the body paragraphs in document order. Paragraphs nested
// in tables are not included; see TableParagraphs.
func (d *Document) Paragraphs() []Paragraph {
	src := d.doc.Paragraphs()
	out := make([]Paragraph, len(src))
	for i, p := range src {
		out[i] = Paragraph{p: p}
	}
	return out
}

// TableParagraphs returns the paragraphs inside body tables, walking tables,
// rows, and cells in document order.
func (d *Document) TableParagraphs() []Paragraph {
	var out []Paragraph
	for _, t := range d.doc.Tables() {
		for _, row := range t.Rows() {
			for _, cell := range row.Cells() {
				for _, p := range cell.Paragraphs() {
					out = append(out, Paragraph{p: p})
				}
			}
		}
	}
	return out
}

// AddParagraph appends an empty body paragraph.
func (d *Document) AddParagraph() Paragraph {
	return Paragraph{p: d.doc.AddParagraph()}
}

// SaveAs serializes the document to path, replacing any existing file. The
// package is written to a pending file in the destination directory that is
// renamed over path only once it is complete, so a failed save never leaves
// partial output behind. Any failure is returned as a *SaveError.
func (d *Document) SaveAs(path string) error {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithStaticPermissions(0o644))
	if err != nil {
		return &SaveError{Path: path, Err: err}
	}
	defer pf.Cleanup()

	if err := d.doc.Save(pf); err != nil {
		return &SaveError{Path: path, Err: fmt.Errorf("writing package: %w", err)}
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return &SaveError{Path: path, Err: err}
	}
	return nil
}
