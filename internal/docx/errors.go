// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package docx

import "fmt"

// LoadError reports that an input document could not be opened: the file is
// missing, unreadable, or not a .docx package.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading document %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// SaveError reports that a document could not be written to its destination.
// When a SaveError is returned nothing has been written at Path.
type SaveError struct {
	Path string
	Err  error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("saving document %s: %v", e.Path, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
