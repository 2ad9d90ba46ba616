// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package citation finds Part 97 regulation citations in plain text and builds
// the eCFR deep links they point to.
package citation

import (
	"iter"
	"regexp"
	"strings"
)

// Prefix is the literal every citation starts with. Text that does not contain
// it cannot hold a citation.
const Prefix = "97."

// citationRe matches "97.<section>" followed by any number of adjacent
// parenthesized alphanumeric markers, e.g. 97.111(a)(1) or 97.305.
// Group 1 captures the section number.
var citationRe = regexp.MustCompile(`97\.(\d+)(?:\([a-zA-Z0-9]+\))*`)

// Match is a single citation found in a paragraph's plain text.
type Match struct {
	// Citation is the full matched text including any subsection markers
	// (e.g. "97.111(a)(1)").
	Citation string `json:"citation" yaml:"citation"`

	// Section is the digit sequence after "97." (e.g. "111").
	Section string `json:"section" yaml:"section"`

	// Start and End are byte offsets of Citation in the scanned text.
	Start int `json:"start" yaml:"start"`
	End   int `json:"end" yaml:"end"`
}

// MayContain reports whether text contains the citation prefix. A true result
// does not guarantee a match ("97." at the end of a sentence, for example).
func MayContain(text string) bool {
	return strings.Contains(text, Prefix)
}

// Scan returns the citations in text in order of their start offset. Matches
// never overlap; each scan resumes where the previous match ended.
func Scan(text string) iter.Seq[Match] {
	return func(yield func(Match) bool) {
		pos := 0
		for pos <= len(text) {
			loc := citationRe.FindStringSubmatchIndex(text[pos:])
			if loc == nil {
				return
			}
			m := Match{
				Citation: text[pos+loc[0] : pos+loc[1]],
				Section:  text[pos+loc[2] : pos+loc[3]],
				Start:    pos + loc[0],
				End:      pos + loc[1],
			}
			if !yield(m) {
				return
			}
			pos = m.End
		}
	}
}

// FindAll collects every match from Scan. It returns nil when text holds no
// citation.
func FindAll(text string) []Match {
	var matches []Match
	for m := range Scan(text) {
		matches = append(matches, m)
	}
	return matches
}
