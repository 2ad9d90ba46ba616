// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package citation

// ecfrSectionBase is the eCFR page prefix for sections of 47 CFR Part 97.
const ecfrSectionBase = "https://www.ecfr.gov/current/title-47/part-97/section-97."

// BuildURL returns the eCFR deep link for a citation and its section number:
//
//	https://www.ecfr.gov/current/title-47/part-97/section-97.<section>#p-<citation>
//
// Neither value is escaped. Parentheses in the citation appear in the fragment
// as-is, which is the form eCFR uses for its paragraph anchors.
func BuildURL(citation, section string) string {
	return ecfrSectionBase + section + "#p-" + citation
}

// URL returns the eCFR deep link for m.
func (m Match) URL() string {
	return BuildURL(m.Citation, m.Section)
}
