// Package codes classifies SWIFT/BIC codes. The last three characters
// of a code decide everything: "XXX" marks a headquarters, anything
// else a branch whose owning headquarters code is derived, never
// stored independently.
package codes

import "strings"

const headquartersSuffix = "XXX"

// IsHeadquarters reports whether code identifies a headquarters office.
func IsHeadquarters(code string) bool {
	return strings.HasSuffix(code, headquartersSuffix)
}

// HeadquartersCode derives the headquarters code that owns a branch
// code: the first 8 characters (right-padded with 'X' for shorter
// codes) followed by the "XXX" marker.
func HeadquartersCode(code string) string {
	base := code
	if len(code) >= 8 {
		base = code[:8]
	} else {
		base = code + strings.Repeat("X", 8-len(code))
	}
	return base + headquartersSuffix
}
