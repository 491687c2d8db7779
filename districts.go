package main

import (
	"regexp"
	"strings"
)

// Upstream venues report cities with sub-municipal qualifiers in many shapes:
// "Praha 7", "Praha 4-Libuš", "Bratislava - Staré Mesto", "Budapest IV.",
// "Paris 11e", "Wien, AT". Collapsing them to the parent city name is what
// makes alias lookups and event city comparison line up.

var (
	// A dash followed by free text names a district or quarter.
	dashDistrictPattern = regexp.MustCompile(`\s*[-–—]\s*\p{L}.*$`)
	// Anything after the first comma is a region or country qualifier.
	commaSuffixPattern = regexp.MustCompile(`\s*,.*$`)
	// Trailing arabic ("7", "11e") or roman ("IV", "IV.") district markers.
	numberedDistrictPattern = regexp.MustCompile(`(?i)\s+(\d+[a-z]{0,2}|[ivxlcdm]+)\.?$`)
	// "<number>-<text>" compounds, a safety net for inputs the dash rule
	// misses when the separator spacing is unusual.
	compoundDistrictPattern = regexp.MustCompile(`(?i)\s+\d+[a-z]{0,2}\s*[-–—].*$`)
)

var districtPatterns = []*regexp.Regexp{
	dashDistrictPattern,
	commaSuffixPattern,
	numberedDistrictPattern,
	compoundDistrictPattern,
}

// collapseToBaseCity strips administrative-subdivision suffixes from a
// locality name until no rule applies anymore, which makes the function
// idempotent by construction. It never collapses a name to nothing: if the
// rules would eat the whole input, the original trimmed input is returned.
func collapseToBaseCity(input string) string {
	original := strings.TrimSpace(input)
	current := original

	for {
		next := current
		for _, pattern := range districtPatterns {
			next = strings.TrimSpace(pattern.ReplaceAllString(next, ""))
		}
		if next == current {
			break
		}
		current = next
	}

	if current == "" {
		return original
	}
	return current
}
