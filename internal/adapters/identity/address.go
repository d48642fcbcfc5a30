package identity

import (
	"regexp"
	"strings"
)

// Heuristics for splitting a free form street line into the provider's
// structured premise/thoroughfare fields. Intentionally lossy, this is not
// a general address parser.

var (
	// leading flat / apartment / unit prefix, e.g. "Flat 2, 280 Eastern Avenue"
	flatPrefixRe = regexp.MustCompile(`(?i)^\s*(flat|apartment|apt|unit)\s+\w+\s*,?\s*`)

	// leading number optionally with a single letter or a hyphenated range, e.g. 12, 12A, 12-14
	leadingNumberRe = regexp.MustCompile(`^\s*(\d+(?:-\d+)?[A-Za-z]?)\b`)

	// number immediately following a comma, e.g. "Building Name, 123 Street"
	afterCommaRe = regexp.MustCompile(`,\s*(\d+)\b`)

	// first standalone number anywhere
	anyNumberRe = regexp.MustCompile(`\b(\d+)\b`)
)

// ExtractPremise derives a premise/building number from a street line
// first match wins, an empty string means no usable number was found
func ExtractPremise(line string) string {
	stripped := flatPrefixRe.ReplaceAllString(line, "")

	if m := leadingNumberRe.FindStringSubmatch(stripped); m != nil {
		return m[1]
	}
	if m := afterCommaRe.FindStringSubmatch(stripped); m != nil {
		return m[1]
	}
	// fall back to the original, un-stripped line
	if m := anyNumberRe.FindStringSubmatch(line); m != nil {
		return m[1]
	}
	return ""
}

// Thoroughfare returns the street line with the flat prefix and the
// leading premise number removed, complementing ExtractPremise
func Thoroughfare(line string) string {
	stripped := flatPrefixRe.ReplaceAllString(line, "")
	if loc := leadingNumberRe.FindStringIndex(stripped); loc != nil {
		stripped = stripped[loc[1]:]
	}
	return strings.TrimSpace(strings.TrimLeft(stripped, " ,"))
}
