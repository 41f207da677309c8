package ocr

import "strings"

// Normalize canonicalizes free text for comparison: lower-case, collapse
// whitespace runs to a single space, trim. Total function; empty input yields
// an empty string. Diacritics are kept as-is: "Nhuyễn" and "nhuyen" are
// different strings and their distance is left to the matcher.
func Normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
