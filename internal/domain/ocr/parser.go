package ocr

import (
	"regexp"
	"strconv"
	"strings"
)

// Per-line failure reasons, surfaced verbatim in preview responses.
const (
	ReasonQuantityNotFound = "QUANTITY_NOT_FOUND"
	ReasonNoProductMatch   = "NO_PRODUCT_MATCH"
)

// quantityPattern matches the first run of 1–3 consecutive digits. The 3-digit
// cap comes from the handwritten receipts this parser was built for; a line
// with 1000+ bags will not be recognized. TODO: confirm the intended quantity
// range with the warehouse before widening the pattern.
var quantityPattern = regexp.MustCompile(`\d{1,3}`)

// ParsedLine is the result of splitting one OCR line into a bag count and the
// residual product-name text.
type ParsedLine struct {
	QuantityBao int
	NamePart    string
}

// ParseError records a line that could not be parsed or matched, plus why.
type ParseError struct {
	Line   string `json:"line"`
	Reason string `json:"reason"`
}

// ParseLine extracts the quantity token from a line; the remainder, trimmed,
// is the candidate product name. ok is false when the line has no 1–3 digit
// run (ReasonQuantityNotFound).
func ParseLine(line string) (ParsedLine, bool) {
	loc := quantityPattern.FindStringIndex(line)
	if loc == nil {
		return ParsedLine{}, false
	}
	qty, err := strconv.Atoi(line[loc[0]:loc[1]])
	if err != nil {
		return ParsedLine{}, false
	}
	name := strings.TrimSpace(line[:loc[0]] + line[loc[1]:])
	return ParsedLine{QuantityBao: qty, NamePart: name}, true
}

// SplitLines breaks raw OCR output into non-empty trimmed lines.
func SplitLines(raw string) []string {
	var out []string
	for _, l := range strings.Split(raw, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			out = append(out, t)
		}
	}
	return out
}
