// Package calc holds the pure text-to-number parsers behind the assistant's
// construction calculators. Every parser takes free text and reports
// (result, ok); ok=false means the pattern was not found at all, which the
// handlers render as a guided reply rather than an error.
package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	comboRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*'\s*(\d+(?:\.\d+)?)\s*"`)
	feetRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(feet|foot|ft|')`)
	inchRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(inches|inch|in|")`)
)

// ParseFeetInches extracts a construction-style length from text and returns
// the total in inches. It understands:
//
//	9 ft 7 in
//	9 feet 7 inches
//	9' 7"
//	10'
//	14 in
//
// The combined F' I" form wins; otherwise independent feet and inch matches
// are summed, each defaulting to zero when absent. ok is false only when
// neither unit produced a match.
func ParseFeetInches(text string) (float64, bool) {
	t := strings.ToLower(text)

	if m := comboRe.FindStringSubmatch(t); m != nil {
		feet, _ := strconv.ParseFloat(m[1], 64)
		inches, _ := strconv.ParseFloat(m[2], 64)
		return feet*12 + inches, true
	}

	var feet, inches float64
	if m := feetRe.FindStringSubmatch(t); m != nil {
		feet, _ = strconv.ParseFloat(m[1], 64)
	}
	if m := inchRe.FindStringSubmatch(t); m != nil {
		inches, _ = strconv.ParseFloat(m[1], 64)
	}

	if feet == 0 && inches == 0 {
		return 0, false
	}

	return feet*12 + inches, true
}
