package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dollarRe  = regexp.MustCompile(`\$\s*(\d+(?:\.\d+)?)`)
	perUnitRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:per|/)\s*(sheet|sheets|bf|board feet|sqft|square foot|unit|board|piece)`)

	qtyUnitRe = regexp.MustCompile(`(\d+)\s*(sheets|sheet|boards|board|pieces|piece|units|unit|bf|board feet|sqft|square feet)`)
	anyIntRe  = regexp.MustCompile(`(\d+)`)
)

// ParsePrice extracts a unit price from text: "$14", "14 per sheet",
// "$2.10 per bf". The explicit $ token wins over the "per unit" form.
func ParsePrice(text string) (float64, bool) {
	t := strings.ToLower(text)

	if m := dollarRe.FindStringSubmatch(t); m != nil {
		price, _ := strconv.ParseFloat(m[1], 64)
		return price, true
	}

	if m := perUnitRe.FindStringSubmatch(t); m != nil {
		price, _ := strconv.ParseFloat(m[1], 64)
		return price, true
	}

	return 0, false
}

// ParseQuantityWithUnit extracts a unit count: "40 sheets", "16 boards",
// "200 bf". Falls back to the first bare integer anywhere in the text.
func ParseQuantityWithUnit(text string) (int, bool) {
	t := strings.ToLower(text)

	if m := qtyUnitRe.FindStringSubmatch(t); m != nil {
		qty, _ := strconv.Atoi(m[1])
		return qty, true
	}

	if m := anyIntRe.FindStringSubmatch(t); m != nil {
		qty, _ := strconv.Atoi(m[1])
		return qty, true
	}

	return 0, false
}
