package calc

import (
	"regexp"
	"strconv"
	"strings"
)

// DefaultSheetArea is a standard 4x8 sheet in square feet.
const DefaultSheetArea = 4.0 * 8.0

var (
	areaRe     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(square feet|sq ft|sqft|sf)`)
	lxwRe      = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)`)
	sheetDimRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?).*(sheet|sheets|drywall|plywood|osb|panel|panels)`)
)

// ParseAreaSqFt extracts an area in square feet. An explicit "N sq ft" form
// takes priority; otherwise a bare L x W pair is read as feet.
func ParseAreaSqFt(text string) (float64, bool) {
	t := strings.ToLower(text)

	if m := areaRe.FindStringSubmatch(t); m != nil {
		area, _ := strconv.ParseFloat(m[1], 64)
		return area, true
	}

	if m := lxwRe.FindStringSubmatch(t); m != nil {
		length, _ := strconv.ParseFloat(m[1], 64)
		width, _ := strconv.ParseFloat(m[2], 64)
		return length * width, true
	}

	return 0, false
}

// ParseSheetArea determines the sheet size in square feet. Defaults to 4x8.
// A dimension pair that precedes sheet vocabulary ("4x10 sheets",
// "5x8 drywall") overrides the default.
func ParseSheetArea(text string) float64 {
	t := strings.ToLower(text)

	if m := sheetDimRe.FindStringSubmatch(t); m != nil {
		w, _ := strconv.ParseFloat(m[1], 64)
		l, _ := strconv.ParseFloat(m[2], 64)
		return w * l
	}

	return DefaultSheetArea
}
