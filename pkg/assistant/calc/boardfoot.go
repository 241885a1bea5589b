package calc

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	dimRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)\s*x\s*(\d+(?:\.\d+)?)`)
	qtyRe = regexp.MustCompile(`(\d+)\s*(pieces|piece|pcs|boards|planks|qty|quantity)`)
)

// BoardFoot is the parsed result of a dimensional-lumber request.
// Dimensions read thickness (in) x width (in) x length (ft) per board.
type BoardFoot struct {
	Thickness  float64
	Width      float64
	LengthFeet float64
	Quantity   int
	BFPerBoard float64
	TotalBF    float64
}

// ParseBoardFoot extracts a T x W x L triple plus an optional quantity from
// text, e.g. "2x10x16" or "10 pieces of 2x6x12". Quantity defaults to 1.
// Board feet per board = (T * W * L) / 12.
func ParseBoardFoot(text string) (*BoardFoot, bool) {
	t := strings.ToLower(text)

	m := dimRe.FindStringSubmatch(t)
	if m == nil {
		return nil, false
	}

	thickness, _ := strconv.ParseFloat(m[1], 64)
	width, _ := strconv.ParseFloat(m[2], 64)
	lengthFeet, _ := strconv.ParseFloat(m[3], 64)

	qty := 1
	if qm := qtyRe.FindStringSubmatch(t); qm != nil {
		qty, _ = strconv.Atoi(qm[1])
	}

	perBoard := (thickness * width * lengthFeet) / 12.0

	return &BoardFoot{
		Thickness:  thickness,
		Width:      width,
		LengthFeet: lengthFeet,
		Quantity:   qty,
		BFPerBoard: perBoard,
		TotalBF:    perBoard * float64(qty),
	}, true
}
