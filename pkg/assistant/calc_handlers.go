package assistant

import (
	"fmt"
	"math"
	"strings"

	"github.com/charley4805/project-pretzel/pkg/assistant/access"
	"github.com/charley4805/project-pretzel/pkg/assistant/calc"
	"github.com/charley4805/project-pretzel/pkg/assistant/session"
)

const measureParseMiss = "I tried to treat that as a construction measurement, but couldn't parse it.\n" +
	"Try something like:\n" +
	" - 9 ft 7 in\n" +
	" - 9' 7\"\n" +
	" - 10 feet\n" +
	" - 14 inches"

func (e *Engine) handleMeasure(text string) string {
	totalInches, ok := calc.ParseFeetInches(text)
	if !ok {
		return measureParseMiss
	}

	feet := int(math.Floor(totalInches / 12))
	inches := math.Mod(totalInches, 12)

	var b strings.Builder
	b.WriteString("Here's your construction measurement breakdown:\n")
	fmt.Fprintf(&b, " - Total inches: %.2f in\n", totalInches)
	fmt.Fprintf(&b, " - Feet & inches: %d' %.2f\"\n", feet, inches)
	return b.String()
}

const boardFootParseMiss = "I tried to treat that as a board-foot calculation but couldn't parse it.\n" +
	"Try something like:\n" +
	" - 2x10x16\n" +
	" - 10 boards of 2x6x12\n" +
	" - calculate board feet for 20 pieces 2x8x14"

func (e *Engine) handleBoardFoot(text string) string {
	bf, ok := calc.ParseBoardFoot(text)
	if !ok {
		return boardFootParseMiss
	}

	var b strings.Builder
	b.WriteString("Board-foot calculation:\n")
	fmt.Fprintf(&b, " - Dimensions per board: %g in x %g in x %g ft\n", bf.Thickness, bf.Width, bf.LengthFeet)
	fmt.Fprintf(&b, " - Quantity: %d\n", bf.Quantity)
	fmt.Fprintf(&b, " - Board feet per board: %.2f bf\n", bf.BFPerBoard)
	fmt.Fprintf(&b, " - Total board feet: %.2f bf\n", bf.TotalBF)
	return b.String()
}

const sheetParseMiss = "I tried to treat that as a sheet-count question but couldn't parse the area.\n" +
	"Examples I understand:\n" +
	" - How many 4x8 sheets for 720 sq ft?\n" +
	" - Sheets needed for 12x20 room (use '12x20')\n" +
	" - 350 square feet of drywall, 4x10 sheets\n"

func (e *Engine) handleSheet(text string) string {
	area, ok := calc.ParseAreaSqFt(text)
	if !ok {
		return sheetParseMiss
	}

	sheetArea := calc.ParseSheetArea(text)
	rawCount := area / sheetArea
	needed := int(math.Ceil(rawCount))

	var b strings.Builder
	b.WriteString("Sheet count estimate:\n")
	fmt.Fprintf(&b, " - Area to cover: %.2f sq ft\n", area)
	fmt.Fprintf(&b, " - Sheet size area: %.2f sq ft\n", sheetArea)
	fmt.Fprintf(&b, " - Raw sheet count (no rounding): %.2f\n", rawCount)
	fmt.Fprintf(&b, " - Recommended sheets (rounded up): %d\n", needed)
	b.WriteString("Note: This does not include waste, cuts, or openings.")
	return b.String()
}

// Fixed refusal for roles outside the cost gate. Checked before any parsing.
const costRestricted = "I can help you with quantities and measurements, but detailed " +
	"material cost estimates are restricted to the Project Manager " +
	"or Estimator. Please ask them for the exact cost breakdown."

const costBoardFootNoPrice = "I detected a board-foot style request but couldn't parse a price.\n" +
	"Try something like:\n" +
	" - Cost for 16 boards of 2x10x16 at $2.10 per bf\n"

const costParseMiss = "I tried to treat that as a material cost question but couldn't parse " +
	"both a quantity and a price.\n" +
	"Examples I understand:\n" +
	" - Cost for 40 sheets at $14 each\n" +
	" - 25 boards at $8.50 per board\n" +
	" - 200 sqft at $1.20 per sqft\n" +
	" - 16 boards of 2x10x16 at $2.10 per bf\n"

func (e *Engine) handleCost(sess *session.Session, text string) string {
	// Role gate first: non-privileged roles never reach the parsers.
	if !access.MayViewCostDetail(sess.RoleKey) {
		return costRestricted
	}

	t := strings.ToLower(text)
	price, priceOk := calc.ParsePrice(text)

	// Board-foot mode wins when its vocabulary is present and the triple
	// parses; the generic path is not attempted afterwards.
	bf, bfOk := calc.ParseBoardFoot(text)
	if bfOk && (strings.Contains(t, "bf") || strings.Contains(t, "board foot") || strings.Contains(t, "board feet")) {
		if !priceOk {
			return costBoardFootNoPrice
		}
		totalCost := bf.TotalBF * price

		var b strings.Builder
		b.WriteString("Material cost estimate (board feet):\n")
		fmt.Fprintf(&b, " - Dimensions per board: %g in x %g in x %g ft\n", bf.Thickness, bf.Width, bf.LengthFeet)
		fmt.Fprintf(&b, " - Quantity: %d\n", bf.Quantity)
		fmt.Fprintf(&b, " - Total board feet: %.2f bf\n", bf.TotalBF)
		fmt.Fprintf(&b, " - Price per bf: $%.2f\n", price)
		fmt.Fprintf(&b, " - Estimated material cost: $%.2f\n", totalCost)
		return b.String()
	}

	qty, qtyOk := calc.ParseQuantityWithUnit(text)
	if !priceOk || !qtyOk {
		return costParseMiss
	}
	totalCost := float64(qty) * price

	var b strings.Builder
	b.WriteString("Material cost estimate:\n")
	fmt.Fprintf(&b, " - Quantity: %d\n", qty)
	fmt.Fprintf(&b, " - Price per unit: $%.2f\n", price)
	fmt.Fprintf(&b, " - Estimated material cost: $%.2f\n", totalCost)
	return b.String()
}
