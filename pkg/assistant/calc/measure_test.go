package calc

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseFeetInches(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOk bool
	}{
		{"combo notation", `9' 7"`, 115, true},
		{"combo no space", `9'7"`, 115, true},
		{"words", "9 feet 7 inches", 115, true},
		{"feet only", "12 feet", 144, true},
		{"feet abbrev", "12 ft", 144, true},
		{"inches only", "30 inches", 30, true},
		{"inch abbrev", "30 in", 30, true},
		{"decimal feet", "2.5 feet", 30, true},
		{"combo decimal", `2.5' 6"`, 36, true},
		{"nothing", "how long is the hallway", 0, false},
		{"zero both", "0 feet 0 inches", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseFeetInches(tt.text)
			if ok != tt.wantOk {
				t.Fatalf("ParseFeetInches(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if ok && !almostEqual(got, tt.want) {
				t.Errorf("ParseFeetInches(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
