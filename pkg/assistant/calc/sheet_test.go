package calc

import "testing"

func TestParseAreaSqFt(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOk bool
	}{
		{"explicit sqft", "720 sq ft of drywall", 720, true},
		{"sqft no space", "720sqft", 720, true},
		{"square feet words", "covering 450 square feet", 450, true},
		{"sf abbrev", "1200 sf", 1200, true},
		{"length by width", "drywall for a 24x30 room", 720, true},
		{"explicit beats lxw", "24x30 room, 500 sq ft usable", 500, true},
		{"no area", "how many sheets?", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseAreaSqFt(tt.text)
			if ok != tt.wantOk {
				t.Fatalf("ParseAreaSqFt(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if ok && !almostEqual(got, tt.want) {
				t.Errorf("ParseAreaSqFt(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseSheetArea(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"default 4x8", "sheets for 720 sq ft", 32},
		{"explicit 4x10 sheets", "4x10 sheets for the ceiling", 40},
		{"5x8 drywall", "using 5x8 drywall panels", 40},
		{"dims without sheet word", "a 24x30 room", 32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseSheetArea(tt.text); !almostEqual(got, tt.want) {
				t.Errorf("ParseSheetArea(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
