package calc

import "testing"

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   float64
		wantOk bool
	}{
		{"dollar sign", "40 sheets at $14", 14, true},
		{"dollar decimal", "at $2.10 per bf", 2.10, true},
		{"dollar with space", "$ 14 each", 14, true},
		{"per sheet form", "quoted 14 per sheet", 14, true},
		{"slash form", "2.5/bf delivered", 2.5, true},
		{"no price", "what would that cost", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrice(tt.text)
			if ok != tt.wantOk {
				t.Fatalf("ParsePrice(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if ok && !almostEqual(got, tt.want) {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseQuantityWithUnit(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		wantOk bool
	}{
		{"sheets", "cost of 40 sheets at $14", 40, true},
		{"boards", "16 boards of 2x10x16", 16, true},
		{"bare integer fallback", "need 25 for the job", 25, true},
		{"no number", "what would the total be", 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseQuantityWithUnit(tt.text)
			if ok != tt.wantOk {
				t.Fatalf("ParseQuantityWithUnit(%q) ok = %v, want %v", tt.text, ok, tt.wantOk)
			}
			if ok && got != tt.want {
				t.Errorf("ParseQuantityWithUnit(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
