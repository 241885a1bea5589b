package calc

import "testing"

func TestParseBoardFoot(t *testing.T) {
	tests := []struct {
		name        string
		text        string
		wantPer     float64
		wantTotal   float64
		wantQty     int
		wantParseOk bool
	}{
		{"single 2x10x16", "board feet for 2x10x16", 320.0 / 12.0, 320.0 / 12.0, 1, true},
		{"ten 2x6x12", "10 boards of 2x6x12", 12, 120, 10, true},
		{"pieces keyword", "bf for 4 pieces of 1x8x10", 80.0 / 12.0, 320.0 / 12.0, 4, true},
		{"spaced dims", "2 x 10 x 16 board feet", 320.0 / 12.0, 320.0 / 12.0, 1, true},
		{"decimal thickness", "1.5x10x16", 240.0 / 12.0, 240.0 / 12.0, 1, true},
		{"no dims", "how many board feet do I need", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseBoardFoot(tt.text)
			if ok != tt.wantParseOk {
				t.Fatalf("ParseBoardFoot(%q) ok = %v, want %v", tt.text, ok, tt.wantParseOk)
			}
			if !ok {
				return
			}
			if got.Quantity != tt.wantQty {
				t.Errorf("quantity = %d, want %d", got.Quantity, tt.wantQty)
			}
			if !almostEqual(got.BFPerBoard, tt.wantPer) {
				t.Errorf("per board = %v, want %v", got.BFPerBoard, tt.wantPer)
			}
			if !almostEqual(got.TotalBF, tt.wantTotal) {
				t.Errorf("total = %v, want %v", got.TotalBF, tt.wantTotal)
			}
		})
	}
}
