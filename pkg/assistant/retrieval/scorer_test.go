package retrieval

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	got := Tokenize("Roof leak ROOF report")
	want := map[string]bool{"roof": true, "leak": true, "report": true}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Tokenize = %v, want %v", got, want)
	}
}

func TestScore(t *testing.T) {
	doc := Document{
		Title:   "Roof inspection report",
		Content: "Found a leak near the north skylight.",
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"two token hits", "roof leak", 2},
		{"distinct tokens only", "roof roof roof", 1},
		{"substring match", "inspect skylight", 2},
		{"no overlap", "plumbing permit", 0},
		{"empty query", "", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Score(doc, Tokenize(tt.query)); got != tt.want {
				t.Errorf("Score(%q) = %d, want %d", tt.query, got, tt.want)
			}
		})
	}
}

func TestTopK(t *testing.T) {
	docs := []Document{
		{Title: "Electrical rough-in", Content: "panel schedule and circuits"},
		{Title: "Roof inspection", Content: "leak near skylight"},
		{Title: "Roof warranty", Content: "shingle coverage terms"},
		{Title: "Painting schedule", Content: "interior colors"},
	}

	got := TopK(docs, "roof leak", 2)
	if len(got) != 2 {
		t.Fatalf("TopK returned %d docs, want 2", len(got))
	}
	if got[0].Title != "Roof inspection" {
		t.Errorf("top doc = %q, want %q", got[0].Title, "Roof inspection")
	}
	if got[1].Title != "Roof warranty" {
		t.Errorf("second doc = %q, want %q", got[1].Title, "Roof warranty")
	}
}

// Equal scores keep fetch order, so ranking is reproducible run to run.
func TestTopKStableTies(t *testing.T) {
	docs := []Document{
		{Title: "Roof plan A", Content: "north wing"},
		{Title: "Roof plan B", Content: "south wing"},
		{Title: "Roof plan C", Content: "garage"},
	}

	got := TopK(docs, "roof", 3)
	if len(got) != 3 {
		t.Fatalf("TopK returned %d docs, want 3", len(got))
	}
	for i, want := range []string{"Roof plan A", "Roof plan B", "Roof plan C"} {
		if got[i].Title != want {
			t.Errorf("docs[%d] = %q, want %q", i, got[i].Title, want)
		}
	}
}

func TestTopKZeroScoreDiscarded(t *testing.T) {
	docs := []Document{
		{Title: "Painting schedule", Content: "interior colors"},
	}
	if got := TopK(docs, "roof leak", 5); got != nil {
		t.Errorf("TopK = %v, want nil for zero-score corpus", got)
	}
}
