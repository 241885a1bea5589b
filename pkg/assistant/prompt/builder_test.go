package prompt

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charley4805/project-pretzel/pkg/assistant/retrieval"
)

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"shorter than cap", "roof plan", 20, "roof plan"},
		{"exact length", "roof", 4, "roof"},
		{"ascii cut", "roof plan", 6, "roof p"},
		{"multi-byte rune not split", "12m² of tile", 4, "12m"},
		{"cut lands inside rune", "ééé", 3, "é"},
		{"zero cap", "roof", 0, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Truncate(tt.in, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
			if !utf8.ValidString(got) {
				t.Errorf("Truncate(%q, %d) produced invalid UTF-8", tt.in, tt.max)
			}
		})
	}
}

func TestDocSearchSnippetStaysValidUTF8(t *testing.T) {
	// Content long enough to force truncation, ending in multi-byte runes so a
	// byte-level cut would corrupt the prompt.
	content := strings.Repeat("a", snippetLen-1) + strings.Repeat("é", 10)
	p := DocSearch("how big is the roof?", []retrieval.Document{
		{Title: "Roof takeoff", Content: content},
	})

	if !utf8.ValidString(p) {
		t.Fatal("DocSearch produced invalid UTF-8")
	}
	if !strings.Contains(p, "Roof takeoff") {
		t.Error("prompt missing document title")
	}
	if strings.Contains(p, strings.Repeat("é", 10)) {
		t.Error("snippet was not truncated")
	}
}

func TestGroundedEmbedsDocuments(t *testing.T) {
	p := Grounded("what color is the trim?", []retrieval.Document{
		{Title: "Painting schedule", Content: "interior colors"},
	})

	if !strings.Contains(p, "[Document: Painting schedule]") {
		t.Error("prompt missing document block")
	}
	if !strings.Contains(p, "User question: what color is the trim?") {
		t.Error("prompt missing user question")
	}
	if !strings.Contains(p, "do NOT invent project-specific facts") {
		t.Error("prompt missing grounding instruction")
	}
}
