package tokenizer

import (
	"strings"
	"testing"
)

func TestHeuristicEstimate(t *testing.T) {
	tests := []struct {
		name          string
		charsPerToken int
		text          string
		want          int
	}{
		{"empty text", 4, "", 0},
		{"short text counts at least one", 4, "hi", 1},
		{"four chars per token", 4, strings.Repeat("a", 40), 10},
		{"conservative ratio", 3, strings.Repeat("a", 30), 10},
		{"zero ratio falls back to default", 0, strings.Repeat("a", 40), 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			est := NewHeuristic(tt.charsPerToken)
			if got := est.Estimate(tt.text); got != tt.want {
				t.Errorf("Estimate() = %d, want %d", got, tt.want)
			}
		})
	}
}
