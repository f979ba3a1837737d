package tokenizer

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// Conservative ratio used when sizing chunks; the rough pre-check wants to
// overestimate rather than undershoot the budget.
const (
	ConservativeCharsPerToken = 3
	DefaultCharsPerToken      = 4
)

type implTiktoken struct {
	enc *tiktoken.Tiktoken
}

// NewTiktoken creates an exact Estimator backed by the given tiktoken
// encoding (e.g. "cl100k_base").
func NewTiktoken(encoding string) (Estimator, error) {
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("get encoding %q: %w", encoding, err)
	}
	return &implTiktoken{enc: enc}, nil
}

func (t *implTiktoken) Estimate(text string) int {
	return len(t.enc.Encode(text, nil, nil))
}

type implHeuristic struct {
	charsPerToken int
}

// NewHeuristic creates an Estimator that approximates one token per
// charsPerToken characters. Non-empty text always counts as at least one token.
func NewHeuristic(charsPerToken int) Estimator {
	if charsPerToken <= 0 {
		charsPerToken = DefaultCharsPerToken
	}
	return &implHeuristic{charsPerToken: charsPerToken}
}

func (h *implHeuristic) Estimate(text string) int {
	if text == "" {
		return 0
	}
	n := len(text) / h.charsPerToken
	if n < 1 {
		return 1
	}
	return n
}

// New selects the best available Estimator at startup: the exact tiktoken
// implementation when the encoding can be loaded, otherwise the heuristic
// fallback at the default ratio.
func New(encoding string) Estimator {
	if est, err := NewTiktoken(encoding); err == nil {
		return est
	}
	return NewHeuristic(DefaultCharsPerToken)
}
