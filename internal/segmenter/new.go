package segmenter

import (
	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/tokenizer"
)

type implSegmenter struct {
	maxTokens int
	estimator tokenizer.Estimator
}

// New creates a Segmenter. When no estimator is supplied, the default
// four-characters-per-token heuristic is used.
func New(cfg config.SegmenterConfig, est tokenizer.Estimator) Segmenter {
	maxTokens := cfg.MaxTokensPerSegment
	if maxTokens <= 0 {
		maxTokens = 3000
	}
	if est == nil {
		est = tokenizer.NewHeuristic(tokenizer.DefaultCharsPerToken)
	}
	return &implSegmenter{
		maxTokens: maxTokens,
		estimator: est,
	}
}
