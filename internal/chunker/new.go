package chunker

import (
	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/logger"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/tokenizer"
)

type implChunker struct {
	cfg       config.ChunkingConfig
	estimator tokenizer.Estimator
	logger    logger.Logger
}

// New creates a Chunker. The estimator is used for per-chunk token estimates
// and the needs-chunking pre-check; a conservative heuristic is the usual choice
// since exactness does not matter here.
func New(cfg config.ChunkingConfig, est tokenizer.Estimator, log logger.Logger) Chunker {
	if est == nil {
		est = tokenizer.NewHeuristic(tokenizer.ConservativeCharsPerToken)
	}
	return &implChunker{
		cfg:       cfg,
		estimator: est,
		logger:    log,
	}
}
