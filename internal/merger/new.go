package merger

import (
	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/logger"
)

type implMerger struct {
	cfg    config.MergeConfig
	logger logger.Logger
}

// New creates a Merger with the given thresholds and recent-window bound.
func New(cfg config.MergeConfig, log logger.Logger) Merger {
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = 0.75
	}
	if cfg.MaxWindowTurns <= 0 {
		cfg.MaxWindowTurns = 50
	}
	if cfg.AvgTurnChars <= 0 {
		cfg.AvgTurnChars = 200
	}
	return &implMerger{
		cfg:    cfg,
		logger: log,
	}
}
