package processor

import (
	"github.com/sjfischr/meeting-transcript-analyzer/internal/analyzer"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/chunker"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/logger"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/merger"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/segmenter"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/store"
)

type implProcessor struct {
	cfg       *config.Config
	chunker   chunker.Chunker
	merger    merger.Merger
	segmenter segmenter.Segmenter
	analyzer  analyzer.Analyzer
	store     store.Store
	logger    logger.Logger
}

// New creates a Processor wired to the given pipeline stages and artifact store.
func New(
	cfg *config.Config,
	chk chunker.Chunker,
	mrg merger.Merger,
	seg segmenter.Segmenter,
	ana analyzer.Analyzer,
	st store.Store,
	log logger.Logger,
) Processor {
	return &implProcessor{
		cfg:       cfg,
		chunker:   chk,
		merger:    mrg,
		segmenter: seg,
		analyzer:  ana,
		store:     st,
		logger:    log,
	}
}
