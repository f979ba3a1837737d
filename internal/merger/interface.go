package merger

import (
	"context"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/chunker"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// Merger reassembles per-chunk turn lists into one ordered sequence, resolving
// the near-duplicate turns that the chunk overlap regions introduce.
type Merger interface {
	Merge(ctx context.Context, results map[int][]transcript.Turn, meta chunker.Metadata) ([]transcript.Turn, error)
}
