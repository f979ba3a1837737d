package merger

import (
	"context"
	"errors"
	"fmt"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/chunker"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// ErrMissingChunkResult indicates that a chunk listed in the metadata has no
// supplied turn list. Silently skipping it would drop a whole slice of the
// transcript, so the merge aborts instead.
var ErrMissingChunkResult = errors.New("missing chunk result")

// Merge combines the per-chunk turn lists in chunk-index order. All of chunk
// 0's turns are kept; each later turn is either absorbed into a near-duplicate
// within the recent window of emitted turns or appended as new. Output turns
// are re-indexed 0..N-1 in emission order.
func (m *implMerger) Merge(ctx context.Context, results map[int][]transcript.Turn, meta chunker.Metadata) ([]transcript.Turn, error) {
	if meta.ChunkCount == 0 {
		return nil, nil
	}

	for i := 0; i < meta.ChunkCount; i++ {
		if _, ok := results[i]; !ok {
			return nil, fmt.Errorf("chunk %d: %w", i, ErrMissingChunkResult)
		}
	}

	if meta.ChunkCount == 1 {
		return reindex(results[0]), nil
	}

	// Duplicates can only come from text shared by the overlap region, so each
	// candidate is compared against a bounded trailing window of emitted turns
	// sized from the overlap width. The average-turn-length divisor is a
	// heuristic, tunable through MergeConfig.
	overlapChars := meta.Params.OverlapTokens * meta.Params.CharsPerToken
	window := overlapChars / m.cfg.AvgTurnChars
	if window > m.cfg.MaxWindowTurns {
		window = m.cfg.MaxWindowTurns
	}
	if window < 1 {
		window = 1
	}

	var merged []transcript.Turn

	for idx := 0; idx < meta.ChunkCount; idx++ {
		turns := results[idx]

		if idx == 0 {
			merged = append(merged, turns...)
			m.logger.Info(ctx, "Chunk 0: added %d turns", len(turns))
			continue
		}

		added := 0
		duplicates := 0
		for _, turn := range turns {
			searchFrom := len(merged) - window
			if searchFrom < 0 {
				searchFrom = 0
			}

			dupIdx := FindDuplicate(turn, merged[searchFrom:], m.cfg.SimilarityThreshold)
			if dupIdx >= 0 {
				actual := searchFrom + dupIdx
				merged[actual] = mergeTurns(merged[actual], turn)
				duplicates++
			} else {
				merged = append(merged, turn)
				added++
			}
		}

		m.logger.Info(ctx, "Chunk %d: added %d new turns, merged %d duplicates", idx, added, duplicates)
	}

	m.logger.Info(ctx, "Merged %d total turns from %d chunks", len(merged), meta.ChunkCount)
	return reindex(merged), nil
}

// mergeTurns resolves two near-duplicate turns: the longer normalized text is
// presumed more complete, and the lexicographically earlier timestamps are
// presumed correct.
func mergeTurns(existing, incoming transcript.Turn) transcript.Turn {
	base := existing
	if len(normalizeText(incoming.Text)) > len(normalizeText(existing.Text)) {
		base = incoming
	}

	base.StartTS = mergeTimestamp(existing.StartTS, incoming.StartTS)
	base.EndTS = mergeTimestamp(existing.EndTS, incoming.EndTS)

	return base
}

// mergeTimestamp picks the lexicographically earlier of two HH:MM:SS values;
// a missing value defers to the present one.
func mergeTimestamp(a, b string) string {
	switch {
	case a == "":
		return b
	case b == "":
		return a
	case b < a:
		return b
	default:
		return a
	}
}

func reindex(turns []transcript.Turn) []transcript.Turn {
	out := make([]transcript.Turn, len(turns))
	for i, t := range turns {
		t.Idx = i
		out[i] = t
	}
	return out
}
