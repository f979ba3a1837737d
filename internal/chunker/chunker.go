package chunker

import "context"

// Chunk is one bounded, possibly-overlapping slice of the transcript.
// Offsets are half-open byte offsets into the original text. OverlapText is
// the suffix of Text repeated at the start of the following chunk's region.
type Chunk struct {
	Index              int    `json:"chunk_index"`
	Text               string `json:"chunk_text"`
	StartOffset        int    `json:"start_char"`
	EndOffset          int    `json:"end_char"`
	OverlapStartOffset int    `json:"overlap_start_char"`
	OverlapText        string `json:"overlap_text"`
	EstimatedTokens    int    `json:"estimated_tokens"`
	HasNext            bool   `json:"has_next_chunk"`
}

// NeedsChunking reports whether the transcript exceeds the configured token
// threshold and must be split before analysis.
func (c *implChunker) NeedsChunking(text string) bool {
	return c.estimator.Estimate(text) > c.cfg.ThresholdTokens
}

// Chunk splits the transcript into overlapping chunks. Boundaries land on
// natural breaks near the target offset when one exists within the search
// radius; otherwise the raw offset is used and a mid-sentence split is accepted.
func (c *implChunker) Chunk(ctx context.Context, text string) []Chunk {
	total := len(text)
	if total == 0 {
		return nil
	}

	chunkChars := c.cfg.ChunkSizeTokens * c.cfg.CharsPerToken
	overlapChars := c.cfg.OverlapTokens * c.cfg.CharsPerToken
	stride := chunkChars - overlapChars

	c.logger.Debug(ctx, "Chunking %d chars (chunk %d chars, overlap %d chars)", total, chunkChars, overlapChars)

	var chunks []Chunk
	pos := 0

	for pos < total {
		start := pos
		endTarget := start + chunkChars
		if endTarget > total {
			endTarget = total
		}

		end := endTarget
		if endTarget < total {
			end = c.findNaturalBreak(text, endTarget)
		}

		chunkText := text[start:end]
		hasNext := end < total

		overlapStart := end
		overlapText := ""
		if hasNext {
			overlapStart = end - overlapChars
			if overlapStart < start {
				overlapStart = start
			}
			overlapText = text[overlapStart:end]
		}

		chunks = append(chunks, Chunk{
			Index:              len(chunks),
			Text:               chunkText,
			StartOffset:        start,
			EndOffset:          end,
			OverlapStartOffset: overlapStart,
			OverlapText:        overlapText,
			EstimatedTokens:    c.estimator.Estimate(chunkText),
			HasNext:            hasNext,
		})

		c.logger.Debug(ctx, "Chunk %d: chars %d-%d (%d chars)", len(chunks)-1, start, end, len(chunkText))

		if !hasNext {
			break
		}

		// The next chunk starts a stride past this chunk's start, snapped to a
		// natural break so it does not open mid-sentence.
		nextStart := start + stride
		if nextStart < total {
			pos = c.findNaturalBreak(text, nextStart)
		} else {
			pos = total
		}
	}

	return chunks
}

// findNaturalBreak locates a paragraph or line boundary near target. The
// precedence (backward paragraph, forward paragraph, backward line, forward
// line, raw target) is deliberate and affects boundary determinism; changing
// it would shift every chunk seam.
func (c *implChunker) findNaturalBreak(text string, target int) int {
	start := target - c.cfg.SearchRadius
	if start < 0 {
		start = 0
	}
	end := target + c.cfg.SearchRadius
	if end > len(text) {
		end = len(text)
	}

	for i := target; i > start; i-- {
		if i+1 < len(text) && text[i] == '\n' && text[i+1] == '\n' {
			return i + 2
		}
	}

	for i := target; i < end-1; i++ {
		if text[i] == '\n' && text[i+1] == '\n' {
			return i + 2
		}
	}

	for i := target; i > start; i-- {
		if text[i] == '\n' {
			return i + 1
		}
	}

	for i := target; i < end; i++ {
		if text[i] == '\n' {
			return i + 1
		}
	}

	return target
}
