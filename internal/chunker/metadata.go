package chunker

import (
	"time"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
)

// ChunkInfo is the per-chunk entry in the audit metadata record. It carries
// offsets but not the chunk text itself.
type ChunkInfo struct {
	Index              int  `json:"chunk_index"`
	StartOffset        int  `json:"start_char"`
	EndOffset          int  `json:"end_char"`
	OverlapStartOffset int  `json:"overlap_start_char"`
	EstimatedTokens    int  `json:"estimated_tokens"`
	HasNext            bool `json:"has_next_chunk"`
}

// Metadata is the serialized chunking record for one run, written alongside
// the chunks for the orchestrator's audit trail and consumed by the merge pass.
type Metadata struct {
	MeetingID            string                `json:"meeting_id"`
	ChunkCount           int                   `json:"chunk_count"`
	TotalChars           int                   `json:"total_chars"`
	EstimatedTotalTokens int                   `json:"estimated_total_tokens"`
	Params               config.ChunkingConfig `json:"chunking_params"`
	Chunks               []ChunkInfo           `json:"chunks"`
	CreatedAt            string                `json:"created_at"`
}

// Metadata builds the audit record for a completed chunking run.
func (c *implChunker) Metadata(meetingID, text string, chunks []Chunk) Metadata {
	infos := make([]ChunkInfo, 0, len(chunks))
	for _, ch := range chunks {
		infos = append(infos, ChunkInfo{
			Index:              ch.Index,
			StartOffset:        ch.StartOffset,
			EndOffset:          ch.EndOffset,
			OverlapStartOffset: ch.OverlapStartOffset,
			EstimatedTokens:    ch.EstimatedTokens,
			HasNext:            ch.HasNext,
		})
	}

	return Metadata{
		MeetingID:            meetingID,
		ChunkCount:           len(chunks),
		TotalChars:           len(text),
		EstimatedTotalTokens: c.estimator.Estimate(text),
		Params:               c.cfg,
		Chunks:               infos,
		CreatedAt:            time.Now().UTC().Format(time.RFC3339),
	}
}
