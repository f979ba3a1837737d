package chunker

import "context"

// Chunker splits a transcript into overlapping windows under a token budget,
// preferring paragraph and line boundaries when cutting.
type Chunker interface {
	Chunk(ctx context.Context, text string) []Chunk
	NeedsChunking(text string) bool
	Metadata(meetingID, text string, chunks []Chunk) Metadata
}
