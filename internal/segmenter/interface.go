package segmenter

import "github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"

// Segmenter groups an ordered turn sequence into segments bounded by an
// approximate token budget, never splitting a turn.
type Segmenter interface {
	Segment(turns []transcript.Turn) []transcript.Segment
}
