package analyzer

import (
	"context"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// Analyzer is the external text-understanding step: it converts raw transcript
// text into structured turns and extracts insights from segments.
type Analyzer interface {
	ExtractTurns(ctx context.Context, meetingID, chunkText string) ([]transcript.Turn, error)
	AnalyzeSegment(ctx context.Context, seg transcript.Segment) (*transcript.SegmentAnalysis, error)
}
