package processor

import "context"

// Processor runs the full analysis pipeline for one transcript file.
type Processor interface {
	Process(ctx context.Context, transcriptPath string) error
}
