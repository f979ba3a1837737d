package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/segmenter"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/tokenizer"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/validate"
)

// NewSegmentCmd creates the segment command
func NewSegmentCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "segment <turns-file>",
		Short: "Group an ordered turn list into token-bounded segments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read turns: %w", err)
			}

			var doc transcript.TurnsDocument
			if err := json.Unmarshal(data, &doc); err != nil {
				return fmt.Errorf("parse turns: %w", err)
			}

			problems, err := validate.Turns(&doc)
			if err != nil {
				return fmt.Errorf("validate turns: %w", err)
			}
			for _, p := range problems {
				log.Warn(cmd.Context(), "Invalid turns document: %s", p)
			}

			seg := segmenter.New(cfg.Segmenter, tokenizer.New(cfg.Gemini.Encoding))
			segments := seg.Segment(doc.Turns)

			result := validate.SegmentsDocument{
				MeetingID: doc.MeetingID,
				Segments:  segments,
			}
			raw, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal segments: %w", err)
			}
			if err := os.WriteFile(out, append(raw, '\n'), 0o644); err != nil {
				return fmt.Errorf("write segments: %w", err)
			}

			fmt.Printf("Grouped %d turns into %d segment(s): %s\n", len(doc.Turns), len(segments), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "segments.json", "Path to write the segment list")

	return cmd
}
