package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/exporter"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// NewExportCmd creates the export command
func NewExportCmd() *cobra.Command {
	var (
		out   string
		title string
	)

	cmd := &cobra.Command{
		Use:   "export <turns-file|analysis-file>",
		Short: "Export a turns or analysis document to docx",
		Long: `Render a merged turns document as a formatted transcript, or a
meeting analysis document as minutes. The document kind is detected
from its contents.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read document: %w", err)
			}

			// An analysis document carries segment_analyses; a turns
			// document carries turns. Probe for both.
			var probe struct {
				Turns           []json.RawMessage `json:"turns"`
				SegmentAnalyses []json.RawMessage `json:"segment_analyses"`
			}
			if err := json.Unmarshal(data, &probe); err != nil {
				return fmt.Errorf("parse document: %w", err)
			}

			switch {
			case probe.SegmentAnalyses != nil:
				var analysis transcript.MeetingAnalysis
				if err := json.Unmarshal(data, &analysis); err != nil {
					return fmt.Errorf("parse analysis: %w", err)
				}
				if title == "" {
					title = "Meeting Minutes: " + analysis.MeetingID
				}
				if err := exporter.AnalysisToDocx(&analysis, title, out); err != nil {
					return fmt.Errorf("export minutes: %w", err)
				}
			case probe.Turns != nil:
				var doc transcript.TurnsDocument
				if err := json.Unmarshal(data, &doc); err != nil {
					return fmt.Errorf("parse turns: %w", err)
				}
				if title == "" {
					title = "Transcript: " + doc.MeetingID
				}
				if err := exporter.TurnsToDocx(&doc, title, out); err != nil {
					return fmt.Errorf("export transcript: %w", err)
				}
			default:
				return fmt.Errorf("unrecognized document: %s has neither turns nor segment analyses", args[0])
			}

			fmt.Printf("Wrote %s\n", out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "export.docx", "Path to write the docx file")
	cmd.Flags().StringVar(&title, "title", "", "Document title (defaults from the meeting id)")

	return cmd
}
