package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/chunker"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/tokenizer"
)

// NewChunkCmd creates the chunk command
func NewChunkCmd() *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "chunk <transcript-file>",
		Short: "Split a transcript into overlapping chunks",
		Long: `Split a transcript into overlapping chunks at natural break points
and write each chunk plus a metadata record to the output directory.
Transcripts under the chunking threshold produce a single chunk.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			text := string(data)

			chk := chunker.New(cfg.Chunking, tokenizer.NewHeuristic(cfg.Chunking.CharsPerToken), log)

			meetingID := strings.ToLower(strings.TrimSuffix(filepath.Base(args[0]), filepath.Ext(args[0])))

			var chunks []chunker.Chunk
			if chk.NeedsChunking(text) {
				chunks = chk.Chunk(cmd.Context(), text)
			} else {
				chunks = []chunker.Chunk{{Index: 0, Text: text, EndOffset: len(text)}}
			}

			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}

			for _, ch := range chunks {
				name := filepath.Join(outDir, fmt.Sprintf("chunk_%d.txt", ch.Index))
				if err := os.WriteFile(name, []byte(ch.Text), 0o644); err != nil {
					return fmt.Errorf("write chunk %d: %w", ch.Index, err)
				}
			}

			meta := chk.Metadata(meetingID, text, chunks)
			raw, err := json.MarshalIndent(meta, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal metadata: %w", err)
			}
			metaPath := filepath.Join(outDir, "metadata.json")
			if err := os.WriteFile(metaPath, append(raw, '\n'), 0o644); err != nil {
				return fmt.Errorf("write metadata: %w", err)
			}

			fmt.Printf("Wrote %d chunk(s) to %s\n", len(chunks), outDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "chunks", "Directory to write chunks into")

	return cmd
}
