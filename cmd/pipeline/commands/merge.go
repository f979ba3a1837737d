package commands

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/chunker"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/merger"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/transcript"
)

// NewMergeCmd creates the merge command
func NewMergeCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "merge <chunks-dir>",
		Short: "Merge per-chunk turn files into one deduplicated turn list",
		Long: `Read the chunk metadata and per-chunk turn files produced by earlier
pipeline stages (chunk_N_turns.json alongside metadata.json) and merge
them into a single ordered turn list with overlap duplicates removed.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			dir := args[0]

			var meta chunker.Metadata
			if err := readJSONFile(filepath.Join(dir, "metadata.json"), &meta); err != nil {
				return fmt.Errorf("read chunk metadata: %w", err)
			}

			results := make(map[int][]transcript.Turn, meta.ChunkCount)
			for i := 0; i < meta.ChunkCount; i++ {
				path := filepath.Join(dir, fmt.Sprintf("chunk_%d_turns.json", i))
				var turns []transcript.Turn
				if err := readJSONFile(path, &turns); err != nil {
					return fmt.Errorf("read turns for chunk %d: %w", i, err)
				}
				results[i] = turns
			}

			mrg := merger.New(cfg.Merge, log)
			turns, err := mrg.Merge(cmd.Context(), results, meta)
			if err != nil {
				return err
			}

			doc := transcript.TurnsDocument{
				MeetingID: meta.MeetingID,
				TimeZone:  cfg.TimeZone,
				Turns:     turns,
			}
			raw, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal turns: %w", err)
			}
			if err := os.WriteFile(out, append(raw, '\n'), 0o644); err != nil {
				return fmt.Errorf("write merged turns: %w", err)
			}

			fmt.Printf("Merged %d chunk(s) into %d turns: %s\n", meta.ChunkCount, len(turns), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "turns.json", "Path to write the merged turn list")

	return cmd
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
