package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/tokenizer"
)

// NewTokensCmd creates the tokens command
func NewTokensCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <transcript-file>",
		Short: "Estimate the token count of a transcript",
		Long: `Report character count, estimated token count and whether the
transcript exceeds the chunking threshold, using both the configured
tokenizer encoding and the conservative character heuristic.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig()
			if err != nil {
				return err
			}

			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			text := string(data)

			exact := tokenizer.New(cfg.Gemini.Encoding).Estimate(text)
			heuristic := tokenizer.NewHeuristic(cfg.Chunking.CharsPerToken).Estimate(text)

			fmt.Printf("File:              %s\n", args[0])
			fmt.Printf("Characters:        %d\n", len(text))
			fmt.Printf("Tokens (%s): %d\n", cfg.Gemini.Encoding, exact)
			fmt.Printf("Tokens (heuristic): %d\n", heuristic)
			fmt.Printf("Chunking threshold: %d tokens\n", cfg.Chunking.ThresholdTokens)
			if heuristic > cfg.Chunking.ThresholdTokens {
				chunks := (len(text) + cfg.Chunking.ChunkSizeTokens*cfg.Chunking.CharsPerToken - 1) /
					(cfg.Chunking.ChunkSizeTokens * cfg.Chunking.CharsPerToken)
				fmt.Printf("Needs chunking:     yes (~%d chunks)\n", chunks)
			} else {
				fmt.Printf("Needs chunking:     no\n")
			}
			return nil
		},
	}
}
