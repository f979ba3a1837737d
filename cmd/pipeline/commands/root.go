package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/analyzer"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/chunker"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/config"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/logger"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/merger"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/processor"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/segmenter"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/store"
	"github.com/sjfischr/meeting-transcript-analyzer/internal/tokenizer"
)

var configPath string

// NewRootCmd creates the pipeline root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pipeline",
		Short: "Meeting transcript analysis pipeline",
		Long: `Analyze long meeting transcripts: split them into overlapping chunks,
extract structured turns per chunk, merge the results, group turns into
segments and produce minutes, calendar and transcript artifacts.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "Path to configuration file")

	cmd.AddCommand(
		NewRunCmd(),
		NewChunkCmd(),
		NewMergeCmd(),
		NewSegmentCmd(),
		NewTokensCmd(),
		NewWatchCmd(),
		NewExportCmd(),
	)

	return cmd
}

func loadConfig() (*config.Config, logger.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, logger.New(cfg.Logging.Level), nil
}

// geminiKeys reads the model API keys from the environment, loading .env
// first. Multiple keys may be supplied comma-separated for rotation.
func geminiKeys() []string {
	_ = godotenv.Load()

	raw := os.Getenv("GEMINI_API_KEYS")
	if raw == "" {
		raw = os.Getenv("GEMINI_API_KEY")
	}

	var keys []string
	for _, k := range strings.Split(raw, ",") {
		if k = strings.TrimSpace(k); k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}

func buildProcessor(cfg *config.Config, log logger.Logger) (processor.Processor, error) {
	st, err := store.New(cfg.Paths.Output)
	if err != nil {
		return nil, fmt.Errorf("create artifact store: %w", err)
	}

	chk := chunker.New(cfg.Chunking, tokenizer.NewHeuristic(cfg.Chunking.CharsPerToken), log)
	mrg := merger.New(cfg.Merge, log)
	seg := segmenter.New(cfg.Segmenter, tokenizer.New(cfg.Gemini.Encoding))
	ana := analyzer.New(cfg.Gemini, geminiKeys(), log)

	return processor.New(cfg, chk, mrg, seg, ana, st, log), nil
}
