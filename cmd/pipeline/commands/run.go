package commands

import (
	"github.com/spf13/cobra"
)

// NewRunCmd creates the run command
func NewRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <transcript-file>",
		Short: "Run the full pipeline on a single transcript file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			proc, err := buildProcessor(cfg, log)
			if err != nil {
				return err
			}

			return proc.Process(cmd.Context(), args[0])
		},
	}
}
