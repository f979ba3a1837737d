package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sjfischr/meeting-transcript-analyzer/internal/watcher"
)

// NewWatchCmd creates the watch command
func NewWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the input directory and process new transcripts",
		Long: `Monitor the configured input directory for new transcript files and
run the full pipeline on each one as it arrives. Runs until interrupted.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}

			proc, err := buildProcessor(cfg, log)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			w, err := watcher.New(cfg.Paths.Input, proc.Process, log, cfg.Performance.MaxConcurrent)
			if err != nil {
				return fmt.Errorf("create watcher: %w", err)
			}

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

			// Start watcher in goroutine; Start blocks until the context is
			// cancelled or the watcher breaks.
			errCh := make(chan error, 1)
			go func() {
				errCh <- w.Start(ctx)
			}()

			log.Info(ctx, "Watching %s for new transcripts", cfg.Paths.Input)
			log.Info(ctx, "Press Ctrl+C to stop")

			select {
			case sig := <-sigCh:
				log.Info(ctx, "Received signal %s, shutting down", sig.String())
				cancel()
				// Start drains in-flight pipeline runs before returning.
				<-errCh
			case err := <-errCh:
				if err != nil && err != context.Canceled {
					_ = w.Stop()
					return fmt.Errorf("watcher: %w", err)
				}
			}

			if err := w.Stop(); err != nil {
				log.Error(ctx, "Error stopping watcher: %v", err)
			}

			log.Info(ctx, "Shutdown complete")
			return nil
		},
	}
}
