package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkaur/wastat/internal/chat"
	"github.com/jkaur/wastat/internal/config"
	"github.com/jkaur/wastat/internal/tui"
)

func dashboardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard [file]",
		Short: "Interactive dashboard with participant/date/keyword filters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			path, err := resolveExport(args, cfg)
			if err != nil {
				return err
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open export: %w", err)
			}
			msgs, stats, err := chat.Ingest(f)
			f.Close()
			if err != nil {
				return fmt.Errorf("ingest %s: %w", path, err)
			}
			if len(msgs) == 0 {
				return fmt.Errorf("%s: no lines matched the export grammar", path)
			}
			slog.Debug("export loaded", "file", path, "stats", stats.String())

			return tui.Run(chat.Normalize(msgs), stats, cfg.MaxMinuteRows)
		},
	}
}
