package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jkaur/wastat/internal/analyze"
	"github.com/jkaur/wastat/internal/chat"
	"github.com/jkaur/wastat/internal/config"
	"github.com/jkaur/wastat/internal/scan"
)

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor [dir]",
		Short: "Self-check: verify the export directory and parse every export found",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			dir := cfg.ExportDir
			if len(args) == 1 {
				dir = args[0]
			}

			fmt.Println("=== Export Directory ===")
			checkDir(dir)

			fmt.Println("\n=== Exports ===")
			exports, err := scan.Exports(dir)
			if err != nil {
				return fmt.Errorf("scan: %w", err)
			}
			if len(exports) == 0 {
				fmt.Println("  none found")
				return nil
			}

			for _, e := range exports {
				fmt.Printf("  %s (%.1f KB)\n", e.Path, float64(e.Size)/1024)
				f, err := os.Open(e.Path)
				if err != nil {
					fmt.Printf("    open error: %v\n", err)
					continue
				}
				msgs, stats, err := chat.Ingest(f)
				f.Close()
				if err != nil {
					fmt.Printf("    ingest error: %v\n", err)
					continue
				}
				fmt.Printf("    %s, participants=%d\n", stats, len(chat.Participants(msgs)))
				if min, max, ok := analyze.DateBounds(chat.Normalize(msgs)); ok {
					fmt.Printf("    dates %s .. %s\n",
						min.Format("02/01/2006"), max.Format("02/01/2006"))
				} else {
					fmt.Println("    no valid timestamps")
				}
			}
			return nil
		},
	}
}

func checkDir(path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s (NOT FOUND)\n", path)
	} else if !info.IsDir() {
		fmt.Printf("  %s (NOT A DIRECTORY)\n", path)
	} else {
		fmt.Printf("  %s (OK)\n", path)
	}
}
