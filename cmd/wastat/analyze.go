package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jkaur/wastat/internal/analyze"
	"github.com/jkaur/wastat/internal/chat"
	"github.com/jkaur/wastat/internal/config"
	"github.com/jkaur/wastat/internal/render"
	"github.com/jkaur/wastat/internal/scan"
)

func analyzeCmd() *cobra.Command {
	var participants, date, keyword string
	var showMessages, asJSON bool
	var width int

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Run the analysis pipeline over an export and print the report",
		Long: `Parse a WhatsApp .txt export, apply the participant/date/keyword
filters, and print the activity summary table plus the per-hour and
per-minute stacked charts. Without a file argument the newest .txt under
export_dir is used.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			path, err := resolveExport(args, cfg)
			if err != nil {
				return err
			}

			criteria := analyze.Criteria{Keyword: keyword}
			if participants != "" {
				criteria.Participants = splitParticipants(participants)
			}
			if date != "" {
				d, err := time.Parse("2/1/2006", date)
				if err != nil {
					return fmt.Errorf("parse --date %q (want DD/MM/YYYY): %w", date, err)
				}
				criteria.Date = &d
			}

			f, err := os.Open(path)
			if err != nil {
				return fmt.Errorf("open export: %w", err)
			}
			defer f.Close()

			report, err := analyze.Run(f, criteria)
			if err != nil {
				return fmt.Errorf("analyze %s: %w", path, err)
			}
			slog.Debug("pipeline done", "file", path,
				"lines", report.Ingest.Lines, "matched", report.Ingest.Matched,
				"dropped", report.Ingest.Dropped)

			if asJSON {
				return json.NewEncoder(os.Stdout).Encode(toJSONReport(report))
			}

			fmt.Println(render.Report(report, render.Options{
				Width:         chartWidth(width, cfg),
				MaxMinuteRows: cfg.MaxMinuteRows,
				ShowMessages:  showMessages,
			}))
			if report.Ingest.Dropped > 0 {
				fmt.Fprintf(os.Stderr, "note: %d non-matching lines dropped\n", report.Ingest.Dropped)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&participants, "participants", "", "Comma-separated senders to keep (default: all)")
	cmd.Flags().StringVar(&date, "date", "", "Keep only this calendar date (DD/MM/YYYY)")
	cmd.Flags().StringVar(&keyword, "keyword", "", "Case-insensitive substring filter on message text")
	cmd.Flags().BoolVar(&showMessages, "messages", false, "Also print the filtered message listing")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the report as JSON instead of rendering it")
	cmd.Flags().IntVar(&width, "width", 0, "Chart width in columns (0 = auto)")

	return cmd
}

func splitParticipants(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// resolveExport picks the explicit file argument, falling back to the
// newest .txt under the configured export directory.
func resolveExport(args []string, cfg *config.Config) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	path, err := scan.Newest(cfg.ExportDir)
	if err != nil {
		return "", fmt.Errorf("scan %s: %w", cfg.ExportDir, err)
	}
	if path == "" {
		return "", fmt.Errorf("no .txt export found under %s (pass a file argument)", cfg.ExportDir)
	}
	slog.Debug("using newest export", "path", path)
	return path, nil
}

func chartWidth(flag int, cfg *config.Config) int {
	if flag > 0 {
		return flag
	}
	if cfg.ChartWidth > 0 {
		return cfg.ChartWidth
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

// JSON shapes: the aggregation maps use struct keys, so they flatten to
// sorted slices for output.

type hourCountJSON struct {
	Hour        int    `json:"hour"`
	Participant string `json:"participant"`
	Count       int    `json:"count"`
}

type minuteCountJSON struct {
	Bucket      time.Time `json:"bucket"`
	Participant string    `json:"participant"`
	Count       int       `json:"count"`
	Texts       []string  `json:"texts"`
}

type reportJSON struct {
	Participants []string          `json:"participants"`
	Records      []chat.Record     `json:"records"`
	Summaries    []analyze.Summary `json:"summaries"`
	HourCounts   []hourCountJSON   `json:"hourCounts"`
	MinuteCounts []minuteCountJSON `json:"minuteCounts"`
	Ingest       chat.IngestStats  `json:"ingest"`
}

func toJSONReport(r *analyze.Report) reportJSON {
	hours := make([]hourCountJSON, 0, len(r.HourCounts))
	for k, n := range r.HourCounts {
		hours = append(hours, hourCountJSON{Hour: k.Hour, Participant: k.Participant, Count: n})
	}
	sort.Slice(hours, func(i, j int) bool {
		if hours[i].Hour != hours[j].Hour {
			return hours[i].Hour < hours[j].Hour
		}
		return hours[i].Participant < hours[j].Participant
	})

	minutes := make([]minuteCountJSON, 0, len(r.MinuteCounts))
	for k, cell := range r.MinuteCounts {
		minutes = append(minutes, minuteCountJSON{
			Bucket:      k.Bucket,
			Participant: k.Participant,
			Count:       cell.Count,
			Texts:       cell.Texts,
		})
	}
	sort.Slice(minutes, func(i, j int) bool {
		if !minutes[i].Bucket.Equal(minutes[j].Bucket) {
			return minutes[i].Bucket.Before(minutes[j].Bucket)
		}
		return minutes[i].Participant < minutes[j].Participant
	})

	return reportJSON{
		Participants: r.Participants,
		Records:      r.Records,
		Summaries:    r.Summaries,
		HourCounts:   hours,
		MinuteCounts: minutes,
		Ingest:       r.Ingest,
	}
}
