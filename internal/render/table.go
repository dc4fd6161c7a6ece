// Package render turns pipeline output into terminal text: the
// participant summary table, stacked bar charts per hour and per
// minute, and the filtered message listing.
package render

import (
	"fmt"
	"io"
	"time"

	"github.com/olekukonko/tablewriter"

	"github.com/jkaur/wastat/internal/analyze"
)

// FormatDuration renders a duration as "3h 42m", matching the summary
// table convention.
func FormatDuration(d time.Duration) string {
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	return fmt.Sprintf("%dh %dm", h, m)
}

// SummaryTable writes the per-participant activity table.
func SummaryTable(w io.Writer, summaries []analyze.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Participant", "Messages", "Active Duration", "Total Span"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorder(false)
	table.SetHeaderLine(false)

	for _, s := range summaries {
		table.Append([]string{
			s.Participant,
			fmt.Sprintf("%d", s.MessageCount),
			FormatDuration(s.ActiveDuration),
			FormatDuration(s.TotalSpan),
		})
	}
	table.Render()
}
