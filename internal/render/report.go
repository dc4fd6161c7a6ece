package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jkaur/wastat/internal/analyze"
	"github.com/jkaur/wastat/internal/chat"
)

var (
	styleHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	styleInvalid = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// Messages lists the filtered records one per line. Records with
// invalid timestamps keep their raw date/clock text and are flagged.
func Messages(records []chat.Record, width int) string {
	var b strings.Builder
	for _, r := range records {
		var stamp string
		if r.Valid {
			stamp = r.Timestamp.Format("02/01/2006 15:04")
		} else {
			stamp = r.Date + " " + r.Clock + " (invalid)"
		}
		// measure and truncate before styling so escape sequences
		// never count toward the width or get cut mid-sequence
		line := stamp + "  " + r.Sender + ": " + strings.ReplaceAll(r.Text, "\n", " ")
		if width > 0 && runewidth.StringWidth(line) > width {
			line = runewidth.Truncate(line, width, "…")
		}
		if !r.Valid {
			line = styleInvalid.Render(line)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return styleChartDim.Render("(no messages)")
	}
	return strings.TrimRight(b.String(), "\n")
}

// Options controls which report sections are rendered and how wide.
type Options struct {
	Width         int
	MaxMinuteRows int
	ShowMessages  bool
}

// Report renders the complete dashboard text: summary table, hourly and
// minute charts, and optionally the message listing.
func Report(rep *analyze.Report, opts Options) string {
	var b strings.Builder

	b.WriteString(Legend(rep.Participants))
	b.WriteString("\n\n")

	b.WriteString(styleHeading.Render("Chat Duration Summary"))
	b.WriteString("\n")
	var tbl strings.Builder
	SummaryTable(&tbl, rep.Summaries)
	b.WriteString(tbl.String())
	b.WriteString("\n")

	b.WriteString(styleHeading.Render("Messages per Hour"))
	b.WriteString("\n")
	b.WriteString(HourChart(rep.HourCounts, rep.Participants, opts.Width))
	b.WriteString("\n\n")

	b.WriteString(styleHeading.Render("Messages per Minute"))
	b.WriteString("\n")
	b.WriteString(MinuteChart(rep.MinuteCounts, rep.Participants, opts.Width, opts.MaxMinuteRows))
	b.WriteString("\n")

	if opts.ShowMessages {
		b.WriteString("\n")
		b.WriteString(styleHeading.Render("Filtered Messages"))
		b.WriteString("\n")
		b.WriteString(Messages(rep.Records, opts.Width))
		b.WriteString("\n")
	}

	return b.String()
}
