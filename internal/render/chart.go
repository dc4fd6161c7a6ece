package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/jkaur/wastat/internal/analyze"
)

// palette cycles over the stacking dimension (participants).
var palette = []lipgloss.Color{
	lipgloss.Color("12"),  // bright blue
	lipgloss.Color("10"),  // bright green
	lipgloss.Color("11"),  // bright yellow
	lipgloss.Color("13"),  // bright magenta
	lipgloss.Color("14"),  // bright cyan
	lipgloss.Color("9"),   // bright red
	lipgloss.Color("208"), // orange
	lipgloss.Color("33"),  // steel blue
}

func participantStyle(i int) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(palette[i%len(palette)])
}

var styleChartDim = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// stackRow is one bar of a stacked chart: counts aligned with the
// participant order.
type stackRow struct {
	label  string
	counts []int
}

func (r stackRow) total() int {
	return lo.Sum(r.counts)
}

// Legend renders one colored swatch per participant.
func Legend(participants []string) string {
	parts := make([]string, 0, len(participants))
	for i, p := range participants {
		parts = append(parts, participantStyle(i).Render("■ "+p))
	}
	return strings.Join(parts, "  ")
}

// HourChart renders messages-per-hour as horizontal stacked bars, one
// row per hour of day present in the counts, participant as the
// stacking dimension.
func HourChart(counts map[analyze.HourKey]int, participants []string, width int) string {
	index := lo.SliceToMap(lo.Range(len(participants)), func(i int) (string, int) {
		return participants[i], i
	})

	byHour := make(map[int][]int)
	for key, n := range counts {
		pi, ok := index[key.Participant]
		if !ok {
			continue
		}
		if byHour[key.Hour] == nil {
			byHour[key.Hour] = make([]int, len(participants))
		}
		byHour[key.Hour][pi] += n
	}

	hours := lo.Keys(byHour)
	sort.Ints(hours)

	rows := make([]stackRow, 0, len(hours))
	for _, h := range hours {
		rows = append(rows, stackRow{label: fmt.Sprintf("%02d:00", h), counts: byHour[h]})
	}
	return renderStacked(rows, participants, width)
}

// MinuteChart renders messages-per-minute stacked bars in chronological
// order. When the bucket count exceeds maxRows, only the most recent
// maxRows minutes are shown, with a note about the rest.
func MinuteChart(counts map[analyze.MinuteKey]*analyze.MinuteCell, participants []string, width, maxRows int) string {
	index := lo.SliceToMap(lo.Range(len(participants)), func(i int) (string, int) {
		return participants[i], i
	})

	byBucket := make(map[time.Time][]int)
	for key, cell := range counts {
		pi, ok := index[key.Participant]
		if !ok {
			continue
		}
		if byBucket[key.Bucket] == nil {
			byBucket[key.Bucket] = make([]int, len(participants))
		}
		byBucket[key.Bucket][pi] += cell.Count
	}

	buckets := lo.Keys(byBucket)
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Before(buckets[j]) })

	var note string
	if maxRows > 0 && len(buckets) > maxRows {
		note = styleChartDim.Render(
			fmt.Sprintf("(showing last %d of %d minutes)", maxRows, len(buckets))) + "\n"
		buckets = buckets[len(buckets)-maxRows:]
	}

	rows := make([]stackRow, 0, len(buckets))
	for _, b := range buckets {
		rows = append(rows, stackRow{label: b.Format("02/01 15:04"), counts: byBucket[b]})
	}
	return note + renderStacked(rows, participants, width)
}

// renderStacked draws the rows as colored bars scaled to the widest
// total, with the label on the left and the total on the right.
func renderStacked(rows []stackRow, participants []string, width int) string {
	if len(rows) == 0 {
		return styleChartDim.Render("(no data)")
	}

	labelW := 0
	maxTotal := 0
	for _, r := range rows {
		if w := runewidth.StringWidth(r.label); w > labelW {
			labelW = w
		}
		if t := r.total(); t > maxTotal {
			maxTotal = t
		}
	}

	countW := len(fmt.Sprintf("%d", maxTotal))
	barW := width - labelW - countW - 3 // " " + bar + " " + count
	if barW < 10 {
		barW = 10
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(runewidth.FillRight(r.label, labelW))
		b.WriteString(" ")
		for i, c := range r.counts {
			seg := c * barW / maxTotal
			if c > 0 && seg == 0 {
				seg = 1
			}
			if seg > 0 {
				b.WriteString(participantStyle(i).Render(strings.Repeat("█", seg)))
			}
		}
		b.WriteString(fmt.Sprintf(" %*d", countW, r.total()))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
