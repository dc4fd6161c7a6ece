package analyze

import (
	"sort"
	"time"

	"github.com/jkaur/wastat/internal/chat"
)

// HourKey groups records by hour of day and sender.
type HourKey struct {
	Hour        int
	Participant string
}

// MinuteKey groups records by minute-truncated timestamp and sender.
type MinuteKey struct {
	Bucket      time.Time
	Participant string
}

// MinuteCell carries the per-bucket count plus the message texts in
// chronological order, for hover/detail display.
type MinuteCell struct {
	Count int      `json:"count"`
	Texts []string `json:"texts"`
}

// ByHour counts filtered records per (hour of day, participant).
// Records with invalid timestamps have no bucket and are skipped.
func ByHour(records []chat.Record) map[HourKey]int {
	counts := make(map[HourKey]int)
	for _, r := range records {
		if !r.Valid {
			continue
		}
		counts[HourKey{Hour: r.Hour, Participant: r.Sender}]++
	}
	return counts
}

// ByMinute counts filtered records per (minute bucket, participant) and
// retains each bucket's message texts chronologically. Records with
// invalid timestamps are skipped.
func ByMinute(records []chat.Record) map[MinuteKey]*MinuteCell {
	ordered := make([]chat.Record, 0, len(records))
	for _, r := range records {
		if r.Valid {
			ordered = append(ordered, r)
		}
	}
	// stable: input order breaks ties within a minute
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Timestamp.Before(ordered[j].Timestamp)
	})

	cells := make(map[MinuteKey]*MinuteCell)
	for _, r := range ordered {
		key := MinuteKey{Bucket: r.MinuteBucket, Participant: r.Sender}
		cell := cells[key]
		if cell == nil {
			cell = &MinuteCell{}
			cells[key] = cell
		}
		cell.Count++
		cell.Texts = append(cell.Texts, r.Text)
	}
	return cells
}
