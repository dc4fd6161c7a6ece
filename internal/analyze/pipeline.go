package analyze

import (
	"io"

	"github.com/jkaur/wastat/internal/chat"
)

// Report is the full pipeline output handed to the presentation layer.
type Report struct {
	Participants []string
	Records      []chat.Record
	Summaries    []Summary
	HourCounts   map[HourKey]int
	MinuteCounts map[MinuteKey]*MinuteCell
	Ingest       chat.IngestStats
}

// Run executes one complete pipeline pass: ingest raw export text,
// normalize timestamps, filter, then summarize and aggregate. Only
// decoding failures propagate; malformed lines and invalid timestamps
// are absorbed per the chat package's drop-or-sentinel rules.
//
// A nil Criteria.Participants selects every sender found in the export.
func Run(r io.Reader, c Criteria) (*Report, error) {
	msgs, stats, err := chat.Ingest(r)
	if err != nil {
		return nil, err
	}
	records := chat.Normalize(msgs)

	participants := c.Participants
	if participants == nil {
		participants = chat.Participants(msgs)
		c.Participants = participants
	}

	filtered := Filter(records, c)

	return &Report{
		Participants: participants,
		Records:      filtered,
		Summaries:    Summarize(filtered, participants),
		HourCounts:   ByHour(filtered),
		MinuteCounts: ByMinute(filtered),
		Ingest:       stats,
	}, nil
}
