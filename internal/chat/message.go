// Package chat parses WhatsApp plain-text exports into timestamped
// message records.
//
// Only the Android day-first export format is recognized:
//
//	D/M/YYYY, HH:MM - Sender: text
//
// Continuation lines of multi-line messages carry no timestamp prefix
// and are dropped as noise; this is a known limitation, not a bug.
package chat

import (
	"fmt"
	"time"
)

// Message is one successfully parsed export line, fields as written in
// the source (Date stays day-first textual until Normalize).
type Message struct {
	Date   string `json:"date"`
	Clock  string `json:"time"`
	Sender string `json:"sender"`
	Text   string `json:"text"`
}

// Record is a Message with its normalized timestamp and the derived
// grouping keys. When the date+time text does not form a valid calendar
// moment, Valid is false and Timestamp/Hour/MinuteBucket are zero;
// consumers must check Valid before any time-based computation.
type Record struct {
	Message
	Timestamp    time.Time `json:"timestamp"`
	Valid        bool      `json:"valid"`
	Hour         int       `json:"hour"`
	MinuteBucket time.Time `json:"minuteBucket"`
}

// IngestStats counts line dispositions for diagnostics. Dropped lines
// are not errors.
type IngestStats struct {
	Lines   int `json:"lines"`
	Matched int `json:"matched"`
	Dropped int `json:"dropped"`
}

func (s IngestStats) String() string {
	return fmt.Sprintf("lines=%d matched=%d dropped=%d", s.Lines, s.Matched, s.Dropped)
}

// DecodeError reports invalid UTF-8 in the input. It is fatal for the
// whole ingestion call, unlike grammar mismatches which drop silently.
type DecodeError struct {
	Line int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("line %d: invalid UTF-8 byte sequence", e.Line)
}

// Participants returns the distinct senders in first-seen order.
func Participants(msgs []Message) []string {
	seen := make(map[string]struct{}, 8)
	var names []string
	for _, m := range msgs {
		if _, ok := seen[m.Sender]; ok {
			continue
		}
		seen[m.Sender] = struct{}{}
		names = append(names, m.Sender)
	}
	return names
}
