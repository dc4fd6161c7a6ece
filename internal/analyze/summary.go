package analyze

import (
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/jkaur/wastat/internal/chat"
)

// IdleThreshold separates "active conversing" gaps from "away" gaps.
// Fixed policy matching the export analysis convention.
const IdleThreshold = 15 * time.Minute

// Summary is one participant's activity over the filtered record set.
// ActiveDuration sums only the inter-message gaps at or below
// IdleThreshold; larger gaps are excluded entirely, not capped.
// TotalSpan is the wall-clock distance between the participant's first
// and last message.
type Summary struct {
	Participant    string        `json:"participant"`
	MessageCount   int           `json:"messageCount"`
	ActiveDuration time.Duration `json:"activeDuration"`
	TotalSpan      time.Duration `json:"totalSpan"`
}

// Summarize computes one Summary per requested participant, in the
// given order, including zero-valued entries for participants with no
// matching records. Records with invalid timestamps are excluded from
// both the count and the duration math, since the latter depends on
// having a valid time.
func Summarize(records []chat.Record, participants []string) []Summary {
	summaries := make([]Summary, 0, len(participants))
	for _, p := range participants {
		own := lo.Filter(records, func(r chat.Record, _ int) bool {
			return r.Valid && r.Sender == p
		})
		// stable: input order breaks timestamp ties
		sort.SliceStable(own, func(i, j int) bool {
			return own[i].Timestamp.Before(own[j].Timestamp)
		})

		s := Summary{Participant: p, MessageCount: len(own)}
		if len(own) > 0 {
			s.TotalSpan = own[len(own)-1].Timestamp.Sub(own[0].Timestamp)
			for i := 1; i < len(own); i++ {
				delta := own[i].Timestamp.Sub(own[i-1].Timestamp)
				if delta <= IdleThreshold {
					s.ActiveDuration += delta
				}
			}
		}
		summaries = append(summaries, s)
	}
	return summaries
}
