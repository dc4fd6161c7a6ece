// Package analyze filters, summarizes, and buckets normalized chat
// records. All functions are pure over their inputs; nothing here keeps
// state between runs.
package analyze

import (
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/jkaur/wastat/internal/chat"
)

// Criteria narrows the record set before analysis. All predicates
// compose conjunctively.
//
// Participants distinguishes nil from empty: nil means "no participant
// filter" (every sender kept), while an empty non-nil slice means "none
// selected" and yields an empty result.
type Criteria struct {
	Participants []string
	Date         *time.Time // calendar day match, valid timestamps only
	Keyword      string     // case-insensitive substring of the text
}

// Filter applies the criteria, preserving input order.
func Filter(records []chat.Record, c Criteria) []chat.Record {
	keyword := strings.ToLower(c.Keyword)

	var members map[string]struct{}
	if c.Participants != nil {
		members = make(map[string]struct{}, len(c.Participants))
		for _, p := range c.Participants {
			members[p] = struct{}{}
		}
	}

	return lo.Filter(records, func(r chat.Record, _ int) bool {
		if members != nil {
			if _, ok := members[r.Sender]; !ok {
				return false
			}
		}
		if c.Date != nil {
			if !r.Valid || !sameDay(r.Timestamp, *c.Date) {
				return false
			}
		}
		if keyword != "" && !strings.Contains(strings.ToLower(r.Text), keyword) {
			return false
		}
		return true
	})
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateBounds returns the earliest and latest calendar dates among the
// valid-timestamped records. ok is false when no record has a valid
// timestamp.
func DateBounds(records []chat.Record) (min, max time.Time, ok bool) {
	for _, r := range records {
		if !r.Valid {
			continue
		}
		day := r.Timestamp.Truncate(24 * time.Hour)
		if !ok {
			min, max = day, day
			ok = true
			continue
		}
		if day.Before(min) {
			min = day
		}
		if day.After(max) {
			max = day
		}
	}
	return min, max, ok
}
