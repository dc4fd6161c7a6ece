package chat

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		description string
		msg         Message
		valid       bool
		timestamp   time.Time
		hour        int
	}{
		{
			"Should combine date and clock day-first",
			Message{Date: "2/1/2024", Clock: "09:30", Sender: "Alice"},
			true,
			time.Date(2024, time.January, 2, 9, 30, 0, 0, time.UTC),
			9,
		},
		{
			"Should accept padded day and month",
			Message{Date: "02/01/2024", Clock: "23:59", Sender: "Alice"},
			true,
			time.Date(2024, time.January, 2, 23, 59, 0, 0, time.UTC),
			23,
		},
		{
			"Should flag an impossible month as invalid",
			Message{Date: "2/13/2024", Clock: "09:30", Sender: "Alice"},
			false,
			time.Time{},
			0,
		},
		{
			"Should flag an impossible day as invalid",
			Message{Date: "31/2/2024", Clock: "09:30", Sender: "Alice"},
			false,
			time.Time{},
			0,
		},
		{
			"Should flag an impossible clock as invalid",
			Message{Date: "2/1/2024", Clock: "25:00", Sender: "Alice"},
			false,
			time.Time{},
			0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			records := Normalize([]Message{tt.msg})
			req.Len(records, 1)

			rec := records[0]
			req.Equal(tt.valid, rec.Valid)
			req.Equal(tt.msg, rec.Message)
			if tt.valid {
				req.True(tt.timestamp.Equal(rec.Timestamp))
				req.Equal(tt.hour, rec.Hour)
				req.True(rec.MinuteBucket.Equal(rec.Timestamp.Truncate(time.Minute)))
			} else {
				req.True(rec.Timestamp.IsZero())
			}
		})
	}
}

func TestNormalizeKeepsOrderAndInvalidRecords(t *testing.T) {
	req := require.New(t)

	msgs := []Message{
		{Date: "1/1/2024", Clock: "09:00", Sender: "Alice", Text: "a"},
		{Date: "99/99/9999", Clock: "09:01", Sender: "Bob", Text: "b"},
		{Date: "1/1/2024", Clock: "09:02", Sender: "Carol", Text: "c"},
	}
	records := Normalize(msgs)
	req.Len(records, 3)
	req.Equal("a", records[0].Text)
	req.Equal("b", records[1].Text)
	req.Equal("c", records[2].Text)
	req.True(records[0].Valid)
	req.False(records[1].Valid)
	req.True(records[2].Valid)
}

func TestNormalizeIdempotent(t *testing.T) {
	req := require.New(t)

	msgs := []Message{
		{Date: "15/6/2024", Clock: "14:45", Sender: "Alice", Text: "x"},
		{Date: "bad", Clock: "??", Sender: "Bob", Text: "y"},
	}
	first := Normalize(msgs)

	again := make([]Message, len(first))
	for i, r := range first {
		again[i] = r.Message
	}
	second := Normalize(again)

	req.Equal(first, second)
}
