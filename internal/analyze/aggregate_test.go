package analyze

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"

	"github.com/jkaur/wastat/internal/chat"
)

func TestByHour(t *testing.T) {
	req := require.New(t)

	records := []chat.Record{
		rec("1/1/2024", "09:00", "Alice", "hi"),
		rec("1/1/2024", "09:05", "Bob", "hello"),
		rec("1/1/2024", "09:59", "Alice", "again"),
		rec("1/1/2024", "10:00", "Alice", "later"),
		rec("bad", "??", "Bob", "invalid"),
	}

	counts := ByHour(records)
	req.Equal(2, counts[HourKey{Hour: 9, Participant: "Alice"}])
	req.Equal(1, counts[HourKey{Hour: 9, Participant: "Bob"}])
	req.Equal(1, counts[HourKey{Hour: 10, Participant: "Alice"}])

	// counts sum to the number of valid-timestamp records
	req.Equal(4, lo.Sum(lo.Values(counts)))
}

func TestByMinute(t *testing.T) {
	req := require.New(t)

	records := []chat.Record{
		rec("1/1/2024", "09:00", "Alice", "first"),
		rec("1/1/2024", "09:00", "Alice", "second"),
		rec("1/1/2024", "09:01", "Alice", "third"),
		rec("1/1/2024", "09:00", "Bob", "other"),
		rec("bad", "??", "Alice", "invalid"),
	}

	cells := ByMinute(records)
	bucket := time.Date(2024, time.January, 1, 9, 0, 0, 0, time.UTC)

	alice := cells[MinuteKey{Bucket: bucket, Participant: "Alice"}]
	req.NotNil(alice)
	req.Equal(2, alice.Count)
	req.Equal([]string{"first", "second"}, alice.Texts)

	bob := cells[MinuteKey{Bucket: bucket, Participant: "Bob"}]
	req.NotNil(bob)
	req.Equal(1, bob.Count)

	next := cells[MinuteKey{Bucket: bucket.Add(time.Minute), Participant: "Alice"}]
	req.NotNil(next)
	req.Equal([]string{"third"}, next.Texts)

	req.Len(cells, 3)
}

func TestAggregateScenario(t *testing.T) {
	req := require.New(t)

	msgs, stats, err := chat.Ingest(newReader(
		"1/1/2024, 09:00 - Alice: hi",
		"1/1/2024, 09:05 - Bob (+1 555): hello",
		"garbage line",
	))
	req.NoError(err)
	req.Len(msgs, 2)
	req.Equal(1, stats.Dropped)
	req.Equal("Bob", msgs[1].Sender)

	records := chat.Normalize(msgs)
	req.Equal(9, records[0].Hour)
	req.Equal(9, records[1].Hour)

	counts := ByHour(records)
	req.Equal(map[HourKey]int{
		{Hour: 9, Participant: "Alice"}: 1,
		{Hour: 9, Participant: "Bob"}:   1,
	}, counts)
}
