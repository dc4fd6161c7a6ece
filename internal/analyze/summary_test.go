package analyze

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jkaur/wastat/internal/chat"
)

func TestSummarizeIdleGap(t *testing.T) {
	req := require.New(t)

	// gaps: 10min (counted), 20min (idle, excluded entirely)
	records := []chat.Record{
		rec("1/1/2024", "09:00", "Alice", "one"),
		rec("1/1/2024", "09:10", "Alice", "two"),
		rec("1/1/2024", "09:30", "Alice", "three"),
	}

	summaries := Summarize(records, []string{"Alice"})
	req.Len(summaries, 1)
	req.Equal("Alice", summaries[0].Participant)
	req.Equal(3, summaries[0].MessageCount)
	req.Equal(10*time.Minute, summaries[0].ActiveDuration)
	req.Equal(30*time.Minute, summaries[0].TotalSpan)
}

func TestSummarizeGapAtThreshold(t *testing.T) {
	req := require.New(t)

	// exactly 15min counts as active; 15min 1s would not
	records := []chat.Record{
		rec("1/1/2024", "09:00", "Alice", "one"),
		rec("1/1/2024", "09:15", "Alice", "two"),
	}
	summaries := Summarize(records, []string{"Alice"})
	req.Equal(IdleThreshold, summaries[0].ActiveDuration)
}

func TestSummarizeZeroForAbsentParticipant(t *testing.T) {
	req := require.New(t)

	records := []chat.Record{
		rec("1/1/2024", "09:00", "Alice", "hi"),
	}
	summaries := Summarize(records, []string{"Alice", "Bob"})
	req.Len(summaries, 2)

	bob := summaries[1]
	req.Equal("Bob", bob.Participant)
	req.Equal(0, bob.MessageCount)
	req.Equal(time.Duration(0), bob.ActiveDuration)
	req.Equal(time.Duration(0), bob.TotalSpan)
}

func TestSummarizeExcludesInvalidTimestamps(t *testing.T) {
	req := require.New(t)

	records := []chat.Record{
		rec("1/1/2024", "09:00", "Alice", "ok"),
		rec("bad", "??", "Alice", "lost to duration math"),
		rec("also bad", "!!", "Bob", "entirely invalid"),
	}
	summaries := Summarize(records, []string{"Alice", "Bob"})

	req.Equal(1, summaries[0].MessageCount)
	// a participant with only invalid timestamps reports a zero summary
	req.Equal(0, summaries[1].MessageCount)
	req.Equal(time.Duration(0), summaries[1].ActiveDuration)
}

func TestSummarizeSortsOutOfOrderInput(t *testing.T) {
	req := require.New(t)

	records := []chat.Record{
		rec("1/1/2024", "09:10", "Alice", "second"),
		rec("1/1/2024", "09:00", "Alice", "first"),
		rec("1/1/2024", "09:12", "Alice", "third"),
	}
	summaries := Summarize(records, []string{"Alice"})
	req.Equal(12*time.Minute, summaries[0].ActiveDuration)
	req.Equal(3, summaries[0].MessageCount)
}

func TestSummarizeSingleMessage(t *testing.T) {
	req := require.New(t)

	summaries := Summarize([]chat.Record{rec("1/1/2024", "09:00", "Alice", "hi")}, []string{"Alice"})
	req.Equal(1, summaries[0].MessageCount)
	req.Equal(time.Duration(0), summaries[0].ActiveDuration)
	req.Equal(time.Duration(0), summaries[0].TotalSpan)
}
