package analyze

import (
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jkaur/wastat/internal/chat"
)

func newReader(lines ...string) io.Reader {
	return strings.NewReader(strings.Join(lines, "\n") + "\n")
}

func TestRunDefaultsToAllParticipants(t *testing.T) {
	req := require.New(t)

	report, err := Run(newReader(
		"1/1/2024, 09:00 - Alice: hi",
		"1/1/2024, 09:05 - Bob (+1 555): hello",
		"garbage line",
	), Criteria{})
	req.NoError(err)

	req.Equal([]string{"Alice", "Bob"}, report.Participants)
	req.Len(report.Records, 2)
	req.Len(report.Summaries, 2)
	req.Equal(1, report.HourCounts[HourKey{Hour: 9, Participant: "Alice"}])
	req.Equal(1, report.HourCounts[HourKey{Hour: 9, Participant: "Bob"}])
	req.Equal(chat.IngestStats{Lines: 3, Matched: 2, Dropped: 1}, report.Ingest)
}

func TestRunEmptySelectionYieldsZeroSummaries(t *testing.T) {
	req := require.New(t)

	report, err := Run(newReader(
		"1/1/2024, 09:00 - Alice: hi",
	), Criteria{Participants: []string{}})
	req.NoError(err)

	req.Empty(report.Records)
	req.Empty(report.Summaries)
	req.Empty(report.HourCounts)
	req.Empty(report.MinuteCounts)
}

func TestRunAppliesAllFilters(t *testing.T) {
	req := require.New(t)

	day := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	report, err := Run(newReader(
		"1/1/2024, 09:00 - Alice: hi there",
		"1/1/2024, 09:05 - Bob: HI back",
		"2/1/2024, 09:00 - Alice: hi again",
	), Criteria{
		Participants: []string{"Alice"},
		Date:         &day,
		Keyword:      "HI",
	})
	req.NoError(err)

	req.Len(report.Records, 1)
	req.Equal("hi there", report.Records[0].Text)
	req.Len(report.Summaries, 1)
	req.Equal(1, report.Summaries[0].MessageCount)
}

func TestRunPropagatesDecodeError(t *testing.T) {
	req := require.New(t)

	_, err := Run(strings.NewReader("\xff\xfe not text\n"), Criteria{})
	req.Error(err)

	var decErr *chat.DecodeError
	req.ErrorAs(err, &decErr)
}

func TestRunEmptyInput(t *testing.T) {
	req := require.New(t)

	report, err := Run(strings.NewReader(""), Criteria{})
	req.NoError(err)
	req.Empty(report.Records)
	req.Empty(report.Summaries)
}
