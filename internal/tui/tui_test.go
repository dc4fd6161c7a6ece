package tui

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jkaur/wastat/internal/chat"
)

// longFixture spreads messages over many minutes so the rendered
// report overflows the preview panel and scrolling is possible.
func longFixture() []chat.Record {
	msgs := make([]chat.Message, 0, 120)
	for i := 0; i < 120; i++ {
		msgs = append(msgs, chat.Message{
			Date:   "1/1/2024",
			Clock:  fmt.Sprintf("%02d:%02d", 9+i/60, i%60),
			Sender: "Alice",
			Text:   fmt.Sprintf("msg %d", i),
		})
	}
	return chat.Normalize(msgs)
}

func TestResizeKeepsScrollPosition(t *testing.T) {
	req := require.New(t)

	m := initialModel(longFixture(), chat.IngestStats{}, 100)

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = nm.(model)
	req.True(m.ready)

	m.preview.LineDown(5)
	req.Equal(5, m.preview.YOffset)

	nm, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = nm.(model)
	req.Equal(5, m.preview.YOffset)
}

func TestWindowSizeComputesReport(t *testing.T) {
	req := require.New(t)

	m := initialModel(longFixture(), chat.IngestStats{Lines: 120, Matched: 120}, 100)
	req.Nil(m.report)

	nm, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	m = nm.(model)
	req.NotNil(m.report)
	req.Len(m.report.Records, 120)
}
