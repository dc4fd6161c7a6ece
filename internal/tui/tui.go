// Package tui is the interactive dashboard: a participant/date/keyword
// filter panel on the left and the rendered report on the right. Every
// filter change re-runs the analysis pipeline over the already-parsed
// records; runs are synchronous and short.
package tui

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jkaur/wastat/internal/analyze"
	"github.com/jkaur/wastat/internal/chat"
	"github.com/jkaur/wastat/internal/render"
)

const debounceDelay = 200 * time.Millisecond

type focusArea int

const (
	focusList focusArea = iota
	focusKeyword
)

// debounceTickMsg fires after typing pauses in the keyword input.
type debounceTickMsg struct {
	keyword string
}

type model struct {
	records      []chat.Record
	stats        chat.IngestStats
	participants []string
	selected     []bool
	dates        []time.Time // distinct calendar days, ascending
	dateIdx      int         // -1 = all dates

	cursor       int
	focus        focusArea
	keyword      string // applied keyword (post-debounce)
	keywordInput textinput.Model
	showMessages bool

	report   *analyze.Report
	preview  viewport.Model
	width    int
	height   int
	ready    bool
	quitting bool
	copied   bool

	maxMinuteRows int
}

func initialModel(records []chat.Record, stats chat.IngestStats, maxMinuteRows int) model {
	ti := textinput.New()
	ti.Placeholder = "Keyword..."
	ti.Prompt = "/ "
	ti.PromptStyle = styleInputPrompt
	ti.TextStyle = styleInput
	ti.CharLimit = 256

	participants := recordParticipants(records)
	selected := make([]bool, len(participants))
	for i := range selected {
		selected[i] = true // default: everyone, like the upload widget
	}

	return model{
		records:       records,
		stats:         stats,
		participants:  participants,
		selected:      selected,
		dates:         distinctDates(records),
		dateIdx:       -1,
		keywordInput:  ti,
		preview:       viewport.New(0, 0),
		maxMinuteRows: maxMinuteRows,
	}
}

// Run starts the dashboard and blocks until it exits.
func Run(records []chat.Record, stats chat.IngestStats, maxMinuteRows int) error {
	m := initialModel(records, stats, maxMinuteRows)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func recordParticipants(records []chat.Record) []string {
	msgs := make([]chat.Message, len(records))
	for i, r := range records {
		msgs[i] = r.Message
	}
	return chat.Participants(msgs)
}

func distinctDates(records []chat.Record) []time.Time {
	seen := make(map[time.Time]struct{})
	var dates []time.Time
	for _, r := range records {
		if !r.Valid {
			continue
		}
		day := r.Timestamp.Truncate(24 * time.Hour)
		if _, ok := seen[day]; ok {
			continue
		}
		seen[day] = struct{}{}
		dates = append(dates, day)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })
	return dates
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// criteria builds the filter input from the current widget state. A
// deselected-everything list is an explicit empty (non-nil) slice so
// the pipeline yields the empty result rather than "no filter".
func (m model) criteria() analyze.Criteria {
	selected := make([]string, 0, len(m.participants))
	for i, p := range m.participants {
		if m.selected[i] {
			selected = append(selected, p)
		}
	}
	c := analyze.Criteria{Participants: selected, Keyword: m.keyword}
	if m.dateIdx >= 0 && m.dateIdx < len(m.dates) {
		d := m.dates[m.dateIdx]
		c.Date = &d
	}
	return c
}

func (m *model) recompute() {
	c := m.criteria()
	filtered := analyze.Filter(m.records, c)
	m.report = &analyze.Report{
		Participants: c.Participants,
		Records:      filtered,
		Summaries:    analyze.Summarize(filtered, c.Participants),
		HourCounts:   analyze.ByHour(filtered),
		MinuteCounts: analyze.ByMinute(filtered),
		Ingest:       m.stats,
	}
	m.preview.SetContent(render.Report(m.report, render.Options{
		Width:         m.previewWidth(),
		MaxMinuteRows: m.maxMinuteRows,
		ShowMessages:  m.showMessages,
	}))
	m.copied = false
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		// keep the viewport (and its scroll position), just resize it
		m.preview.Width = m.previewWidth()
		m.preview.Height = m.panelHeight()
		m.recompute()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, keys.Focus):
			if m.focus == focusList {
				m.focus = focusKeyword
				m.keywordInput.Focus()
				cmds = append(cmds, textinput.Blink)
			} else {
				m.focus = focusList
				m.keywordInput.Blur()
			}
			return m, tea.Batch(cmds...)

		case key.Matches(msg, keys.ScrollUp):
			m.preview.LineUp(m.panelHeight() / 2)
			return m, nil

		case key.Matches(msg, keys.ScrollDn):
			m.preview.LineDown(m.panelHeight() / 2)
			return m, nil
		}

		if m.focus == focusKeyword {
			var tiCmd tea.Cmd
			m.keywordInput, tiCmd = m.keywordInput.Update(msg)
			cmds = append(cmds, tiCmd)

			if v := m.keywordInput.Value(); v != m.keyword {
				cmds = append(cmds, scheduleDebounce(v))
			}
			return m, tea.Batch(cmds...)
		}

		switch {
		case key.Matches(msg, keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}

		case key.Matches(msg, keys.Down):
			if m.cursor < len(m.participants)-1 {
				m.cursor++
			}

		case key.Matches(msg, keys.Toggle):
			if m.cursor < len(m.selected) {
				m.selected[m.cursor] = !m.selected[m.cursor]
				m.recompute()
			}

		case key.Matches(msg, keys.All):
			all := true
			for _, s := range m.selected {
				if !s {
					all = false
					break
				}
			}
			for i := range m.selected {
				m.selected[i] = !all
			}
			m.recompute()

		case key.Matches(msg, keys.Date):
			m.dateIdx++
			if m.dateIdx >= len(m.dates) {
				m.dateIdx = -1
			}
			m.recompute()

		case key.Matches(msg, keys.Messages):
			m.showMessages = !m.showMessages
			m.recompute()

		case key.Matches(msg, keys.Copy):
			if m.report != nil {
				var plain strings.Builder
				render.SummaryTable(&plain, m.report.Summaries)
				if clipboard.WriteAll(plain.String()) == nil {
					m.copied = true
				}
			}
		}
		return m, nil

	case debounceTickMsg:
		if msg.keyword == m.keywordInput.Value() && msg.keyword != m.keyword {
			m.keyword = msg.keyword
			m.recompute()
		}
		return m, nil
	}

	return m, tea.Batch(cmds...)
}

func scheduleDebounce(keyword string) tea.Cmd {
	return tea.Tick(debounceDelay, func(time.Time) tea.Msg {
		return debounceTickMsg{keyword: keyword}
	})
}

func (m model) View() string {
	if m.quitting || !m.ready {
		return ""
	}
	if m.report == nil {
		return "loading..."
	}

	listW := m.listWidth()
	previewW := m.previewWidth()
	panelH := m.panelHeight()

	inputRow := m.keywordInput.View()

	sidebar := m.renderSidebar(listW, panelH)
	sidebarStyle := stylePanelBorder
	previewStyle := styleActiveBorder
	if m.focus == focusList {
		sidebarStyle, previewStyle = styleActiveBorder, stylePanelBorder
	}

	left := sidebarStyle.Width(listW).Height(panelH).Render(sidebar)

	m.preview.Width = previewW
	m.preview.Height = panelH
	right := previewStyle.Width(previewW).Height(panelH).Render(m.preview.View())

	panels := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	return lipgloss.JoinVertical(lipgloss.Left, inputRow, panels, m.statusBar())
}

// renderSidebar draws the participant checklist and the date selector.
func (m model) renderSidebar(width, height int) string {
	var lines []string

	lines = append(lines, styleSectionTitle.Render("Participants"))
	for i, p := range m.participants {
		mark := "[ ]"
		if m.selected[i] {
			mark = "[x]"
		}
		line := fmt.Sprintf("%s %s", mark, p)
		if runewidth.StringWidth(line) > width-2 {
			line = runewidth.Truncate(line, width-2, "…")
		}
		if i == m.cursor && m.focus == focusList {
			line = styleSelected.Render("> " + line)
		} else {
			line = styleNormal.Render("  " + line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, styleSectionTitle.Render("Date"))
	if m.dateIdx >= 0 && m.dateIdx < len(m.dates) {
		lines = append(lines, styleNormal.Render("  "+m.dates[m.dateIdx].Format("02/01/2006")))
	} else {
		lines = append(lines, styleDimmed.Render("  all dates"))
	}

	lines = append(lines, "")
	lines = append(lines, styleDimmed.Render(m.stats.String()))

	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines[:min(len(lines), height)], "\n")
}

func (m model) statusBar() string {
	parts := []string{
		fmt.Sprintf("%d messages", len(m.report.Records)),
		"tab focus", "space toggle", "a all/none", "d date", "m messages", "y copy", "esc quit",
	}
	s := strings.Join(parts, " | ")
	if m.copied {
		s += " | copied!"
	}
	return styleStatusBar.Render(s)
}

func (m model) listWidth() int {
	if m.width <= 0 {
		return 30
	}
	w := m.width*30/100 - 4
	if w < 18 {
		w = 18
	}
	return w
}

func (m model) previewWidth() int {
	if m.width <= 0 {
		return 60
	}
	w := m.width*70/100 - 4
	if w < 20 {
		w = 20
	}
	return w
}

func (m model) panelHeight() int {
	if m.height <= 0 {
		return 20
	}
	// input row (1) + status bar (1) + borders (4)
	h := m.height - 6
	if h < 5 {
		h = 5
	}
	return h
}
