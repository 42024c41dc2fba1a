package view

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

// Timeframe is a predefined or custom purchase date range.
type Timeframe int

const (
	TimeframeAll Timeframe = iota
	TimeframeThisMonth
	TimeframeLastMonth
	TimeframeThisSeason
	TimeframeLastSeason
	TimeframeCustom
)

func (t Timeframe) String() string {
	switch t {
	case TimeframeAll:
		return "All Time"
	case TimeframeThisMonth:
		return "This Month"
	case TimeframeLastMonth:
		return "Last Month"
	case TimeframeThisSeason:
		return "This Season"
	case TimeframeLastSeason:
		return "Last Season"
	case TimeframeCustom:
		return "Custom Range"
	}

	return "Unknown"
}

// seasonStartMonth is when club seasons roll over.
const seasonStartMonth = time.August

// dateRange resolves tf relative to now. Both bounds are nil for
// TimeframeAll and TimeframeCustom.
func dateRange(tf Timeframe, now time.Time) (start, end *time.Time) {
	loc := now.Location()
	month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)

	season := time.Date(now.Year(), seasonStartMonth, 1, 0, 0, 0, 0, loc)
	if now.Before(season) {
		season = season.AddDate(-1, 0, 0)
	}

	switch tf {
	case TimeframeThisMonth:
		return new(month), new(now)
	case TimeframeLastMonth:
		return new(month.AddDate(0, -1, 0)), new(month.AddDate(0, 0, -1))
	case TimeframeThisSeason:
		return new(season), new(now)
	case TimeframeLastSeason:
		return new(season.AddDate(-1, 0, 0)), new(season.AddDate(0, 0, -1))
	}

	return nil, nil
}

// TimeframeSelectedMsg carries the chosen bounds. The end bound is a
// calendar day; filtering includes the whole of it.
type TimeframeSelectedMsg struct {
	Label string
	Start *time.Time
	End   *time.Time
}

type timeframeState int

const (
	timeframeStateSelect timeframeState = iota
	timeframeStateCustom
)

// TimeframePicker is a reusable component for selecting a date range.
type TimeframePicker struct {
	state    timeframeState
	selected Timeframe

	startInput textinput.Model
	endInput   textinput.Model
	focusIndex int

	err error
}

func NewTimeframePicker() TimeframePicker {
	si := textinput.New()
	si.Placeholder = "YYYY-MM-DD"
	si.CharLimit = 10
	si.Width = 12
	si.Prompt = "From: "

	ei := textinput.New()
	ei.Placeholder = "YYYY-MM-DD"
	ei.CharLimit = 10
	ei.Width = 12
	ei.Prompt = "To:   "

	return TimeframePicker{
		state:      timeframeStateSelect,
		startInput: si,
		endInput:   ei,
	}
}

func (m TimeframePicker) Update(msg tea.Msg) (TimeframePicker, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.state == timeframeStateSelect {
			return m.updateSelect(msg)
		}

		return m.updateCustom(msg)
	}

	return m, nil
}

func (m TimeframePicker) updateSelect(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.Type {
	case tea.KeyUp:
		if m.selected > TimeframeAll {
			m.selected--
		}
	case tea.KeyDown:
		if m.selected < TimeframeCustom {
			m.selected++
		}
	case tea.KeyEnter:
		if m.selected == TimeframeCustom {
			m.state = timeframeStateCustom
			m.focusIndex = 0
			m.startInput.Focus()

			return m, textinput.Blink
		}

		start, end := dateRange(m.selected, time.Now())
		label := m.selected.String()

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Label: label, Start: start, End: end}
		}
	}

	return m, nil
}

func (m TimeframePicker) updateCustom(msg tea.KeyMsg) (TimeframePicker, tea.Cmd) {
	switch msg.String() {
	case "tab", "shift+tab":
		m.focusIndex = (m.focusIndex + 1) % 2
		m.startInput.Blur()
		m.endInput.Blur()

		if m.focusIndex == 0 {
			m.startInput.Focus()
		} else {
			m.endInput.Focus()
		}

		return m, textinput.Blink

	case "enter":
		start, end, err := parseCustomRange(m.startInput.Value(), m.endInput.Value())
		if err != nil {
			m.err = err
			return m, nil
		}

		m.err = nil
		label := fmt.Sprintf("%s to %s", orDash(start), orDash(end))

		return m, func() tea.Msg {
			return TimeframeSelectedMsg{Label: label, Start: start, End: end}
		}

	case "esc":
		m.state = timeframeStateSelect
		m.err = nil

		return m, nil
	}

	var cmd tea.Cmd
	if m.focusIndex == 0 {
		m.startInput, cmd = m.startInput.Update(msg)
	} else {
		m.endInput, cmd = m.endInput.Update(msg)
	}

	return m, cmd
}

// parseCustomRange reads optional day bounds. An empty bound is open.
func parseCustomRange(from, to string) (*time.Time, *time.Time, error) {
	var start, end *time.Time

	if s := strings.TrimSpace(from); s != "" {
		t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
		if err != nil {
			return nil, nil, errors.New("invalid start date (YYYY-MM-DD)")
		}

		start = &t
	}

	if s := strings.TrimSpace(to); s != "" {
		t, err := time.ParseInLocation(time.DateOnly, s, time.Local)
		if err != nil {
			return nil, nil, errors.New("invalid end date (YYYY-MM-DD)")
		}

		end = &t
	}

	if start != nil && end != nil && start.After(transaction.EndOfDay(*end)) {
		return nil, nil, errors.New("start date is after end date")
	}

	return start, end, nil
}

func orDash(t *time.Time) string {
	if t == nil {
		return "…"
	}

	return FormatDate(*t)
}

func (m TimeframePicker) View() string {
	var sb strings.Builder

	if m.state == timeframeStateCustom {
		fmt.Fprintf(&sb, "Custom range (leave blank for open):\n\n%s\n%s\n\n(Enter to confirm, Tab to switch, Esc to back)",
			m.startInput.View(), m.endInput.View())
	} else {
		sb.WriteString("Select timeframe:\n\n")

		for tf := TimeframeAll; tf <= TimeframeCustom; tf++ {
			cursor := " "
			if m.selected == tf {
				cursor = ">"
			}

			fmt.Fprintf(&sb, "%s %s\n", cursor, tf)
		}

		sb.WriteString("\n(Enter to select, Esc to back)")
	}

	if m.err != nil {
		sb.WriteString("\n\n" + errorStyle("Error: "+m.err.Error()))
	}

	return sb.String()
}

// IsSelecting reports whether the picker is on the preset list.
func (m TimeframePicker) IsSelecting() bool {
	return m.state == timeframeStateSelect
}

// Reset returns the picker to its initial selection state.
func (m *TimeframePicker) Reset() {
	m.state = timeframeStateSelect
	m.selected = TimeframeAll
	m.err = nil
	m.startInput.SetValue("")
	m.endInput.SetValue("")
}
