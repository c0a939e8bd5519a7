package cli

import (
	"errors"
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/calendar"
	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/tracker"
)

type calendarKeyMap struct {
	Prev   key.Binding
	Next   key.Binding
	Today  key.Binding
	Toggle key.Binding
	Notes  key.Binding
	Quit   key.Binding
}

var calendarKeys = calendarKeyMap{
	Prev:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev month")),
	Next:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next month")),
	Today:  key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	Toggle: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "check in")),
	Notes:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
	Quit:   key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q", "quit")),
}

func (k calendarKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Prev, k.Next, k.Toggle, k.Notes, k.Today, k.Quit}
}

func (k calendarKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// calendarModel is the interactive month view. Only today's cell accepts
// edits; every other cell is read-only.
type calendarModel struct {
	s         *session
	month     civil.Date
	today     civil.Date
	grid      calendar.Grid
	stats     tracker.Stats
	notes     string // today's saved notes
	overlay   tea.Model
	help      help.Model
	footerMsg string
}

func newCalendarModel(s *session, month, today civil.Date) (calendarModel, error) {
	m := calendarModel{s: s, month: day.MonthStart(month), today: today, help: help.New()}
	return m.reload()
}

// reload re-reads the displayed month from the store and reclassifies it.
func (m calendarModel) reload() (calendarModel, error) {
	first, last := day.MonthStart(m.month), day.MonthEnd(m.month)
	start, end := calendar.GridBounds(first, last, m.s.weekStart())

	entries, err := m.s.store.Range(start, end)
	if err != nil {
		return m, err
	}
	m.grid = calendar.ClassifyMonth(m.month, entries, m.today, m.s.calendarOptions()...)

	m.stats, err = loadStats(m.s, m.month, m.today)
	if err != nil {
		return m, err
	}

	todayEntry, err := m.s.store.Get(m.today)
	switch {
	case err == nil:
		m.notes = todayEntry.Notes
	case errors.Is(err, entry.ErrNotFound):
		m.notes = ""
	default:
		return m, err
	}
	return m, nil
}

func (m calendarModel) Init() tea.Cmd {
	return nil
}

func (m calendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.overlay != nil {
		return m.updateOverlay(msg)
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, calendarKeys.Quit):
			return m, tea.Quit
		case key.Matches(msg, calendarKeys.Prev):
			return m.showMonth(day.AddMonths(m.month, -1))
		case key.Matches(msg, calendarKeys.Next):
			return m.showMonth(day.AddMonths(m.month, 1))
		case key.Matches(msg, calendarKeys.Today):
			return m.showMonth(m.today)
		case key.Matches(msg, calendarKeys.Toggle):
			return m.toggleToday()
		case key.Matches(msg, calendarKeys.Notes):
			if !m.todayVisible() {
				m.footerMsg = "only today can be edited"
				return m, nil
			}
			m.overlay = newNotesOverlay(m.s.habit.Name, m.today, m.notes)
			return m, nil
		}
	}
	return m, nil
}

func (m calendarModel) showMonth(month civil.Date) (tea.Model, tea.Cmd) {
	m.month = day.MonthStart(month)
	m.footerMsg = ""
	updated, err := m.reload()
	if err != nil {
		m.footerMsg = "error: " + err.Error()
		return m, nil
	}
	return updated, nil
}

// todayVisible reports whether the interactive cell is on screen.
func (m calendarModel) todayVisible() bool {
	c, ok := m.grid.Find(m.today)
	return ok && c.Interactive
}

func (m calendarModel) toggleToday() (tea.Model, tea.Cmd) {
	c, ok := m.grid.Find(m.today)
	if !ok || !c.Interactive {
		m.footerMsg = "only today can be edited"
		return m, nil
	}
	return m.saveToday(!c.Completed, m.notes)
}

func (m calendarModel) saveToday(completed bool, notes string) (tea.Model, tea.Cmd) {
	if _, err := m.s.store.Save(entry.Entry{Date: m.today, Completed: completed, Notes: notes}); err != nil {
		m.footerMsg = "error: " + err.Error()
		return m, nil
	}
	logger.Debug("today updated from calendar",
		zap.String("habit", m.s.habit.Slug),
		zap.Bool("completed", completed))

	updated, err := m.reload()
	if err != nil {
		m.footerMsg = "error: " + err.Error()
		return m, nil
	}
	if completed {
		updated.footerMsg = fmt.Sprintf("checked in · %s streak", formatDays(updated.stats.Streaks.Current))
	} else {
		updated.footerMsg = "check-in removed"
	}
	return updated, nil
}

// updateOverlay delegates input to the active overlay and handles overlay results.
func (m calendarModel) updateOverlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(overlayResult); ok {
		return m.handleOverlayResult(result)
	}

	updated, cmd := m.overlay.Update(msg)
	m.overlay = updated
	return m, cmd
}

func (m calendarModel) handleOverlayResult(result overlayResult) (tea.Model, tea.Cmd) {
	notes, _ := m.overlay.(*notesOverlay)
	m.overlay = nil

	if result.action != "save" || notes == nil {
		m.footerMsg = ""
		return m, nil
	}
	// Saving notes counts as checking in.
	return m.saveToday(true, strings.TrimSpace(notes.value))
}

func (m calendarModel) View() string {
	var b strings.Builder
	b.WriteString(calendarTitleStyle.Render(fmt.Sprintf("%s · %s", m.s.habit.Name, monthTitle(m.month))))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(m.grid, m.s.weekStart()))
	b.WriteString("\n")
	b.WriteString(renderLegend())
	b.WriteString("\n")
	b.WriteString(renderStatsLine(m.stats))
	b.WriteString("\n")

	if m.overlay != nil {
		b.WriteString("\n")
		b.WriteString(m.overlay.View())
		b.WriteString("\n")
		return b.String()
	}

	if m.todayVisible() && m.notes != "" {
		b.WriteString("\n")
		b.WriteString(Silent("Today: " + m.notes))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(calendarKeys))
	if m.footerMsg != "" {
		b.WriteString("\n")
		b.WriteString(Warning(m.footerMsg))
	}
	b.WriteString("\n")
	return b.String()
}

// renderStatic prints the month without key hints for non-terminal output.
func (m calendarModel) renderStatic() string {
	var b strings.Builder
	b.WriteString(calendarTitleStyle.Render(fmt.Sprintf("%s · %s", m.s.habit.Name, monthTitle(m.month))))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(m.grid, m.s.weekStart()))
	b.WriteString("\n")
	b.WriteString(renderLegend())
	b.WriteString("\n")
	b.WriteString(renderStatsLine(m.stats))
	b.WriteString("\n")
	return b.String()
}

func runCalendarProgram(cmd *cobra.Command, m calendarModel) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(cmd.OutOrStdout()))
	_, err := p.Run()
	return err
}
