package cli

import (
	"fmt"
	"strings"

	"cloud.google.com/go/civil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// overlayResult is sent when an overlay completes.
type overlayResult struct {
	action string // "cancel", "save"
}

func overlayResultMsg(action string) tea.Cmd {
	return func() tea.Msg {
		return overlayResult{action: action}
	}
}

var (
	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 2).
			Width(50)
	overlayTitleStyle = lipgloss.NewStyle().Bold(true)
	overlayMutedStyle = lipgloss.NewStyle().Faint(true)
)

// notesOverlay edits today's notes. ctrl+s or enter on an empty line saves.
type notesOverlay struct {
	title string
	value string
}

func newNotesOverlay(habitName string, today civil.Date, notes string) *notesOverlay {
	return &notesOverlay{
		title: fmt.Sprintf("%s · %s", habitName, today),
		value: notes,
	}
}

func (o *notesOverlay) Init() tea.Cmd { return nil }

func (o *notesOverlay) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, nil
	}

	switch key.Type {
	case tea.KeyEsc:
		return o, overlayResultMsg("cancel")
	case tea.KeyCtrlS:
		return o, overlayResultMsg("save")
	case tea.KeyEnter:
		if o.value == "" || strings.HasSuffix(o.value, "\n") {
			o.value = strings.TrimSuffix(o.value, "\n")
			return o, overlayResultMsg("save")
		}
		o.value += "\n"
	case tea.KeyBackspace:
		if r := []rune(o.value); len(r) > 0 {
			o.value = string(r[:len(r)-1])
		}
	case tea.KeySpace:
		o.value += " "
	case tea.KeyRunes:
		o.value += string(key.Runes)
	}
	return o, nil
}

func (o *notesOverlay) View() string {
	var b strings.Builder
	b.WriteString(overlayTitleStyle.Render(o.title))
	b.WriteString("\n\n")
	b.WriteString(o.value)
	b.WriteString("█\n\n")
	b.WriteString(overlayMutedStyle.Render("ctrl+s save  |  enter twice save  |  esc cancel"))
	return overlayBoxStyle.Render(b.String())
}
