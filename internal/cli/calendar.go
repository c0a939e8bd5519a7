package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/calendar"
	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/tracker"
)

const cellWidth = 5

var (
	cellCompletedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#22C55E")).Bold(true)
	cellMissedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444"))
	cellTodayStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C00")).Bold(true).Underline(true)
	cellFutureStyle    = lipgloss.NewStyle()
	cellOutsideStyle   = lipgloss.NewStyle().Faint(true)
	calendarTitleStyle = lipgloss.NewStyle().Bold(true)
)

var calendarCmd = LeafCommand{
	Use:     "calendar",
	Aliases: []string{"cal"},
	Short:   "Show the month calendar (interactive in a terminal)",
	Args:    cobra.NoArgs,
	StrFlags: []StringFlag{
		habitFlag,
		{Name: "month", Usage: "month to show: 2024-05, may, may 2024, next, prev (default: current)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		habitName, _ := cmd.Flags().GetString("habit")
		monthFlag, _ := cmd.Flags().GetString("month")
		return runCalendar(cmd, homeDir, habitName, monthFlag, isTerminal(cmd.OutOrStdout()), time.Now)
	},
}.Build()

func runCalendar(cmd *cobra.Command, homeDir, habitName, monthFlag string, interactive bool, nowFn func() time.Time) error {
	now := nowFn()
	month, err := day.ParseMonth(monthFlag, now)
	if err != nil {
		return err
	}

	s, err := openSession(homeDir, habitName)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	m, err := newCalendarModel(s, month, day.Today(now))
	if err != nil {
		return err
	}

	if !interactive {
		_, err := fmt.Fprint(cmd.OutOrStdout(), m.renderStatic())
		return err
	}
	return runCalendarProgram(cmd, m)
}

// renderGrid draws the weekday header and one line per week.
func renderGrid(grid calendar.Grid, weekStart time.Weekday) string {
	var b strings.Builder
	for _, wd := range calendar.Weekdays(weekStart) {
		b.WriteString(padCenter(wd.String()[:3], cellWidth))
	}
	b.WriteString("\n")

	for _, week := range grid.Weeks() {
		for _, c := range week {
			b.WriteString(renderCell(c))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func renderCell(c calendar.DayCell) string {
	marker := " "
	style := cellFutureStyle
	switch {
	case !c.InMonth:
		style = cellOutsideStyle
	case c.Completed:
		marker, style = "✓", cellCompletedStyle
	case c.Missed:
		marker, style = "✗", cellMissedStyle
	case c.IsToday:
		marker, style = "•", cellTodayStyle
	}
	if c.InMonth && c.IsToday {
		style = style.Underline(true)
	}
	return " " + style.Render(fmt.Sprintf("%2d%s", c.Date.Day, marker)) + " "
}

func renderLegend() string {
	return Silent("✓ completed   ✗ missed   • today")
}

func renderStatsLine(stats tracker.Stats) string {
	return Text(fmt.Sprintf("%d/%d days · %d%% success · current %s · best %s",
		stats.CompletedDays, stats.ElapsedDays, stats.SuccessRate,
		formatDays(stats.Streaks.Current), formatDays(stats.Streaks.Longest)))
}

func monthTitle(month civil.Date) string {
	return fmt.Sprintf("%s %d", month.Month, month.Year)
}

// padCenter centers s within width, truncating when s is longer.
func padCenter(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	left := (width - len(s)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(s)-left)
}
