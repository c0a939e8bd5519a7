package cli

import (
	"errors"
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/tracker"
)

var statusCmd = LeafCommand{
	Use:   "status",
	Short: "Show streaks, this month's progress and today's quote",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		habitFlag,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		habitName, _ := cmd.Flags().GetString("habit")
		return runStatus(cmd, homeDir, habitName, time.Now)
	},
}.Build()

func runStatus(cmd *cobra.Command, homeDir, habitName string, nowFn func() time.Time) error {
	s, err := openSession(homeDir, habitName)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	today := day.Today(nowFn())
	stats, err := loadStats(s, today, today)
	if err != nil {
		return err
	}

	todayEntry, err := s.store.Get(today)
	if err != nil && !errors.Is(err, entry.ErrNotFound) {
		return err
	}

	w := cmd.OutOrStdout()

	_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("Habit:"), Primary(s.habit.Name))
	if todayEntry.Completed {
		_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("Today:"), Success("✓ completed"))
	} else {
		_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("Today:"), Warning("○ not yet"))
	}

	current := formatDays(stats.Streaks.Current)
	if stats.Streaks.Truncated {
		current += Silent(fmt.Sprintf(" (capped at %d)", s.cfg.StreakMaxWalk))
	}
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Current:"), Primary(current))
	_, _ = fmt.Fprintf(w, "%s  %s\n", Silent("Longest:"), Text(formatDays(stats.Streaks.Longest)))
	_, _ = fmt.Fprintf(w, "%s    %s\n", Silent("Month:"), Text(fmt.Sprintf("%d/%d days completed · %d%% success rate",
		stats.CompletedDays, stats.ElapsedDays, stats.SuccessRate)))

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, Text(tracker.Motivation(stats.Streaks.Current)))

	q := tracker.QuoteOfTheDay(today)
	_, _ = fmt.Fprintf(w, "\n%s\n%s\n", Info(fmt.Sprintf("“%s”", q.Text)), Silent("— "+q.Author))
	return nil
}

// loadStats reads the month around anchor and all completions for the panel.
func loadStats(s *session, anchor, today civil.Date) (tracker.Stats, error) {
	monthEntries, err := s.store.Range(day.MonthStart(anchor), day.MonthEnd(anchor))
	if err != nil {
		return tracker.Stats{}, err
	}
	completed, err := s.store.Completed()
	if err != nil {
		return tracker.Stats{}, err
	}
	return tracker.BuildStats(monthEntries, completed, anchor, today, s.streakOptions()...), nil
}
