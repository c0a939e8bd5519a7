package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/tracker"
)

var historyCmd = LeafCommand{
	Use:   "history",
	Short: "Show recent check-ins with their notes",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		habitFlag,
	},
	IntFlags: []IntFlag{
		{Name: "limit", Usage: "maximum number of check-ins to show (0 = all)", Default: 10},
		{Name: "days", Usage: "show a day-by-day timeline of the last N days instead"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		habitName, _ := cmd.Flags().GetString("habit")
		limit, _ := cmd.Flags().GetInt("limit")
		days, _ := cmd.Flags().GetInt("days")
		if limit < 0 {
			return fmt.Errorf("--limit must be 0 or positive")
		}
		if days < 0 {
			return fmt.Errorf("--days must be 0 or positive")
		}

		return runHistory(cmd, homeDir, habitName, limit, days, time.Now)
	},
}.Build()

func runHistory(cmd *cobra.Command, homeDir, habitName string, limit, days int, nowFn func() time.Time) error {
	s, err := openSession(homeDir, habitName)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	today := day.Today(nowFn())
	if days > 0 {
		return printTimeline(cmd, s, today, days)
	}

	completed, err := s.store.Completed()
	if err != nil {
		return err
	}

	n := limit
	if n == 0 {
		n = -1
	}
	recent := tracker.RecentActivity(completed, n)

	w := cmd.OutOrStdout()
	if len(recent) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No check-ins yet."))
		return nil
	}

	for _, e := range recent {
		notes := strings.TrimSpace(e.Notes)
		if notes == "" {
			notes = Silent("(no notes)")
		} else {
			notes = Text(firstLine(notes))
		}
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Success("✓"), Primary(formatEntryDate(e)), notes)
	}
	return nil
}

// printTimeline lists each of the last n days ending today, oldest first.
func printTimeline(cmd *cobra.Command, s *session, today civil.Date, n int) error {
	from := today.AddDays(-(n - 1))
	dates, err := day.Days(from, today)
	if err != nil {
		return err
	}

	entries, err := s.store.Range(from, today)
	if err != nil {
		return err
	}
	done := entry.CompletedSet(entries)

	w := cmd.OutOrStdout()
	for _, d := range dates {
		var mark string
		switch {
		case done[d]:
			mark = Success("✓")
		case d == today:
			mark = Warning("•")
		default:
			mark = Error("✗")
		}
		_, _ = fmt.Fprintf(w, "%s  %s %s\n", mark, Text(d.String()), Silent(day.Weekday(d).String()[:3]))
	}
	return nil
}

func formatEntryDate(e entry.Entry) string {
	return fmt.Sprintf("%s %s", e.Date, day.Weekday(e.Date).String()[:3])
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i] + " …"
	}
	return s
}
