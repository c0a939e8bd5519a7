package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/streak"
	"github.com/Flyrell/willpower/internal/tracker"
)

var checkCmd = LeafCommand{
	Use:     "check [NOTES]",
	Aliases: []string{"done"},
	Short:   "Mark today as completed, optionally with notes",
	Args:    cobra.MaximumNArgs(1),
	StrFlags: []StringFlag{
		habitFlag,
		{Name: "date", Usage: "day to check in (only today is accepted)"},
	},
	BoolFlags: []BoolFlag{
		{Name: "undo", Usage: "mark today as not completed"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		habitName, _ := cmd.Flags().GetString("habit")
		dateFlag, _ := cmd.Flags().GetString("date")
		undo, _ := cmd.Flags().GetBool("undo")

		var notes *string
		if len(args) > 0 {
			notes = &args[0]
		}

		return runCheck(cmd, homeDir, habitName, dateFlag, notes, undo, NewPromptKit(), isTerminal(cmd.OutOrStdout()), time.Now)
	},
}.Build()

// runCheck records today's entry. A nil notes keeps the stored notes, or asks
// for them when interactive is set.
func runCheck(
	cmd *cobra.Command,
	homeDir, habitName, dateFlag string,
	notes *string,
	undo bool,
	pk PromptKit,
	interactive bool,
	nowFn func() time.Time,
) error {
	now := nowFn()
	today := day.Today(now)

	if dateFlag != "" {
		d, err := day.ParseDate(dateFlag, now)
		if err != nil {
			return err
		}
		if d != today {
			return fmt.Errorf("only today can be edited (got %s, today is %s)", d, today)
		}
	}

	s, err := openSession(homeDir, habitName)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	existing, err := s.store.Get(today)
	found := err == nil
	if err != nil && !errors.Is(err, entry.ErrNotFound) {
		return err
	}

	w := cmd.OutOrStdout()

	if undo {
		if !found || !existing.Completed {
			_, _ = fmt.Fprintf(w, "%s\n", Silent(fmt.Sprintf("%s is not checked in for today", s.habit.Name)))
			return nil
		}
		existing.Completed = false
		if _, err := s.store.Save(existing); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(w, "%s\n", Text(fmt.Sprintf("'%s' unchecked for %s", Primary(s.habit.Name), today)))
		return nil
	}

	e := entry.Entry{Date: today, Completed: true}
	if found {
		e = existing
		e.Completed = true
	}

	switch {
	case notes != nil:
		e.Notes = strings.TrimSpace(*notes)
	case interactive:
		all, err := s.store.All()
		if err != nil {
			return err
		}
		text, err := pk.Text(fmt.Sprintf("%s · %s", s.habit.Name, today), tracker.PrefillNotes(all, today))
		if err != nil {
			return err
		}
		e.Notes = strings.TrimSpace(text)
	}

	saved, err := s.store.Save(e)
	if err != nil {
		return err
	}
	logger.Debug("checked in", zap.String("habit", s.habit.Slug), zap.String("date", saved.Date.String()))

	completed, err := s.store.Completed()
	if err != nil {
		return err
	}
	res := streak.FromEntries(completed, today, s.streakOptions()...)

	_, _ = fmt.Fprintf(w, "%s %s\n",
		Success("✓"),
		Text(fmt.Sprintf("'%s' checked in for %s · %s streak", Primary(s.habit.Name), today, formatDays(res.Current))))
	return nil
}
