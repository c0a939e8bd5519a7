package cli

import (
	"fmt"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/config"
	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/habit"
	"github.com/Flyrell/willpower/internal/streak"
)

var habitListCmd = LeafCommand{
	Use:   "list",
	Short: "List all habits with their current streaks",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runHabitList(cmd, homeDir, time.Now)
	},
}.Build()

func runHabitList(cmd *cobra.Command, homeDir string, nowFn func() time.Time) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}
	reg, err := habit.ReadRegistry(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	if len(reg.Habits) == 0 {
		_, _ = fmt.Fprintln(w, Silent("No habits found."))
		return nil
	}

	today := day.Today(nowFn())
	var opts []streak.Option
	if cfg.StreakMaxWalk > 0 {
		opts = append(opts, streak.WithMaxWalk(cfg.StreakMaxWalk))
	}

	defaultID := ""
	if d := habit.Resolve(reg, cfg.DefaultHabit); cfg.DefaultHabit != "" && d != nil {
		defaultID = d.ID
	}

	for _, h := range reg.Habits {
		res, err := habitStreak(cfg.Store, homeDir, h.Slug, today, opts)
		if err != nil {
			return err
		}

		marker := ""
		if h.ID == defaultID {
			marker = Silent(" (default)")
		}
		_, _ = fmt.Fprintf(w, "%s  %s%s  %s\n", Silent(h.ID), Primary(h.Name), marker, Text(formatDays(res.Current)+" streak"))
	}
	return nil
}

func habitStreak(backend, homeDir, slug string, today civil.Date, opts []streak.Option) (streak.Result, error) {
	store, err := entry.Open(backend, homeDir, slug, logger)
	if err != nil {
		return streak.Result{}, err
	}
	defer func() { _ = store.Close() }()

	completed, err := store.Completed()
	if err != nil {
		return streak.Result{}, err
	}
	return streak.FromEntries(completed, today, opts...), nil
}

// formatDays renders a day count as "1 day" or "N days".
func formatDays(n int) string {
	if n == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", n)
}
