package tracker

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"cloud.google.com/go/civil"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/streak"
)

// Stats is the quick-stats panel for one displayed month.
type Stats struct {
	Month civil.Date
	// CompletedDays counts distinct completed days in the month.
	CompletedDays int
	// ElapsedDays is how many days of the month have started by the
	// reference date: all of them for past months, none for future ones.
	ElapsedDays int
	// LoggedDays counts distinct days in the month with any entry.
	LoggedDays int
	// SuccessRate is CompletedDays/LoggedDays as a rounded percentage.
	SuccessRate int
	Streaks     streak.Result
}

// BuildStats computes the month panel. monthEntries are the entries inside
// month; completed are all completed entries regardless of month.
func BuildStats(monthEntries, completed []entry.Entry, month, ref civil.Date, opts ...streak.Option) Stats {
	first, last := day.MonthStart(month), day.MonthEnd(month)

	logged := make(map[civil.Date]bool)
	done := make(map[civil.Date]bool)
	for _, e := range monthEntries {
		if !day.Between(e.Date, first, last) {
			continue
		}
		logged[e.Date] = true
		if e.Completed {
			done[e.Date] = true
		}
	}

	s := Stats{
		Month:         first,
		CompletedDays: len(done),
		ElapsedDays:   elapsedDays(first, last, ref),
		LoggedDays:    len(logged),
		Streaks:       streak.FromEntries(completed, ref, opts...),
	}
	if s.LoggedDays > 0 {
		s.SuccessRate = int(math.Round(float64(s.CompletedDays) / float64(s.LoggedDays) * 100))
	}
	return s
}

func elapsedDays(first, last, ref civil.Date) int {
	switch {
	case ref.Before(first):
		return 0
	case ref.After(last):
		return last.Day
	default:
		return ref.Day
	}
}

// RecentActivity returns up to n completed entries, newest first, one per day.
func RecentActivity(entries []entry.Entry, n int) []entry.Entry {
	byDay := make(map[civil.Date]entry.Entry)
	for _, e := range entries {
		if !e.Completed {
			continue
		}
		if prev, ok := byDay[e.Date]; !ok || (prev.Notes == "" && e.Notes != "") {
			byDay[e.Date] = e
		}
	}

	out := make([]entry.Entry, 0, len(byDay))
	for _, e := range byDay {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// PrefillNotes returns the notes a check-in for ref should start from: the
// day's own notes if it has any, else the most recent non-blank notes from
// an earlier day.
func PrefillNotes(entries []entry.Entry, ref civil.Date) string {
	var (
		latest     string
		latestDate civil.Date
	)
	for _, e := range entries {
		if strings.TrimSpace(e.Notes) == "" {
			continue
		}
		if e.Date == ref {
			return e.Notes
		}
		if !e.Date.Before(ref) {
			continue
		}
		if latest == "" || e.Date.After(latestDate) {
			latest, latestDate = e.Notes, e.Date
		}
	}
	return latest
}

// Motivation returns the encouragement line shown under the streaks.
func Motivation(current int) string {
	if current > 0 {
		return fmt.Sprintf("Amazing! You're on a %d-day streak. Every day counts towards building lasting habits.", current)
	}
	return "Today is a perfect day to start fresh. Small consistent actions lead to big changes!"
}

// ShareText returns the message used to share the current streak.
func ShareText(current int) string {
	return fmt.Sprintf("I've reached a %d-day streak on Willpower Tracker! 🔥 Join me in building discipline.", current)
}
