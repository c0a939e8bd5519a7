package tracker

import (
	"fmt"

	"cloud.google.com/go/civil"

	"github.com/Flyrell/willpower/internal/calendar"
	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/streak"
)

// ExportDay is a single in-month day of the journal.
type ExportDay struct {
	Date      civil.Date `json:"date"`
	Completed bool       `json:"completed"`
	Missed    bool       `json:"missed"`
	Notes     string     `json:"notes,omitempty"`
}

// ExportMonth holds the days of one month with its totals.
type ExportMonth struct {
	Month     civil.Date  `json:"month"`
	Days      []ExportDay `json:"days"`
	Completed int         `json:"completed"`
	Missed    int         `json:"missed"`
}

// ExportData is the journal for a habit over a range of months.
type ExportData struct {
	HabitName string        `json:"habit"`
	Generated civil.Date    `json:"generated"`
	Months    []ExportMonth `json:"months"`
	Current   int           `json:"current_streak"`
	Longest   int           `json:"longest_streak"`
	Completed int           `json:"completed"`
}

// BuildExportData builds the journal for every month from the month of from
// to the month of to, inclusive. Day states follow the calendar classifier
// with ref as today. Streaks are computed over all of entries.
func BuildExportData(habitName string, entries []entry.Entry, from, to, ref civil.Date, opts ...streak.Option) (ExportData, error) {
	if to.Before(day.MonthStart(from)) {
		return ExportData{}, fmt.Errorf("export range ends (%s) before it starts (%s)", day.MonthStart(to), day.MonthStart(from))
	}

	months, err := day.Months(from, to)
	if err != nil {
		return ExportData{}, fmt.Errorf("expanding months: %w", err)
	}

	notes := notesByDate(entries)
	res := streak.FromEntries(entries, ref, opts...)

	data := ExportData{
		HabitName: habitName,
		Generated: ref,
		Current:   res.Current,
		Longest:   res.Longest,
	}

	for _, m := range months {
		em := ExportMonth{Month: m}
		for _, cell := range calendar.ClassifyMonth(m, entries, ref) {
			if !cell.InMonth {
				continue
			}
			em.Days = append(em.Days, ExportDay{
				Date:      cell.Date,
				Completed: cell.Completed,
				Missed:    cell.Missed,
				Notes:     notes[cell.Date],
			})
			if cell.Completed {
				em.Completed++
			}
			if cell.Missed {
				em.Missed++
			}
		}
		data.Completed += em.Completed
		data.Months = append(data.Months, em)
	}

	return data, nil
}

// notesByDate keeps one note per date, preferring a completed record's.
func notesByDate(entries []entry.Entry) map[civil.Date]string {
	notes := make(map[civil.Date]string)
	completed := make(map[civil.Date]bool)
	for _, e := range entries {
		if e.Notes == "" {
			continue
		}
		if _, ok := notes[e.Date]; ok && (completed[e.Date] || !e.Completed) {
			continue
		}
		notes[e.Date] = e.Notes
		completed[e.Date] = e.Completed
	}
	return notes
}
