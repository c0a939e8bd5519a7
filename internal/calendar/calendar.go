// Package calendar classifies the days of a displayed month grid.
package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
)

// DayCell is the render-ready state of one calendar grid slot.
type DayCell struct {
	Date    civil.Date
	InMonth bool

	// Exactly one of IsToday, IsPast and IsFuture is set.
	IsToday  bool
	IsPast   bool
	IsFuture bool

	Completed bool
	// Missed marks an in-month past day without a completion.
	Missed bool
	// Interactive marks the only editable cell: today, inside the month.
	Interactive bool
}

// Grid is a month laid out in whole weeks.
type Grid []DayCell

type options struct {
	weekStart time.Weekday
}

// Option configures ClassifyMonth.
type Option func(*options)

// WithWeekStart sets the first column of the grid. Defaults to Sunday.
func WithWeekStart(wd time.Weekday) Option {
	return func(o *options) {
		o.weekStart = wd
	}
}

// ClassifyMonth builds the grid for anchor's month as seen on ref. The grid
// starts on the first day of the week holding the 1st and ends on the last
// day of the week holding the month's last day, so its length is always a
// multiple of 7. Entries may contain duplicates for a day; any completed
// record marks the day completed.
//
// It panics if anchor is not a valid date.
func ClassifyMonth(anchor civil.Date, entries []entry.Entry, ref civil.Date, opts ...Option) Grid {
	if !anchor.IsValid() {
		panic(fmt.Sprintf("calendar: invalid month anchor %+v", anchor))
	}
	o := options{weekStart: time.Sunday}
	for _, opt := range opts {
		opt(&o)
	}

	first, last := day.MonthStart(anchor), day.MonthEnd(anchor)
	start, end := GridBounds(first, last, o.weekStart)
	completed := entry.CompletedSet(entries)

	grid := make(Grid, 0, end.DaysSince(start)+1)
	for d := start; !d.After(end); d = d.AddDays(1) {
		c := DayCell{
			Date:      d,
			InMonth:   day.SameMonth(d, first),
			IsToday:   d == ref,
			IsPast:    d.Before(ref),
			IsFuture:  d.After(ref),
			Completed: completed[d],
		}
		c.Missed = c.InMonth && c.IsPast && !c.IsToday && !c.Completed
		c.Interactive = c.InMonth && c.IsToday
		grid = append(grid, c)
	}
	return grid
}

// GridBounds widens [first, last] to whole weeks starting on weekStart.
func GridBounds(first, last civil.Date, weekStart time.Weekday) (civil.Date, civil.Date) {
	lead := (int(day.Weekday(first)) - int(weekStart) + 7) % 7
	weekEnd := (int(weekStart) + 6) % 7
	trail := (weekEnd - int(day.Weekday(last)) + 7) % 7
	return first.AddDays(-lead), last.AddDays(trail)
}

// Weekdays returns the column order of a grid starting on weekStart.
func Weekdays(weekStart time.Weekday) []time.Weekday {
	out := make([]time.Weekday, 7)
	for i := range out {
		out[i] = time.Weekday((int(weekStart) + i) % 7)
	}
	return out
}

// Weeks splits the grid into rows of seven cells.
func (g Grid) Weeks() [][]DayCell {
	weeks := make([][]DayCell, 0, len(g)/7)
	for i := 0; i+7 <= len(g); i += 7 {
		weeks = append(weeks, g[i:i+7])
	}
	return weeks
}

// Find returns the cell for d, if d is part of the grid.
func (g Grid) Find(d civil.Date) (DayCell, bool) {
	if i := g.Index(d); i >= 0 {
		return g[i], true
	}
	return DayCell{}, false
}

// Index returns the position of d in the grid, or -1.
func (g Grid) Index(d civil.Date) int {
	for i, c := range g {
		if c.Date == d {
			return i
		}
	}
	return -1
}
