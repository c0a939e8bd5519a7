package day

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
	"github.com/teambition/rrule-go"
)

// MonthStart returns the first day of d's month.
func MonthStart(d civil.Date) civil.Date {
	return civil.Date{Year: d.Year, Month: d.Month, Day: 1}
}

// MonthEnd returns the last day of d's month.
func MonthEnd(d civil.Date) civil.Date {
	return AddMonths(MonthStart(d), 1).AddDays(-1)
}

// AddMonths moves the first of d's month by n months. The day is always 1.
func AddMonths(d civil.Date, n int) civil.Date {
	t := time.Date(d.Year, d.Month+time.Month(n), 1, 0, 0, 0, 0, time.UTC)
	return civil.DateOf(t)
}

// SameMonth reports whether a and b fall in the same calendar month.
func SameMonth(a, b civil.Date) bool {
	return a.Year == b.Year && a.Month == b.Month
}

// ParseMonth parses a month expression relative to now and returns the first
// day of that month. Supports: "" / "this", "next", "prev" / "last",
// "2024-05", "may", "may 2024", "may-2024".
func ParseMonth(s string, now time.Time) (civil.Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	current := MonthStart(Today(now))

	switch s {
	case "", "this", "current":
		return current, nil
	case "next":
		return AddMonths(current, 1), nil
	case "prev", "previous", "last":
		return AddMonths(current, -1), nil
	}

	if t, err := time.Parse("2006-01", s); err == nil {
		return civil.DateOf(t), nil
	}

	for _, layout := range []string{"Jan", "January"} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.Date{Year: current.Year, Month: t.Month(), Day: 1}, nil
		}
	}
	for _, layout := range []string{"Jan 2006", "January 2006", "Jan-2006", "January-2006"} {
		if t, err := time.Parse(layout, s); err == nil {
			return civil.DateOf(t), nil
		}
	}

	return civil.Date{}, fmt.Errorf("unrecognized month %q (expected e.g. 2024-05, may, may 2024, next, prev)", s)
}

// Months returns the first day of every month from from's month through
// to's month, inclusive. Returns nil when to precedes from.
func Months(from, to civil.Date) ([]civil.Date, error) {
	start, end := MonthStart(from), MonthStart(to)
	if end.Before(start) {
		return nil, nil
	}
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.MONTHLY,
		Dtstart: start.In(time.UTC),
		Until:   end.In(time.UTC),
	})
	if err != nil {
		return nil, err
	}
	return toDates(r.All()), nil
}

// Days returns every calendar date in [from, to]. Returns nil when to
// precedes from.
func Days(from, to civil.Date) ([]civil.Date, error) {
	if to.Before(from) {
		return nil, nil
	}
	r, err := rrule.NewRRule(rrule.ROption{
		Freq:    rrule.DAILY,
		Dtstart: from.In(time.UTC),
		Until:   to.In(time.UTC),
	})
	if err != nil {
		return nil, err
	}
	return toDates(r.All()), nil
}

func toDates(times []time.Time) []civil.Date {
	dates := make([]civil.Date, len(times))
	for i, t := range times {
		dates[i] = civil.DateOf(t.UTC())
	}
	return dates
}
