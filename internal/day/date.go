package day

import (
	"fmt"
	"strings"
	"time"

	"cloud.google.com/go/civil"
)

// Layout is the canonical string form of a calendar date.
const Layout = "2006-01-02"

// Today returns the calendar date of now in now's own location.
func Today(now time.Time) civil.Date {
	return civil.DateOf(now)
}

// ParseDate parses a date expression relative to now.
// Supports: "today", "yesterday", "2024-01-15", "Jan 2", "Jan 2 2006",
// "January 2", "January 2 2006", "2 Jan", "2 Jan 2006", "2 January",
// "2 January 2006".
func ParseDate(s string, now time.Time) (civil.Date, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	s = strings.TrimSpace(strings.TrimPrefix(s, "on "))

	today := Today(now)
	switch s {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDays(-1), nil
	}

	layouts := []string{
		Layout,
		"Jan 2",
		"Jan 2 2006",
		"January 2",
		"January 2 2006",
		"2 Jan",
		"2 Jan 2006",
		"2 January",
		"2 January 2006",
	}

	// Month names match case-insensitively against the layout tokens.
	for _, layout := range layouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		d := civil.DateOf(t)
		if !hasYear(layout) {
			d.Year = today.Year
		}
		if !d.IsValid() {
			break
		}
		return d, nil
	}

	return civil.Date{}, fmt.Errorf("unrecognized date %q", s)
}

// MustParse parses a YYYY-MM-DD date and panics on failure. Intended for
// literals in tests and fixtures.
func MustParse(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Weekday returns the day of the week d falls on.
func Weekday(d civil.Date) time.Weekday {
	return d.In(time.UTC).Weekday()
}

// Between reports whether d lies in [from, to].
func Between(d, from, to civil.Date) bool {
	return !d.Before(from) && !d.After(to)
}

func hasYear(layout string) bool {
	return strings.Contains(layout, "2006")
}
