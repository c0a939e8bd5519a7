package entry

import (
	"errors"
	"time"

	"cloud.google.com/go/civil"
)

// ErrNotFound is returned when no entry exists for a requested day.
var ErrNotFound = errors.New("entry not found")

// Entry is a user's record for one calendar day of a habit.
type Entry struct {
	ID        string     `json:"id"`
	Date      civil.Date `json:"date"`
	Completed bool       `json:"completed"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// Store persists entries for a single habit. Implementations keep at most one
// entry per day; Save replaces the existing entry for e.Date.
type Store interface {
	Save(e Entry) (Entry, error)
	Get(d civil.Date) (Entry, error)
	// Range returns entries with from <= date <= to, sorted by date.
	Range(from, to civil.Date) ([]Entry, error)
	// Completed returns all completed entries regardless of month, sorted by date.
	Completed() ([]Entry, error)
	All() ([]Entry, error)
	Close() error
}

// CompletedSet returns the days that have a completed entry. Duplicate records
// for the same day are tolerated: the day counts as completed if any of them is.
func CompletedSet(entries []Entry) map[civil.Date]bool {
	set := make(map[civil.Date]bool, len(entries))
	for _, e := range entries {
		if e.Completed {
			set[e.Date] = true
		}
	}
	return set
}

// CompletedDates returns the distinct completed days in entries, in no
// particular order.
func CompletedDates(entries []Entry) []civil.Date {
	set := CompletedSet(entries)
	dates := make([]civil.Date, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	return dates
}
