// Package streak computes the current and longest runs of completed days.
//
// All arithmetic is on calendar dates (civil.Date), so a "day apart" never
// depends on time of day, UTC offsets or daylight-saving changes.
package streak

import (
	"sort"

	"cloud.google.com/go/civil"

	"github.com/Flyrell/willpower/internal/entry"
)

// LegacyMaxWalk is the backward-walk bound used by earlier versions, which
// silently undercounted current streaks longer than a year.
const LegacyMaxWalk = 365

// Result holds both streak metrics.
type Result struct {
	Current int
	Longest int
	// Truncated is set when the backward walk stopped at the configured cap
	// while the run was still going, so Current is a lower bound.
	Truncated bool
}

type options struct {
	maxWalk int
}

// Option configures Compute.
type Option func(*options)

// WithMaxWalk caps the number of days the current-streak walk may visit.
// n <= 0 means no cap.
func WithMaxWalk(n int) Option {
	return func(o *options) {
		o.maxWalk = n
	}
}

// Compute returns the current and longest streaks for the given completed
// days as seen from ref (the user's "today").
//
// The current streak counts consecutive completed days ending at ref, or at
// the day before ref when ref itself has no completion yet. Any earlier gap
// ends it. Duplicate dates are counted once and input order does not matter.
func Compute(completed []civil.Date, ref civil.Date, opts ...Option) Result {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	set := make(map[civil.Date]struct{}, len(completed))
	for _, d := range completed {
		set[d] = struct{}{}
	}
	if len(set) == 0 {
		return Result{}
	}

	current, truncated := currentStreak(set, ref, o.maxWalk)
	return Result{
		Current:   current,
		Longest:   longestStreak(set),
		Truncated: truncated,
	}
}

// FromEntries computes streaks from raw entries. A day counts as completed if
// any of its entries is completed.
func FromEntries(entries []entry.Entry, ref civil.Date, opts ...Option) Result {
	return Compute(entry.CompletedDates(entries), ref, opts...)
}

// currentStreak walks backward from ref. Without a cap the walk ends after at
// most len(set)+1 steps: every step either counts a completed day, skips ref
// once, or stops.
func currentStreak(set map[civil.Date]struct{}, ref civil.Date, maxWalk int) (int, bool) {
	count := 0
	d := ref
	for step := 0; maxWalk <= 0 || step < maxWalk; step++ {
		if _, ok := set[d]; ok {
			count++
		} else if d != ref {
			return count, false
		}
		d = d.AddDays(-1)
	}

	_, more := set[d]
	return count, more
}

func longestStreak(set map[civil.Date]struct{}) int {
	dates := make([]civil.Date, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	sort.Slice(dates, func(i, j int) bool { return dates[i].Before(dates[j]) })

	longest, run := 1, 1
	for i := 1; i < len(dates); i++ {
		if dates[i].DaysSince(dates[i-1]) == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}
