package tracker

import (
	"strings"
	"testing"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/entry"
)

func d(s string) civil.Date {
	return day.MustParse(s)
}

func done(date, notes string) entry.Entry {
	return entry.Entry{Date: d(date), Completed: true, Notes: notes}
}

func open(date, notes string) entry.Entry {
	return entry.Entry{Date: d(date), Notes: notes}
}

func TestBuildStats(t *testing.T) {
	month := []entry.Entry{
		done("2024-05-01", ""),
		done("2024-05-02", ""),
		open("2024-05-02", ""),
		open("2024-05-03", ""),
		done("2024-04-30", ""),
	}
	completed := []entry.Entry{
		done("2024-04-30", ""),
		done("2024-05-01", ""),
		done("2024-05-02", ""),
	}

	s := BuildStats(month, completed, d("2024-05-20"), d("2024-05-15"))

	assert.Equal(t, d("2024-05-01"), s.Month)
	assert.Equal(t, 2, s.CompletedDays)
	assert.Equal(t, 3, s.LoggedDays)
	assert.Equal(t, 15, s.ElapsedDays)
	assert.Equal(t, 67, s.SuccessRate)
	assert.Equal(t, 0, s.Streaks.Current)
	assert.Equal(t, 3, s.Streaks.Longest)
}

func TestBuildStats_ElapsedDays(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want int
	}{
		{"past month", "2024-06-10", 31},
		{"future month", "2024-04-01", 0},
		{"first day", "2024-05-01", 1},
		{"last day", "2024-05-31", 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := BuildStats(nil, nil, d("2024-05-01"), d(tt.ref))
			assert.Equal(t, tt.want, s.ElapsedDays)
		})
	}
}

func TestBuildStats_NoEntries(t *testing.T) {
	s := BuildStats(nil, nil, d("2024-05-01"), d("2024-05-15"))

	assert.Equal(t, 0, s.SuccessRate)
	assert.Equal(t, 0, s.LoggedDays)
	assert.Equal(t, 0, s.Streaks.Current)
	assert.Equal(t, 0, s.Streaks.Longest)
}

func TestRecentActivity(t *testing.T) {
	entries := []entry.Entry{
		done("2024-05-01", "a"),
		done("2024-05-03", ""),
		done("2024-05-03", "c"),
		open("2024-05-02", "skipped"),
		done("2024-05-04", ""),
	}

	recent := RecentActivity(entries, 2)
	require.Len(t, recent, 2)
	assert.Equal(t, d("2024-05-04"), recent[0].Date)
	assert.Equal(t, d("2024-05-03"), recent[1].Date)
	assert.Equal(t, "c", recent[1].Notes)

	all := RecentActivity(entries, -1)
	require.Len(t, all, 3)
	assert.Equal(t, d("2024-05-01"), all[2].Date)

	assert.Empty(t, RecentActivity(nil, 5))
}

func TestPrefillNotes(t *testing.T) {
	ref := d("2024-05-05")
	history := []entry.Entry{
		done("2024-05-01", "old"),
		done("2024-05-03", "newer"),
		open("2024-05-04", "   "),
	}

	tests := []struct {
		name    string
		entries []entry.Entry
		want    string
	}{
		{"latest earlier notes", history, "newer"},
		{"own notes win", append(history, open("2024-05-05", "today")), "today"},
		{"later days ignored", append(history, done("2024-05-09", "from the future")), "newer"},
		{"only later notes", []entry.Entry{done("2024-05-06", "tomorrow")}, ""},
		{"no entries", nil, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PrefillNotes(tt.entries, ref))
		})
	}
}

func TestMotivation(t *testing.T) {
	assert.Contains(t, Motivation(4), "4-day streak")
	assert.Contains(t, Motivation(0), "start fresh")
}

func TestShareText(t *testing.T) {
	text := ShareText(12)
	assert.True(t, strings.HasPrefix(text, "I've reached a 12-day streak on Willpower Tracker!"))
}

func TestQuoteOfTheDay(t *testing.T) {
	assert.Equal(t, quotes[0], QuoteOfTheDay(d("2000-01-01")))
	assert.Equal(t, quotes[0], QuoteOfTheDay(d("2000-01-13")))
	assert.Equal(t, quotes[len(quotes)-1], QuoteOfTheDay(d("1999-12-31")))

	a, b := QuoteOfTheDay(d("2024-05-15")), QuoteOfTheDay(d("2024-05-15"))
	assert.Equal(t, a, b)
	assert.NotEqual(t, QuoteOfTheDay(d("2024-05-15")), QuoteOfTheDay(d("2024-05-16")))

	for _, q := range quotes {
		assert.NotEmpty(t, q.Text)
		assert.NotEmpty(t, q.Author)
	}
}
