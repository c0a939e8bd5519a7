package day

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	// Fixed reference time: Wednesday, January 15, 2025
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		input   string
		want    civil.Date
		wantErr bool
	}{
		{name: "empty is today", input: "", want: civil.Date{Year: 2025, Month: 1, Day: 15}},
		{name: "today", input: "today", want: civil.Date{Year: 2025, Month: 1, Day: 15}},
		{name: "yesterday", input: "yesterday", want: civil.Date{Year: 2025, Month: 1, Day: 14}},
		{name: "on prefix", input: "on 2024-12-31", want: civil.Date{Year: 2024, Month: 12, Day: 31}},
		{name: "ISO date", input: "2024-01-15", want: civil.Date{Year: 2024, Month: 1, Day: 15}},
		{name: "jan 2", input: "jan 2", want: civil.Date{Year: 2025, Month: 1, Day: 2}},
		{name: "jan 2 2026", input: "jan 2 2026", want: civil.Date{Year: 2026, Month: 1, Day: 2}},
		{name: "15 january", input: "15 January", want: civil.Date{Year: 2025, Month: 1, Day: 15}},
		{name: "leap day with year", input: "feb 29 2024", want: civil.Date{Year: 2024, Month: 2, Day: 29}},

		{name: "leap day in non-leap current year", input: "feb 29", wantErr: true},
		{name: "garbage", input: "not a date", wantErr: true},
		{name: "invalid ISO", input: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input, now)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTodayUsesLocalCalendarDay(t *testing.T) {
	// 23:30 in UTC-5 is already the next day in UTC.
	est := time.FixedZone("EST", -5*60*60)
	now := time.Date(2025, 3, 9, 23, 30, 0, 0, est)

	assert.Equal(t, civil.Date{Year: 2025, Month: 3, Day: 9}, Today(now))
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, time.Wednesday, Weekday(MustParse("2024-05-01")))
	assert.Equal(t, time.Saturday, Weekday(MustParse("2024-06-01")))
}

func TestBetween(t *testing.T) {
	from, to := MustParse("2024-05-01"), MustParse("2024-05-31")

	assert.True(t, Between(from, from, to))
	assert.True(t, Between(to, from, to))
	assert.True(t, Between(MustParse("2024-05-15"), from, to))
	assert.False(t, Between(MustParse("2024-04-30"), from, to))
	assert.False(t, Between(MustParse("2024-06-01"), from, to))
}

func TestMustParsePanicsOnGarbage(t *testing.T) {
	assert.Panics(t, func() { MustParse("nope") })
}

func TestParseDateMonthNamesOtherThanJanuary(t *testing.T) {
	now := time.Date(2025, 1, 15, 10, 30, 0, 0, time.UTC)

	got, err := ParseDate("feb 3", now)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2025, Month: time.February, Day: 3}, got)

	got, err = ParseDate("3 October 2024", now)
	require.NoError(t, err)
	assert.Equal(t, civil.Date{Year: 2024, Month: time.October, Day: 3}, got)
}
