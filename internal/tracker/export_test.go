package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/willpower/internal/entry"
	"github.com/Flyrell/willpower/internal/streak"
)

func TestBuildExportData(t *testing.T) {
	entries := []entry.Entry{
		done("2024-05-01", "ran 5k"),
		open("2024-05-02", "skipped"),
		done("2024-05-02", ""),
	}

	data, err := BuildExportData("Running", entries, d("2024-05-01"), d("2024-06-30"), d("2024-05-05"))
	require.NoError(t, err)

	assert.Equal(t, "Running", data.HabitName)
	assert.Equal(t, d("2024-05-05"), data.Generated)
	require.Len(t, data.Months, 2)

	may := data.Months[0]
	assert.Equal(t, d("2024-05-01"), may.Month)
	require.Len(t, may.Days, 31)
	assert.Equal(t, d("2024-05-01"), may.Days[0].Date)
	assert.Equal(t, d("2024-05-31"), may.Days[30].Date)
	assert.Equal(t, "ran 5k", may.Days[0].Notes)
	assert.True(t, may.Days[1].Completed)
	assert.Equal(t, "skipped", may.Days[1].Notes)
	assert.Equal(t, 2, may.Completed)
	// May 3 and May 4; today and later are never missed.
	assert.Equal(t, 2, may.Missed)
	assert.False(t, may.Days[4].Missed)

	june := data.Months[1]
	require.Len(t, june.Days, 30)
	assert.Equal(t, 0, june.Completed)
	assert.Equal(t, 0, june.Missed)

	assert.Equal(t, 2, data.Completed)
	assert.Equal(t, 0, data.Current)
	assert.Equal(t, 2, data.Longest)
}

func TestBuildExportData_SingleMonthReversedDays(t *testing.T) {
	data, err := BuildExportData("Reading", nil, d("2024-02-20"), d("2024-02-03"), d("2024-03-01"))
	require.NoError(t, err)
	require.Len(t, data.Months, 1)
	assert.Len(t, data.Months[0].Days, 29)
	assert.Equal(t, 29, data.Months[0].Missed)
}

func TestBuildExportData_RangeEndsBeforeStart(t *testing.T) {
	_, err := BuildExportData("Reading", nil, d("2024-06-01"), d("2024-05-31"), d("2024-06-01"))
	assert.Error(t, err)
}

func TestBuildExportData_StreakOptions(t *testing.T) {
	var entries []entry.Entry
	for _, s := range []string{"2024-05-01", "2024-05-02", "2024-05-03", "2024-05-04"} {
		entries = append(entries, done(s, ""))
	}

	data, err := BuildExportData("Reading", entries, d("2024-05-01"), d("2024-05-01"), d("2024-05-04"), streak.WithMaxWalk(2))
	require.NoError(t, err)
	assert.Equal(t, 2, data.Current)
	assert.Equal(t, 4, data.Longest)
}

func TestNotesByDate_PrefersCompletedRecord(t *testing.T) {
	a := []entry.Entry{open("2024-05-07", "a"), done("2024-05-07", "b")}
	b := []entry.Entry{done("2024-05-07", "b"), open("2024-05-07", "a")}

	assert.Equal(t, "b", notesByDate(a)[d("2024-05-07")])
	assert.Equal(t, "b", notesByDate(b)[d("2024-05-07")])
}
