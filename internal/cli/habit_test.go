package cli

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/willpower/internal/config"
	"github.com/Flyrell/willpower/internal/habit"
)

func TestHabitSubcommandsRegistered(t *testing.T) {
	names := make([]string, 0, len(habitCmd.Commands()))
	for _, c := range habitCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"add", "list", "remove"}, names)
}

func TestHabitAddHappyPath(t *testing.T) {
	home := t.TempDir()
	cmd, stdout := newTestCmd()

	err := runHabitAdd(cmd, home, "Cold Shower", fixedNow)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "habit 'Cold Shower' created (")

	reg, err := habit.ReadRegistry(home)
	require.NoError(t, err)
	require.Len(t, reg.Habits, 1)
	assert.Equal(t, "cold-shower", reg.Habits[0].Slug)

	_, err = os.Stat(habit.LogDir(home, "cold-shower"))
	assert.NoError(t, err)
}

func TestHabitAddDuplicate(t *testing.T) {
	home, _ := setupHabit(t, "Reading")
	cmd, _ := newTestCmd()

	err := runHabitAdd(cmd, home, "Reading", fixedNow)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestHabitListEmpty(t *testing.T) {
	cmd, stdout := newTestCmd()

	require.NoError(t, runHabitList(cmd, t.TempDir(), fixedNow))

	assert.Contains(t, stdout.String(), "No habits found.")
}

func TestHabitListShowsStreaksAndDefault(t *testing.T) {
	home, reading := setupHabit(t, "Reading")
	_, err := habit.Create(home, "Running", fixedNow())
	require.NoError(t, err)
	_, err = config.Set(home, config.KeyDefaultHabit, "Reading")
	require.NoError(t, err)

	seed(t, home, reading,
		completedOn("2025-06-13", ""),
		completedOn("2025-06-14", ""),
		completedOn("2025-06-15", ""))

	cmd, stdout := newTestCmd()
	require.NoError(t, runHabitList(cmd, home, fixedNow))

	out := stdout.String()
	assert.Contains(t, out, "Reading (default)  3 days streak")
	assert.Contains(t, out, "Running  0 days streak")
	assert.Contains(t, out, reading.ID)
}

func TestHabitRemoveConfirmed(t *testing.T) {
	home, h := setupHabit(t, "Reading")
	seed(t, home, h, completedOn("2025-06-15", ""))
	cmd, stdout := newTestCmd()

	err := runHabitRemove(cmd, home, "Reading", AlwaysYes())

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "habit 'Reading' removed")

	reg, err := habit.ReadRegistry(home)
	require.NoError(t, err)
	assert.Empty(t, reg.Habits)

	_, err = os.Stat(habit.LogDir(home, h.Slug))
	assert.True(t, os.IsNotExist(err))
}

func TestHabitRemoveDeclined(t *testing.T) {
	home, _ := setupHabit(t, "Reading")
	cmd, _ := newTestCmd()
	decline := func(string) (bool, error) { return false, nil }

	err := runHabitRemove(cmd, home, "Reading", decline)

	assert.EqualError(t, err, "aborted")
	reg, err := habit.ReadRegistry(home)
	require.NoError(t, err)
	assert.Len(t, reg.Habits, 1)
}

func TestHabitRemoveNotFound(t *testing.T) {
	cmd, _ := newTestCmd()

	err := runHabitRemove(cmd, t.TempDir(), "ghost", AlwaysYes())

	assert.EqualError(t, err, "habit 'ghost' not found")
}

func TestFormatDays(t *testing.T) {
	assert.Equal(t, "0 days", formatDays(0))
	assert.Equal(t, "1 day", formatDays(1))
	assert.Equal(t, "12 days", formatDays(12))
}
