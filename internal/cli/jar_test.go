package cli

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Flyrell/willpower/internal/config"
	"github.com/Flyrell/willpower/internal/jar"
)

func readJar(t *testing.T, home string) []jar.Item {
	t.Helper()
	store, err := openJar(home)
	require.NoError(t, err)
	defer func() { _ = store.Close() }()

	items, err := store.List()
	require.NoError(t, err)
	return items
}

func TestJarSubcommandsRegistered(t *testing.T) {
	names := make([]string, 0, len(jarCmd.Commands()))
	for _, c := range jarCmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"add", "list", "remove", "draw"}, names)
}

func TestJarAdd(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"success", "ran my first 10k", ""},
		{"blank", "   ", "cannot be empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			home := t.TempDir()
			cmd, stdout := newTestCmd()

			err := runJarAdd(cmd, home, tt.content, fixedNow)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				assert.Empty(t, readJar(t, home))
				return
			}
			require.NoError(t, err)
			assert.Contains(t, stdout.String(), "added to your jar")

			items := readJar(t, home)
			require.Len(t, items, 1)
			assert.Equal(t, tt.content, items[0].Content)
			assert.Contains(t, stdout.String(), items[0].ID)
		})
	}
}

func TestJarAddUsesConfiguredBackend(t *testing.T) {
	home := t.TempDir()
	_, err := config.Set(home, config.KeyStore, "sqlite")
	require.NoError(t, err)
	cmd, _ := newTestCmd()

	require.NoError(t, runJarAdd(cmd, home, "30 days without sugar", fixedNow))

	items := readJar(t, home)
	require.Len(t, items, 1)
	assert.FileExists(t, filepath.Join(home, ".willpower", "willpower.db"))
	assert.NoFileExists(t, jar.Path(home))
}

func TestJarListEmpty(t *testing.T) {
	cmd, stdout := newTestCmd()

	require.NoError(t, runJarList(cmd, t.TempDir()))

	assert.Contains(t, stdout.String(), "Your jar is empty.")
}

func TestJarListNewestFirst(t *testing.T) {
	home := t.TempDir()
	cmd, stdout := newTestCmd()
	require.NoError(t, runJarAdd(cmd, home, "older win", fixedNow))
	require.NoError(t, runJarAdd(cmd, home, "newer win", func() time.Time { return fixedNow().Add(24 * time.Hour) }))
	stdout.Reset()

	require.NoError(t, runJarList(cmd, home))

	out := stdout.String()
	assert.Contains(t, out, fixedNow().Local().Format("Jan 2, 2006"))
	assert.Less(t, strings.Index(out, "newer win"), strings.Index(out, "older win"))
}

func TestJarRemove(t *testing.T) {
	home := t.TempDir()
	cmd, stdout := newTestCmd()
	require.NoError(t, runJarAdd(cmd, home, "cold shower streak", fixedNow))
	id := readJar(t, home)[0].ID

	var asked string
	confirm := func(prompt string) (bool, error) {
		asked = prompt
		return true, nil
	}
	require.NoError(t, runJarRemove(cmd, home, id, confirm))

	assert.Contains(t, asked, "cold shower streak")
	assert.Contains(t, stdout.String(), "removed")
	assert.Empty(t, readJar(t, home))
}

func TestJarRemoveDeclined(t *testing.T) {
	home := t.TempDir()
	cmd, _ := newTestCmd()
	require.NoError(t, runJarAdd(cmd, home, "kept", fixedNow))
	id := readJar(t, home)[0].ID

	err := runJarRemove(cmd, home, id, func(string) (bool, error) { return false, nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "aborted")
	assert.Len(t, readJar(t, home), 1)
}

func TestJarRemoveUnknown(t *testing.T) {
	cmd, _ := newTestCmd()

	err := runJarRemove(cmd, t.TempDir(), "deadbee", AlwaysYes())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "jar item 'deadbee' not found")
}

func TestJarDraw(t *testing.T) {
	home := t.TempDir()
	cmd, stdout := newTestCmd()
	require.NoError(t, runJarAdd(cmd, home, "first", fixedNow))
	require.NoError(t, runJarAdd(cmd, home, "second", func() time.Time { return fixedNow().Add(time.Hour) }))
	stdout.Reset()

	// Items come newest first, so index 1 is the oldest.
	require.NoError(t, runJarDraw(cmd, home, func(n int) int {
		assert.Equal(t, 2, n)
		return 1
	}))

	assert.Contains(t, stdout.String(), "“first”")
	assert.Contains(t, stdout.String(), "Recorded on")
}

func TestJarDrawEmpty(t *testing.T) {
	cmd, stdout := newTestCmd()

	require.NoError(t, runJarDraw(cmd, t.TempDir(), func(int) int {
		t.Fatal("intn must not be called on an empty jar")
		return 0
	}))

	assert.Contains(t, stdout.String(), "Your jar is empty.")
}
