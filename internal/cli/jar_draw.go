package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/jar"
)

var jarDrawCmd = LeafCommand{
	Use:   "draw",
	Short: "Draw a random success from the jar",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runJarDraw(cmd, homeDir, nil)
	},
}.Build()

// runJarDraw prints one random item. intn picks the index; nil uses math/rand.
func runJarDraw(cmd *cobra.Command, homeDir string, intn func(n int) int) error {
	store, err := openJar(homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	items, err := store.List()
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	item, err := jar.Draw(items, intn)
	if errors.Is(err, jar.ErrEmpty) {
		_, _ = fmt.Fprintln(w, Silent("Your jar is empty. Add your first success with 'willpower jar add TEXT'."))
		return nil
	}
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(w, "%s\n%s\n", Info(fmt.Sprintf("“%s”", item.Content)), Silent("Recorded on "+formatJarDate(item)))
	return nil
}
