package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var jarListCmd = LeafCommand{
	Use:   "list",
	Short: "List the jar, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runJarList(cmd, homeDir)
	},
}.Build()

func runJarList(cmd *cobra.Command, homeDir string) error {
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
	if len(items) == 0 {
		_, _ = fmt.Fprintln(w, Silent("Your jar is empty. Add your first success with 'willpower jar add TEXT'."))
		return nil
	}
	for _, it := range items {
		_, _ = fmt.Fprintf(w, "%s  %s  %s\n", Silent(it.ID), Info(formatJarDate(it)), Text(it.Content))
	}
	return nil
}
