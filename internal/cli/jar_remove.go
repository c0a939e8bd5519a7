package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/jar"
)

var jarRemoveCmd = LeafCommand{
	Use:   "remove ID",
	Short: "Remove a success from the jar",
	Args:  cobra.ExactArgs(1),
	BoolFlags: []BoolFlag{
		{Name: "yes", Usage: "skip confirmation prompt"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		yes, _ := cmd.Flags().GetBool("yes")
		return runJarRemove(cmd, homeDir, args[0], ResolveConfirmFunc(yes))
	},
}.Build()

func runJarRemove(cmd *cobra.Command, homeDir, id string, confirm ConfirmFunc) error {
	store, err := openJar(homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	items, err := store.List()
	if err != nil {
		return err
	}
	var found *jar.Item
	for i := range items {
		if items[i].ID == id {
			found = &items[i]
			break
		}
	}
	if found == nil {
		return fmt.Errorf("jar item '%s' not found", id)
	}

	confirmed, err := confirm(fmt.Sprintf("Remove '%s' from the jar?", found.Content))
	if err != nil {
		return err
	}
	if !confirmed {
		return errors.New("aborted")
	}

	if _, err := store.Remove(id); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("jar item '%s' removed", Primary(id))))
	return nil
}
