package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/habit"
)

var habitRemoveCmd = LeafCommand{
	Use:   "remove HABIT",
	Short: "Stop tracking a habit and delete its entries",
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
		confirm := ResolveConfirmFunc(yes)

		return runHabitRemove(cmd, homeDir, args[0], confirm)
	},
}.Build()

func runHabitRemove(cmd *cobra.Command, homeDir, identifier string, confirm ConfirmFunc) error {
	reg, err := habit.ReadRegistry(homeDir)
	if err != nil {
		return err
	}

	h := habit.Resolve(reg, identifier)
	if h == nil {
		return fmt.Errorf("habit '%s' not found", identifier)
	}

	confirmed, err := confirm(fmt.Sprintf("Remove habit '%s' and all of its entries?", h.Name))
	if err != nil {
		return err
	}
	if !confirmed {
		return fmt.Errorf("aborted")
	}

	removed, err := habit.Remove(homeDir, identifier)
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("habit '%s' removed", Primary(removed.Name))))
	return nil
}
