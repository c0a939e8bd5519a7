package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/habit"
)

var habitAddCmd = LeafCommand{
	Use:   "add HABIT",
	Short: "Start tracking a new habit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runHabitAdd(cmd, homeDir, args[0], time.Now)
	},
}.Build()

func runHabitAdd(cmd *cobra.Command, homeDir, name string, nowFn func() time.Time) error {
	h, err := habit.Create(homeDir, name, nowFn())
	if err != nil {
		return err
	}
	logger.Debug("habit created", zap.String("id", h.ID), zap.String("slug", h.Slug))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("habit '%s' created (%s)", Primary(h.Name), Silent(h.ID))))
	return nil
}
