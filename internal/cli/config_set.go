package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/config"
)

var configSetCmd = LeafCommand{
	Use:   "set KEY VALUE",
	Short: "Change a setting (store, week_start, streak_max_walk, default_habit, log_level)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigSet(cmd, homeDir, args[0], args[1])
	},
}.Build()

func runConfigSet(cmd *cobra.Command, homeDir, key, value string) error {
	cfg, err := config.Set(homeDir, key, value)
	if err != nil {
		return err
	}
	stored, _ := cfg.Get(key)
	logger.Debug("config updated", zap.String("key", key), zap.String("value", stored))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("%s set to '%s'", key, Primary(stored))))
	return nil
}
