package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/config"
)

var configGetCmd = LeafCommand{
	Use:   "get KEY",
	Short: "Print a single setting",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigGet(cmd, homeDir, args[0])
	},
}.Build()

func runConfigGet(cmd *cobra.Command, homeDir, key string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}
	value, err := cfg.Get(key)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
	return err
}
