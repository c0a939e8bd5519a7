package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/config"
)

var configShowCmd = LeafCommand{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runConfigShow(cmd, homeDir)
	},
}.Build()

func runConfigShow(cmd *cobra.Command, homeDir string) error {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	_, _ = fmt.Fprintf(w, "%s\n", Silent(config.Path(homeDir)))
	for _, key := range config.Keys {
		value, _ := cfg.Get(key)
		if value == "" {
			value = Silent("(unset)")
		} else {
			value = Primary(value)
		}
		_, _ = fmt.Fprintf(w, "%-16s %s\n", key, value)
	}
	return nil
}
