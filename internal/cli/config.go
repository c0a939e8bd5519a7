package cli

import "github.com/spf13/cobra"

var configCmd = GroupCommand{
	Use:   "config",
	Short: "Manage willpower settings",
	Subcommands: []*cobra.Command{
		configShowCmd,
		configGetCmd,
		configSetCmd,
		configResetCmd,
	},
}.Build()
