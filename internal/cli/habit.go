package cli

import "github.com/spf13/cobra"

var habitCmd = GroupCommand{
	Use:   "habit",
	Short: "Manage tracked habits",
	Subcommands: []*cobra.Command{
		habitAddCmd,
		habitListCmd,
		habitRemoveCmd,
	},
}.Build()
