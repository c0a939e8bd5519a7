package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var jarAddCmd = LeafCommand{
	Use:   "add TEXT",
	Short: "Add a success to the jar",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		return runJarAdd(cmd, homeDir, strings.Join(args, " "), time.Now)
	},
}.Build()

func runJarAdd(cmd *cobra.Command, homeDir, content string, nowFn func() time.Time) error {
	store, err := openJar(homeDir)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	item, err := store.Add(content, nowFn())
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Success(fmt.Sprintf("added to your jar (%s) 🍯", Silent(item.ID))))
	return nil
}
