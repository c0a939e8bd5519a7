package cli

import (
	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/config"
	"github.com/Flyrell/willpower/internal/jar"
)

var jarCmd = GroupCommand{
	Use:   "jar",
	Short: "Collect past wins and draw one when motivation runs low",
	Subcommands: []*cobra.Command{
		jarAddCmd,
		jarListCmd,
		jarRemoveCmd,
		jarDrawCmd,
	},
}.Build()

// openJar opens the success jar with the configured store backend.
// Callers must Close the store.
func openJar(homeDir string) (jar.Store, error) {
	cfg, err := config.Load(homeDir)
	if err != nil {
		return nil, err
	}
	return jar.Open(cfg.Store, homeDir, logger)
}

func formatJarDate(item jar.Item) string {
	return item.CreatedAt.Local().Format("Jan 2, 2006")
}
