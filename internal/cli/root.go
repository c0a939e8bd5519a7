package cli

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/config"
	"github.com/Flyrell/willpower/internal/logging"
)

// logger is replaced in PersistentPreRunE; tests run against the no-op logger.
var logger = zap.NewNop()

var verbose bool

var rootCmd = &cobra.Command{
	Use:          "willpower",
	Short:        "Track a daily habit and keep your streak alive",
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := ""
		if homeDir, err := os.UserHomeDir(); err == nil {
			if cfg, err := config.Load(homeDir); err == nil {
				level = cfg.LogLevel
			}
		}
		l, err := logging.New(level, verbose)
		if err != nil {
			return err
		}
		logger = l
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging on stderr")
	rootCmd.SetHelpFunc(colorizedHelpFunc())

	rootCmd.Example = rootExample

	groupCommands(rootCmd, map[string][]*cobra.Command{
		groupTrack:  {checkCmd, jarCmd},
		groupReview: {statusCmd, calendarCmd, historyCmd, shareCmd, exportCmd},
		groupManage: {habitCmd, configCmd},
	})
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}

func Execute() error {
	return rootCmd.Execute()
}
