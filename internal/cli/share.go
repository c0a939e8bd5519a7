package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/streak"
	"github.com/Flyrell/willpower/internal/tracker"
)

var shareCmd = LeafCommand{
	Use:   "share",
	Short: "Print a shareable message with your current streak",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		habitFlag,
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		habitName, _ := cmd.Flags().GetString("habit")
		return runShare(cmd, homeDir, habitName, time.Now)
	},
}.Build()

func runShare(cmd *cobra.Command, homeDir, habitName string, nowFn func() time.Time) error {
	s, err := openSession(homeDir, habitName)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	completed, err := s.store.Completed()
	if err != nil {
		return err
	}
	res := streak.FromEntries(completed, day.Today(nowFn()), s.streakOptions()...)

	_, err = fmt.Fprintln(cmd.OutOrStdout(), tracker.ShareText(res.Current))
	return err
}
