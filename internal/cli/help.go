package cli

import (
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

// Root command groups, in the order help lists them.
const (
	groupTrack  = "track"
	groupReview = "review"
	groupManage = "manage"
)

var commandGroups = []*cobra.Group{
	{ID: groupTrack, Title: "Daily Check-in:"},
	{ID: groupReview, Title: "Progress:"},
	{ID: groupManage, Title: "Habits and Setup:"},
}

const rootExample = `  willpower habit add "No Sugar"
  willpower check "skipped dessert at the party"
  willpower calendar --month prev
  willpower jar draw`

var (
	sectionHeaderRe  = regexp.MustCompile(`^[A-Z][A-Za-z -]+:$`)
	commandListingRe = regexp.MustCompile(`^( {2})(\S+)(\s{2,}.*)$`)
	flagLineRe       = regexp.MustCompile(`^( +)(-.+?)( {2,}.*)$`)
	// Example invocations: "  willpower check ..."
	exampleLineRe = regexp.MustCompile(`^( +)(willpower)(\s.*)?$`)
	footerRe      = regexp.MustCompile(`^Use "`)
)

// groupCommands registers the help groups on root and files each command
// under one. Commands without a group land in "Additional Commands".
func groupCommands(root *cobra.Command, groups map[string][]*cobra.Command) {
	root.AddGroup(commandGroups...)
	for _, g := range commandGroups {
		for _, c := range groups[g.ID] {
			c.GroupID = g.ID
			root.AddCommand(c)
		}
	}
}

// colorizedHelpFunc renders cobra's usage text through colorizeLine.
func colorizedHelpFunc() func(*cobra.Command, []string) {
	return func(cmd *cobra.Command, args []string) {
		origOut := cmd.OutOrStdout()

		var buf strings.Builder
		cmd.SetOut(&buf)
		cmd.InitDefaultHelpFlag()
		_ = cmd.Usage()
		cmd.SetOut(origOut)

		var result strings.Builder
		for _, line := range strings.Split(buf.String(), "\n") {
			result.WriteString(colorizeLine(line))
			result.WriteString("\n")
		}
		cmd.Print(strings.TrimRight(result.String(), "\n") + "\n")
	}
}

func colorizeLine(line string) string {
	trimmed := strings.TrimSpace(line)
	switch {
	case sectionHeaderRe.MatchString(trimmed):
		return Info(line)
	case footerRe.MatchString(trimmed):
		return Silent(line)
	}

	if m := exampleLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := flagLineRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	if m := commandListingRe.FindStringSubmatch(line); m != nil {
		return m[1] + Primary(m[2]) + Text(m[3])
	}
	return Text(line)
}
