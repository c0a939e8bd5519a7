package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"cloud.google.com/go/civil"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/tracker"
)

var exportFormats = []string{"pdf", "html", "json"}

var exportCmd = LeafCommand{
	Use:   "export",
	Short: "Export a month journal as PDF, HTML or JSON",
	Args:  cobra.NoArgs,
	StrFlags: []StringFlag{
		habitFlag,
		{Name: "month", Usage: "first month to export (default: current month)"},
		{Name: "to", Usage: "last month to export (default: same as --month)"},
		{Name: "format", Usage: "export format (pdf, html, json)", Default: "pdf"},
		{Name: "output", Usage: "output file, or - for stdout (default: <habit>-<yyyy>-<mm>.<format>)"},
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		habitName, _ := cmd.Flags().GetString("habit")
		monthFlag, _ := cmd.Flags().GetString("month")
		toFlag, _ := cmd.Flags().GetString("to")
		format, _ := cmd.Flags().GetString("format")
		output, _ := cmd.Flags().GetString("output")

		return runExport(cmd, homeDir, habitName, monthFlag, toFlag, format, output, time.Now)
	},
}.Build()

func runExport(cmd *cobra.Command, homeDir, habitName, monthFlag, toFlag, format, output string, nowFn func() time.Time) error {
	if !isExportFormat(format) {
		return fmt.Errorf("unsupported export format %q (supported: pdf, html, json)", format)
	}
	if output == "-" && format == "pdf" {
		return fmt.Errorf("pdf export needs an output file")
	}

	now := nowFn()
	from, err := day.ParseMonth(monthFlag, now)
	if err != nil {
		return err
	}
	to := from
	if toFlag != "" {
		if to, err = day.ParseMonth(toFlag, now); err != nil {
			return err
		}
	}

	s, err := openSession(homeDir, habitName)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	all, err := s.store.All()
	if err != nil {
		return err
	}

	data, err := tracker.BuildExportData(s.habit.Name, all, from, day.MonthEnd(to), day.Today(now), s.streakOptions()...)
	if err != nil {
		return err
	}

	if output == "" {
		output = defaultExportPath(s.habit.Slug, from, to, format)
	}

	if output == "-" {
		return writeExport(cmd.OutOrStdout(), data, format)
	}

	if format == "pdf" {
		err = renderExportPDF(data, output)
	} else {
		err = writeExportFile(output, data, format)
	}
	if err != nil {
		return err
	}

	logger.Debug("journal exported",
		zap.String("habit", s.habit.Slug),
		zap.String("format", format),
		zap.Int("months", len(data.Months)))

	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", Text(fmt.Sprintf("exported journal to %s", Primary(output))))
	return nil
}

func isExportFormat(format string) bool {
	for _, f := range exportFormats {
		if f == format {
			return true
		}
	}
	return false
}

func defaultExportPath(slug string, from, to civil.Date, format string) string {
	if day.SameMonth(from, to) {
		return fmt.Sprintf("%s-%d-%02d.%s", slug, from.Year, int(from.Month), format)
	}
	return fmt.Sprintf("%s-%d-%02d-to-%d-%02d.%s", slug, from.Year, int(from.Month), to.Year, int(to.Month), format)
}

func writeExportFile(path string, data tracker.ExportData, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	writeErr := writeExport(f, data, format)
	if closeErr := f.Close(); closeErr != nil && writeErr == nil {
		return closeErr
	}
	return writeErr
}

func writeExport(w io.Writer, data tracker.ExportData, format string) error {
	switch format {
	case "json":
		out, err := json.MarshalIndent(data, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%s\n", out)
		return err
	case "html":
		return renderExportHTML(w, data)
	}
	return fmt.Errorf("format %q cannot be written to a stream", format)
}
