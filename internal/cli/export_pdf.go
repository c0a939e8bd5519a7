package cli

import (
	"fmt"
	"strings"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/tracker"
)

var (
	pdfHeaderColor = props.Color{Red: 50, Green: 50, Blue: 50}
	pdfMutedColor  = props.Color{Red: 120, Green: 120, Blue: 120}
	pdfLineColor   = props.Color{Red: 200, Green: 200, Blue: 200}
	pdfDoneColor   = props.Color{Red: 34, Green: 160, Blue: 80}
	pdfMissedColor = props.Color{Red: 200, Green: 60, Blue: 60}
)

// renderExportPDF generates a PDF journal from the export data and saves it
// to the given path.
func renderExportPDF(data tracker.ExportData, outputPath string) error {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// Document header
	m.AddRow(14,
		text.NewCol(12, data.HabitName, props.Text{
			Style: fontstyle.Bold,
			Size:  16,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(12, exportRangeLabel(data), props.Text{
			Size:  12,
			Color: &pdfMutedColor,
		}),
	)
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(4)

	for _, month := range data.Months {
		m.AddRow(10,
			text.NewCol(9, monthTitle(month.Month), props.Text{
				Style: fontstyle.Bold,
				Size:  12,
				Color: &pdfHeaderColor,
			}),
			text.NewCol(3, fmt.Sprintf("%d done, %d missed", month.Completed, month.Missed), props.Text{
				Size:  9,
				Align: align.Right,
				Color: &pdfMutedColor,
			}),
		)

		for _, d := range month.Days {
			label := fmt.Sprintf("%s %d, %s", d.Date.Month, d.Date.Day, day.Weekday(d.Date))
			status, color := pdfDayStatus(d)

			m.AddRow(6,
				text.NewCol(9, "  "+label, props.Text{Size: 9}),
				text.NewCol(3, status, props.Text{
					Size:  9,
					Align: align.Right,
					Color: color,
				}),
			)
			for _, l := range strings.Split(strings.TrimSpace(d.Notes), "\n") {
				if l == "" {
					continue
				}
				m.AddRow(5,
					text.NewCol(12, "    "+l, props.Text{
						Size:  8,
						Color: &pdfMutedColor,
					}),
				)
			}
		}

		m.AddRow(4)
	}

	// Streak footer
	m.AddRow(4, line.NewCol(12, props.Line{Color: &pdfLineColor}))
	m.AddRow(10,
		text.NewCol(9, "Completed days", props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Color: &pdfHeaderColor,
		}),
		text.NewCol(3, fmt.Sprintf("%d", data.Completed), props.Text{
			Style: fontstyle.Bold,
			Size:  12,
			Align: align.Right,
			Color: &pdfHeaderColor,
		}),
	)
	m.AddRow(8,
		text.NewCol(9, "Current / longest streak", props.Text{Size: 10, Color: &pdfMutedColor}),
		text.NewCol(3, fmt.Sprintf("%d / %d", data.Current, data.Longest), props.Text{
			Size:  10,
			Align: align.Right,
			Color: &pdfMutedColor,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return fmt.Errorf("generating PDF: %w", err)
	}

	return doc.Save(outputPath)
}

func pdfDayStatus(d tracker.ExportDay) (string, *props.Color) {
	switch {
	case d.Completed:
		return "done", &pdfDoneColor
	case d.Missed:
		return "missed", &pdfMissedColor
	}
	return "-", &pdfMutedColor
}

// exportRangeLabel returns "May 2024" or "May 2024 - July 2024".
func exportRangeLabel(data tracker.ExportData) string {
	if len(data.Months) == 0 {
		return ""
	}
	first := monthTitle(data.Months[0].Month)
	if len(data.Months) == 1 {
		return first
	}
	return first + " - " + monthTitle(data.Months[len(data.Months)-1].Month)
}
