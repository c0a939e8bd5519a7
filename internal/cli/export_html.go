package cli

import (
	"bytes"
	"html/template"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/Flyrell/willpower/internal/day"
	"github.com/Flyrell/willpower/internal/tracker"
)

// notesMarkdown renders user notes. Raw HTML in notes is escaped.
var notesMarkdown = goldmark.New(
	goldmark.WithExtensions(
		extension.Linkify,
		extension.Strikethrough,
	),
	goldmark.WithRendererOptions(
		html.WithHardWraps(),
	),
)

type htmlDay struct {
	Label  string
	Status string
	Notes  template.HTML
}

type htmlMonth struct {
	Title     string
	Completed int
	Missed    int
	Days      []htmlDay
}

type htmlJournal struct {
	Habit     string
	Range     string
	Generated string
	Completed int
	Current   int
	Longest   int
	Months    []htmlMonth
}

var journalTemplate = template.Must(template.New("journal").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Habit}} · {{.Range}}</title>
<style>
body { font-family: -apple-system, system-ui, sans-serif; max-width: 720px; margin: 2rem auto; color: #323232; }
h1 { margin-bottom: 0; }
.muted { color: #787878; }
table { width: 100%; border-collapse: collapse; margin-bottom: 2rem; }
td { padding: .35rem .5rem; border-bottom: 1px solid #e5e5e5; vertical-align: top; }
.done { color: #22a050; }
.missed { color: #c83c3c; }
.notes p { margin: 0; }
</style>
</head>
<body>
<h1>{{.Habit}}</h1>
<p class="muted">{{.Range}} · generated {{.Generated}}</p>
<p>{{.Completed}} completed days · current streak {{.Current}} · longest streak {{.Longest}}</p>
{{range .Months}}
<h2>{{.Title}} <span class="muted">{{.Completed}} done, {{.Missed}} missed</span></h2>
<table>
{{range .Days}}<tr><td>{{.Label}}</td><td class="{{.Status}}">{{.Status}}</td><td class="notes">{{.Notes}}</td></tr>
{{end}}</table>
{{end}}
</body>
</html>
`))

// renderExportHTML writes the journal as a standalone HTML page with notes
// rendered from Markdown.
func renderExportHTML(w io.Writer, data tracker.ExportData) error {
	page := htmlJournal{
		Habit:     data.HabitName,
		Range:     exportRangeLabel(data),
		Generated: data.Generated.String(),
		Completed: data.Completed,
		Current:   data.Current,
		Longest:   data.Longest,
	}

	for _, m := range data.Months {
		hm := htmlMonth{Title: monthTitle(m.Month), Completed: m.Completed, Missed: m.Missed}
		for _, d := range m.Days {
			notes, err := renderNotes(d.Notes)
			if err != nil {
				return err
			}
			status, _ := pdfDayStatus(d)
			hm.Days = append(hm.Days, htmlDay{
				Label:  d.Date.String() + " " + day.Weekday(d.Date).String()[:3],
				Status: status,
				Notes:  notes,
			})
		}
		page.Months = append(page.Months, hm)
	}

	return journalTemplate.Execute(w, page)
}

func renderNotes(notes string) (template.HTML, error) {
	if notes == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := notesMarkdown.Convert([]byte(notes), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}
