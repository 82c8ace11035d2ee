package application

import (
	"context"
	"html/template"
	"log/slog"
	"strings"
	"time"

	domainerrors "agendaviva/contexts/agenda/report-service/domain/errors"
	"agendaviva/contexts/agenda/report-service/ports"
)

const (
	LayoutList     = "list"
	LayoutCalendar = "calendar"

	PeriodMonthly = "monthly"
	PeriodAnnual  = "annual"
)

type RenderCalendarRequest struct {
	Period   string
	Layout   string
	Year     int
	Month    int
	ChurchID string
}

type RenderCalendarUseCase struct {
	Agenda ports.AgendaProvider
	Logger *slog.Logger
}

// Execute renders the requested period as a printable HTML document.
// The output is fully determined by the occurrence stream.
func (uc RenderCalendarUseCase) Execute(ctx context.Context, req RenderCalendarRequest) (string, error) {
	logger := resolveLogger(uc.Logger)

	if req.Layout == "" {
		req.Layout = LayoutList
	}
	if req.Layout != LayoutList && req.Layout != LayoutCalendar {
		return "", domainerrors.ErrInvalidReportRequest
	}
	if req.Period != PeriodMonthly && req.Period != PeriodAnnual {
		return "", domainerrors.ErrInvalidReportRequest
	}
	if req.Year < 1 {
		return "", domainerrors.ErrInvalidReportRequest
	}
	if req.Period == PeriodMonthly && (req.Month < 1 || req.Month > 12) {
		return "", domainerrors.ErrInvalidReportRequest
	}

	from, to := reportRange(req)
	items, err := uc.Agenda.OccurrencesInRange(ctx, from, to, req.ChurchID)
	if err != nil {
		return "", err
	}

	page := calendarPage{
		Title:    pageTitle(req),
		Layout:   req.Layout,
		Calendar: req.Layout == LayoutCalendar,
	}
	months := monthsOf(req)
	for _, month := range months {
		page.Months = append(page.Months, buildMonthSection(req.Year, month, req.Layout, items))
	}

	var out strings.Builder
	if err := calendarTemplate.Execute(&out, page); err != nil {
		return "", err
	}

	logger.Info("calendar report rendered",
		"event", "calendar_report_rendered",
		"module", "agenda/report-service",
		"layer", "application",
		"period", req.Period,
		"layout", req.Layout,
		"item_count", len(items),
	)
	return out.String(), nil
}

func reportRange(req RenderCalendarRequest) (time.Time, time.Time) {
	if req.Period == PeriodMonthly {
		from := time.Date(req.Year, time.Month(req.Month), 1, 0, 0, 0, 0, time.UTC)
		return from, from.AddDate(0, 1, 0)
	}
	from := time.Date(req.Year, time.January, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(1, 0, 0)
}

func monthsOf(req RenderCalendarRequest) []int {
	if req.Period == PeriodMonthly {
		return []int{req.Month}
	}
	months := make([]int, 12)
	for i := range months {
		months[i] = i + 1
	}
	return months
}

func pageTitle(req RenderCalendarRequest) string {
	if req.Period == PeriodMonthly {
		return monthName(req.Month) + " " + formatYear(req.Year)
	}
	return "Agenda " + formatYear(req.Year)
}

type calendarPage struct {
	Title    string
	Layout   string
	Calendar bool
	Months   []monthSection
}

type monthSection struct {
	Name  string
	Days  []daySection
	Weeks [][]dayCell
}

type daySection struct {
	Label   string
	Entries []entryLine
}

type dayCell struct {
	Day     int
	Entries []entryLine
}

type entryLine struct {
	Kind  string
	Label string
	Time  string
}

func buildMonthSection(year, month int, layout string, items []ports.AgendaItem) monthSection {
	section := monthSection{Name: monthName(month)}

	byDay := make(map[int][]entryLine)
	for _, item := range items {
		if item.Date.Year() != year || int(item.Date.Month()) != month {
			continue
		}
		byDay[item.Date.Day()] = append(byDay[item.Date.Day()], entryLine{
			Kind:  item.Kind,
			Label: item.Label,
			Time:  entryTime(item),
		})
	}

	if layout == LayoutCalendar {
		section.Weeks = monthGrid(year, month, byDay)
		return section
	}

	daysInMonth := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, -1).Day()
	for day := 1; day <= daysInMonth; day++ {
		entries, any := byDay[day]
		if !any {
			continue
		}
		section.Days = append(section.Days, daySection{
			Label:   formatDate(year, month, day),
			Entries: entries,
		})
	}
	return section
}

// monthGrid lays the month out as Sunday-first weeks; cells outside the
// month carry Day 0 and render empty.
func monthGrid(year, month int, byDay map[int][]entryLine) [][]dayCell {
	first := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()

	var weeks [][]dayCell
	week := make([]dayCell, 0, 7)
	for i := 0; i < int(first.Weekday()); i++ {
		week = append(week, dayCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		week = append(week, dayCell{Day: day, Entries: byDay[day]})
		if len(week) == 7 {
			weeks = append(weeks, week)
			week = make([]dayCell, 0, 7)
		}
	}
	if len(week) > 0 {
		for len(week) < 7 {
			week = append(week, dayCell{})
		}
		weeks = append(weeks, week)
	}
	return weeks
}

func entryTime(item ports.AgendaItem) string {
	if item.Kind != "event" || item.AllDay {
		return ""
	}
	return item.StartsAt.UTC().Format("15:04") + "–" + item.EndsAt.UTC().Format("15:04")
}

func formatDate(year, month, day int) string {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

func formatYear(year int) string {
	return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).Format("2006")
}

func monthName(month int) string {
	return time.Month(month).String()
}

var calendarTemplate = template.Must(template.New("calendar").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; margin: 2rem; }
h1 { font-size: 1.4rem; }
h2 { font-size: 1.1rem; margin-top: 1.5rem; }
table.grid { border-collapse: collapse; width: 100%; table-layout: fixed; }
table.grid td { border: 1px solid #999; vertical-align: top; height: 5rem; padding: 2px; }
td .daynum { font-weight: bold; }
ul { margin: 0.2rem 0; padding-left: 1.2rem; }
li.birthday { color: #06660f; }
.time { color: #555; font-size: 0.85em; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{range .Months}}
<h2>{{.Name}}</h2>
{{if $.Calendar}}
<table class="grid">
{{range .Weeks}}<tr>
{{range .}}<td>{{if .Day}}<span class="daynum">{{.Day}}</span><ul>{{range .Entries}}<li class="{{.Kind}}">{{.Label}}{{if .Time}} <span class="time">{{.Time}}</span>{{end}}</li>{{end}}</ul>{{end}}</td>
{{end}}</tr>
{{end}}
</table>
{{else}}
{{range .Days}}
<h3>{{.Label}}</h3>
<ul>
{{range .Entries}}<li class="{{.Kind}}">{{.Label}}{{if .Time}} <span class="time">{{.Time}}</span>{{end}}</li>
{{end}}</ul>
{{end}}
{{end}}
{{end}}
</body>
</html>
`))

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
