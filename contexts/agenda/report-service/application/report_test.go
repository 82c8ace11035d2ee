package application

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	domainerrors "agendaviva/contexts/agenda/report-service/domain/errors"
	"agendaviva/contexts/agenda/report-service/ports"
)

type staticAgenda struct {
	items []ports.AgendaItem
}

func (s staticAgenda) OccurrencesInRange(_ context.Context, from, to time.Time, churchID string) ([]ports.AgendaItem, error) {
	result := make([]ports.AgendaItem, 0, len(s.items))
	for _, item := range s.items {
		if churchID != "" && item.ChurchID != churchID {
			continue
		}
		if item.Date.Before(from) || !item.Date.Before(to) {
			continue
		}
		result = append(result, item)
	}
	return result, nil
}

func juneAgenda() staticAgenda {
	return staticAgenda{items: []ports.AgendaItem{
		{
			Kind:     "event",
			Date:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			SourceID: "e-1",
			Label:    "Choir rehearsal",
			ChurchID: "church-1",
			StartsAt: time.Date(2024, time.June, 10, 19, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2024, time.June, 10, 21, 0, 0, 0, time.UTC),
		},
		{
			Kind:     "birthday",
			Date:     time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
			SourceID: "b-1",
			Label:    "Ana Silva",
			ChurchID: "church-1",
		},
	}}
}

func TestRenderCalendarListLayout(t *testing.T) {
	uc := RenderCalendarUseCase{Agenda: juneAgenda()}

	html, err := uc.Execute(context.Background(), RenderCalendarRequest{
		Period: PeriodMonthly,
		Layout: LayoutList,
		Year:   2024,
		Month:  6,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	for _, want := range []string{"June 2024", "2024-06-10", "Choir rehearsal", "Ana Silva", "19:00"} {
		if !strings.Contains(html, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderCalendarGridLayout(t *testing.T) {
	uc := RenderCalendarUseCase{Agenda: juneAgenda()}

	html, err := uc.Execute(context.Background(), RenderCalendarRequest{
		Period: PeriodMonthly,
		Layout: LayoutCalendar,
		Year:   2024,
		Month:  6,
	})
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if !strings.Contains(html, `<table class="grid">`) {
		t.Error("grid layout must render a table")
	}
	if !strings.Contains(html, "Choir rehearsal") || !strings.Contains(html, "Ana Silva") {
		t.Error("grid cells must carry the day's entries")
	}
}

func TestRenderCalendarIsDeterministic(t *testing.T) {
	uc := RenderCalendarUseCase{Agenda: juneAgenda()}
	req := RenderCalendarRequest{Period: PeriodAnnual, Year: 2024}

	first, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	second, err := uc.Execute(context.Background(), req)
	if err != nil {
		t.Fatalf("render failed: %v", err)
	}
	if first != second {
		t.Fatal("two renders of the same request must be identical")
	}
}

func TestRenderCalendarRejectsBadRequests(t *testing.T) {
	uc := RenderCalendarUseCase{Agenda: juneAgenda()}

	cases := []RenderCalendarRequest{
		{Period: "weekly", Year: 2024, Month: 6},
		{Period: PeriodMonthly, Year: 2024, Month: 13},
		{Period: PeriodMonthly, Year: 0, Month: 6},
		{Period: PeriodMonthly, Layout: "poster", Year: 2024, Month: 6},
	}
	for _, req := range cases {
		if _, err := uc.Execute(context.Background(), req); !errors.Is(err, domainerrors.ErrInvalidReportRequest) {
			t.Errorf("request %+v must be rejected, got %v", req, err)
		}
	}
}

func TestExportICSMixesTimedAndAllDay(t *testing.T) {
	uc := ExportICSUseCase{Agenda: juneAgenda()}

	feed, err := uc.Execute(context.Background(), ExportICSRequest{
		From: time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.Contains(feed, "BEGIN:VCALENDAR") || !strings.Contains(feed, "END:VCALENDAR") {
		t.Fatal("feed must be a calendar")
	}
	if strings.Count(feed, "BEGIN:VEVENT") != 2 {
		t.Fatalf("expected two events, got feed:\n%s", feed)
	}
	if !strings.Contains(feed, "SUMMARY:Choir rehearsal") || !strings.Contains(feed, "SUMMARY:Ana Silva") {
		t.Fatal("feed must carry both occurrence labels")
	}
	// Birthday entries are date-only.
	if !strings.Contains(feed, "VALUE=DATE") {
		t.Fatal("birthday entry must be all-day")
	}
}

func TestExportICSRejectsEmptyRange(t *testing.T) {
	uc := ExportICSUseCase{Agenda: juneAgenda()}

	_, err := uc.Execute(context.Background(), ExportICSRequest{
		From: time.Date(2024, time.July, 1, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domainerrors.ErrInvalidReportRequest) {
		t.Fatalf("inverted range must be rejected, got %v", err)
	}
}
