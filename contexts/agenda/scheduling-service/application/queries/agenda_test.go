package queries

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"agendaviva/contexts/agenda/scheduling-service/adapters/memory"
	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
	"agendaviva/contexts/agenda/scheduling-service/ports"
)

type staticBirthdays struct {
	items []ports.BirthdaySnapshot
}

func (p staticBirthdays) BirthdaySnapshots(_ context.Context, churchID string) ([]ports.BirthdaySnapshot, error) {
	if churchID == "" {
		return p.items, nil
	}
	var filtered []ports.BirthdaySnapshot
	for _, item := range p.items {
		if item.ChurchID == churchID {
			filtered = append(filtered, item)
		}
	}
	return filtered, nil
}

func seedEvents() []entities.Event {
	return []entities.Event{
		{
			EventID:  "evt-1",
			Title:    "Morning service",
			ChurchID: "church-1",
			StartsAt: time.Date(2024, time.June, 10, 9, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2024, time.June, 10, 11, 0, 0, 0, time.UTC),
		},
		{
			EventID:  "evt-2",
			Title:    "Youth meeting",
			ChurchID: "church-1",
			StartsAt: time.Date(2024, time.June, 15, 19, 0, 0, 0, time.UTC),
			EndsAt:   time.Date(2024, time.June, 15, 21, 0, 0, 0, time.UTC),
		},
	}
}

func newAgenda(events []entities.Event, birthdays []ports.BirthdaySnapshot) AgendaUseCase {
	return AgendaUseCase{
		Events:    memory.NewStore(events),
		Birthdays: staticBirthdays{items: birthdays},
	}
}

func TestAgendaMergesEventsAndBirthdays(t *testing.T) {
	agenda := newAgenda(seedEvents(), []ports.BirthdaySnapshot{
		{BirthdayID: "bd-1", Name: "Maria Silva", Day: 10, Month: 6, ChurchID: "church-1"},
		{BirthdayID: "bd-2", Name: "João Santos", Day: 20, Month: 6, ChurchID: "church-1"},
	})

	items, err := agenda.ExecuteMonth(context.Background(), 2024, 6, "")
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	if len(items) != 4 {
		t.Fatalf("expected 4 occurrences, got %d", len(items))
	}

	// June 10 holds both an event and a birthday; the event sorts first.
	if items[0].Kind != entities.OccurrenceKindEvent || items[0].SourceID != "evt-1" {
		t.Fatalf("expected evt-1 first, got %+v", items[0])
	}
	if items[1].Kind != entities.OccurrenceKindBirthday || items[1].SourceID != "bd-1" {
		t.Fatalf("expected bd-1 second, got %+v", items[1])
	}
	if items[2].SourceID != "evt-2" || items[3].SourceID != "bd-2" {
		t.Fatalf("expected evt-2 then bd-2, got %s then %s", items[2].SourceID, items[3].SourceID)
	}
}

func TestAgendaIsDeterministic(t *testing.T) {
	agenda := newAgenda(seedEvents(), []ports.BirthdaySnapshot{
		{BirthdayID: "bd-1", Name: "Maria Silva", Day: 10, Month: 6, ChurchID: "church-1"},
		{BirthdayID: "bd-3", Name: "Ana Costa", Day: 10, Month: 6, ChurchID: "church-1"},
	})

	first, err := agenda.ExecuteMonth(context.Background(), 2024, 6, "")
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	second, err := agenda.ExecuteMonth(context.Background(), 2024, 6, "")
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("two identical queries must yield identical ordered output")
	}
}

func TestAgendaSkipsLeapDayInNonLeapYears(t *testing.T) {
	agenda := newAgenda(nil, []ports.BirthdaySnapshot{
		{BirthdayID: "bd-leap", Name: "Leap Person", Day: 29, Month: 2},
	})

	none, err := agenda.ExecuteMonth(context.Background(), 2023, 2, "")
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("Feb 29 must not appear in 2023, got %d occurrences", len(none))
	}

	leap, err := agenda.ExecuteMonth(context.Background(), 2024, 2, "")
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	if len(leap) != 1 || leap[0].Date.Day() != 29 {
		t.Fatalf("expected the 2024-02-29 occurrence, got %+v", leap)
	}
}

func TestAgendaYearBoundaryRange(t *testing.T) {
	agenda := newAgenda(nil, []ports.BirthdaySnapshot{
		{BirthdayID: "bd-jan", Name: "January Person", Day: 15, Month: 1},
	})

	items, err := agenda.Execute(context.Background(), AgendaQuery{
		From: time.Date(2024, time.December, 20, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2025, time.January, 20, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one occurrence across the year boundary, got %d", len(items))
	}
	if got := items[0].Date.Format("2006-01-02"); got != "2025-01-15" {
		t.Fatalf("expected 2025-01-15, got %s", got)
	}
}

func TestAgendaFiltersByChurch(t *testing.T) {
	agenda := newAgenda(seedEvents(), []ports.BirthdaySnapshot{
		{BirthdayID: "bd-1", Name: "Maria Silva", Day: 10, Month: 6, ChurchID: "church-2"},
	})

	items, err := agenda.ExecuteMonth(context.Background(), 2024, 6, "church-1")
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	for _, item := range items {
		if item.ChurchID != "church-1" {
			t.Fatalf("unexpected church in scoped agenda: %+v", item)
		}
	}
}

func TestAgendaRejectsInvalidRange(t *testing.T) {
	agenda := newAgenda(nil, nil)

	_, err := agenda.Execute(context.Background(), AgendaQuery{
		From: time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		To:   time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
	})
	if !errors.Is(err, domainerrors.ErrInvalidAgendaRange) {
		t.Fatalf("expected ErrInvalidAgendaRange, got %v", err)
	}

	if _, err := agenda.ExecuteMonth(context.Background(), 2024, 13, ""); !errors.Is(err, domainerrors.ErrInvalidAgendaRange) {
		t.Fatalf("expected ErrInvalidAgendaRange for month 13, got %v", err)
	}
}
