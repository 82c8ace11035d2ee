package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"agendaviva/contexts/agenda/birthday-service/adapters/memory"
	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func intPtr(v int) *int {
	return &v
}

func seedStore() *memory.Store {
	return memory.NewStore([]entities.Birthday{
		{BirthdayID: "b-1", Name: "Ana", Day: 15, Month: 6, BirthYear: intPtr(1980), ChurchID: "church-1", Notes: "choir"},
		{BirthdayID: "b-2", Name: "Bruno", Day: 2, Month: 6, ChurchID: "church-2"},
		{BirthdayID: "b-3", Name: "Clara", Day: 29, Month: 2, BirthYear: intPtr(1996), ChurchID: "church-1"},
		{BirthdayID: "b-4", Name: "Davi", Day: 20, Month: 12, ChurchID: "church-1"},
	})
}

func TestListBirthdaysFiltersByChurchAndMonth(t *testing.T) {
	uc := ListBirthdaysUseCase{Birthdays: seedStore()}

	items, err := uc.Execute(context.Background(), ListBirthdaysQuery{ChurchID: "church-1", Month: 6})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(items) != 1 || items[0].BirthdayID != "b-1" {
		t.Fatalf("expected only Ana, got %+v", items)
	}

	if _, err := uc.Execute(context.Background(), ListBirthdaysQuery{Month: 13}); !errors.Is(err, domainerrors.ErrInvalidMonth) {
		t.Fatalf("month 13 must be rejected, got %v", err)
	}
}

func TestBirthdaysInMonthOmitsPrivateFields(t *testing.T) {
	uc := BirthdaysInMonthUseCase{Birthdays: seedStore()}

	entries, err := uc.Execute(context.Background(), BirthdaysInMonthQuery{Month: 6})
	if err != nil {
		t.Fatalf("month query failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected two june birthdays, got %d", len(entries))
	}
	// Sorted by day within the month.
	if entries[0].Name != "Bruno" || entries[1].Name != "Ana" {
		t.Fatalf("unexpected order: %+v", entries)
	}
}

func TestBirthdaysInMonthRejectsInvalidMonth(t *testing.T) {
	uc := BirthdaysInMonthUseCase{Birthdays: seedStore()}

	if _, err := uc.Execute(context.Background(), BirthdaysInMonthQuery{Month: 0}); !errors.Is(err, domainerrors.ErrInvalidMonth) {
		t.Fatalf("expected ErrInvalidMonth, got %v", err)
	}
}

func TestUpcomingBirthdaysOrdersByDaysUntil(t *testing.T) {
	uc := UpcomingBirthdaysUseCase{
		Birthdays: seedStore(),
		Clock:     fixedClock{now: time.Date(2024, time.June, 1, 12, 0, 0, 0, time.UTC)},
	}

	entries, err := uc.Execute(context.Background(), UpcomingBirthdaysQuery{WithinDays: 30})
	if err != nil {
		t.Fatalf("upcoming query failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected Bruno and Ana within 30 days, got %+v", entries)
	}
	if entries[0].Name != "Bruno" || entries[0].DaysUntil != 1 {
		t.Fatalf("expected Bruno first at 1 day, got %+v", entries[0])
	}
	if entries[1].Name != "Ana" || entries[1].DaysUntil != 14 {
		t.Fatalf("expected Ana at 14 days, got %+v", entries[1])
	}
	if entries[1].TurnsAge == nil || *entries[1].TurnsAge != 44 {
		t.Fatalf("Ana turns 44 in 2024, got %+v", entries[1].TurnsAge)
	}
	if entries[0].TurnsAge != nil {
		t.Fatalf("no birth year means no age, got %+v", entries[0].TurnsAge)
	}
}

func TestUpcomingBirthdaysSkipsLeapDayInCommonYears(t *testing.T) {
	store := memory.NewStore([]entities.Birthday{
		{BirthdayID: "b-3", Name: "Clara", Day: 29, Month: 2, ChurchID: "church-1"},
	})

	// From early February 2023 the next leap day is over a year away.
	uc := UpcomingBirthdaysUseCase{
		Birthdays: store,
		Clock:     fixedClock{now: time.Date(2023, time.February, 1, 0, 0, 0, 0, time.UTC)},
	}
	entries, err := uc.Execute(context.Background(), UpcomingBirthdaysQuery{WithinDays: 60})
	if err != nil {
		t.Fatalf("upcoming query failed: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("february 29 must not occur in 2023, got %+v", entries)
	}

	// From the same date in 2024 it lands within the month.
	uc.Clock = fixedClock{now: time.Date(2024, time.February, 1, 0, 0, 0, 0, time.UTC)}
	entries, err = uc.Execute(context.Background(), UpcomingBirthdaysQuery{WithinDays: 60})
	if err != nil {
		t.Fatalf("upcoming query failed: %v", err)
	}
	if len(entries) != 1 || entries[0].DaysUntil != 28 {
		t.Fatalf("expected leap day 28 days out, got %+v", entries)
	}
}
