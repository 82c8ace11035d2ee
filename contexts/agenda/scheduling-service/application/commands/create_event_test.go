package commands

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"agendaviva/contexts/agenda/scheduling-service/adapters/memory"
	postgresadapter "agendaviva/contexts/agenda/scheduling-service/adapters/postgres"
	application "agendaviva/contexts/agenda/scheduling-service/application"
	domainerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
)

func newCreateUseCase(store *memory.Store) CreateEventUseCase {
	return CreateEventUseCase{
		Events:      store,
		Booking:     application.NewBookingLock(),
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}
}

func june(day, hour, minute int) time.Time {
	return time.Date(2024, time.June, day, hour, minute, 0, 0, time.UTC)
}

func TestCreateEventRejectsMissingFields(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	_, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:    "  ",
		ChurchID: "church-1",
		StartsAt: june(10, 10, 0),
		EndsAt:   june(10, 11, 0),
	})
	if !errors.Is(err, domainerrors.ErrInvalidEventInput) {
		t.Fatalf("expected ErrInvalidEventInput, got %v", err)
	}
}

func TestCreateEventRejectsInvertedPeriod(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	_, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:    "Worship",
		ChurchID: "church-1",
		StartsAt: june(10, 11, 0),
		EndsAt:   june(10, 10, 0),
	})
	if !errors.Is(err, domainerrors.ErrInvalidEventPeriod) {
		t.Fatalf("expected ErrInvalidEventPeriod, got %v", err)
	}
}

func TestCreateEventDetectsConflictAndAllowsBackToBack(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	first, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:      "Choir rehearsal",
		ChurchID:   "church-1",
		ResourceID: "room-1",
		StartsAt:   june(10, 10, 0),
		EndsAt:     june(10, 11, 0),
	})
	if err != nil {
		t.Fatalf("first create failed: %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateEventCommand{
		Title:      "Prayer meeting",
		ChurchID:   "church-1",
		ResourceID: "room-1",
		StartsAt:   june(10, 10, 30),
		EndsAt:     june(10, 11, 30),
	})
	if !errors.Is(err, domainerrors.ErrScheduleConflict) {
		t.Fatalf("expected schedule conflict, got %v", err)
	}
	var conflict domainerrors.ScheduleConflictError
	if !errors.As(err, &conflict) {
		t.Fatalf("expected ScheduleConflictError, got %T", err)
	}
	if conflict.ConflictingEventID != first.EventID || conflict.ConflictingTitle != "Choir rehearsal" {
		t.Fatalf("conflict must name the colliding event, got %+v", conflict)
	}

	if _, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:      "Prayer meeting",
		ChurchID:   "church-1",
		ResourceID: "room-1",
		StartsAt:   june(10, 11, 0),
		EndsAt:     june(10, 12, 0),
	}); err != nil {
		t.Fatalf("back-to-back booking must be accepted, got %v", err)
	}
}

func TestCreateEventImplicitMainSpaceConflicts(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	if _, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:    "Service",
		ChurchID: "church-1",
		StartsAt: june(10, 9, 0),
		EndsAt:   june(10, 12, 0),
	}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	_, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:    "Youth meeting",
		ChurchID: "church-1",
		StartsAt: june(10, 10, 0),
		EndsAt:   june(10, 11, 0),
	})
	if !errors.Is(err, domainerrors.ErrScheduleConflict) {
		t.Fatalf("events without a resource share the main space, got %v", err)
	}
}

func TestCreateEventSerializesCompetingWrites(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	const attempts = 16
	var wg sync.WaitGroup
	results := make(chan error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := uc.Execute(context.Background(), CreateEventCommand{
				Title:      "Same slot",
				ChurchID:   "church-1",
				ResourceID: "room-1",
				StartsAt:   june(10, 10, 0),
				EndsAt:     june(10, 11, 0),
			})
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	accepted := 0
	for err := range results {
		if err == nil {
			accepted++
		} else if !errors.Is(err, domainerrors.ErrScheduleConflict) {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if accepted != 1 {
		t.Fatalf("exactly one competing create must win, got %d", accepted)
	}
}

func TestCreateEventAllDayKeepsInstantSemantics(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	if _, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:    "Conference",
		ChurchID: "church-1",
		AllDay:   true,
		StartsAt: june(10, 0, 0),
		EndsAt:   june(10, 12, 0),
	}); err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	// The all-day flag is advisory; an afternoon booking after the stored
	// end instant does not collide.
	if _, err := uc.Execute(context.Background(), CreateEventCommand{
		Title:    "Evening prayer",
		ChurchID: "church-1",
		StartsAt: june(10, 18, 0),
		EndsAt:   june(10, 19, 0),
	}); err != nil {
		t.Fatalf("expected no conflict outside the stored instants, got %v", err)
	}
}
