package workers

import (
	"context"
	"testing"
	"time"

	"agendaviva/contexts/agenda/birthday-service/adapters/memory"
	postgresadapter "agendaviva/contexts/agenda/birthday-service/adapters/postgres"
	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type capturingPublisher struct {
	published []ports.EventEnvelope
}

func (p *capturingPublisher) Publish(_ context.Context, _ string, event ports.EventEnvelope) error {
	p.published = append(p.published, event)
	return nil
}

func TestReminderScannerPublishesOnlyAtHorizons(t *testing.T) {
	store := memory.NewStore([]entities.Birthday{
		{BirthdayID: "b-today", Name: "Ana", Day: 10, Month: 6, ChurchID: "church-1"},
		{BirthdayID: "b-tomorrow", Name: "Bruno", Day: 11, Month: 6, ChurchID: "church-1"},
		{BirthdayID: "b-week", Name: "Clara", Day: 17, Month: 6, ChurchID: "church-1"},
		{BirthdayID: "b-far", Name: "Davi", Day: 25, Month: 6, ChurchID: "church-1"},
		{BirthdayID: "b-near", Name: "Eva", Day: 13, Month: 6, ChurchID: "church-1"},
	})
	publisher := &capturingPublisher{}

	job := ReminderScanner{
		Birthdays:   store,
		Publisher:   publisher,
		Clock:       fixedClock{now: time.Date(2024, time.June, 10, 7, 0, 0, 0, time.UTC)},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}

	if len(publisher.published) != 3 {
		t.Fatalf("expected reminders for 0, 1 and 7 days out, got %d", len(publisher.published))
	}
	seen := map[string]int{}
	for _, envelope := range publisher.published {
		if envelope.EventType != "birthday.reminder" {
			t.Fatalf("unexpected event type %q", envelope.EventType)
		}
		payload, ok := envelope.Payload.(ReminderPayload)
		if !ok {
			t.Fatalf("unexpected payload type %T", envelope.Payload)
		}
		seen[payload.BirthdayID] = payload.DaysUntil
	}
	want := map[string]int{"b-today": 0, "b-tomorrow": 1, "b-week": 7}
	for id, days := range want {
		if got, ok := seen[id]; !ok || got != days {
			t.Fatalf("expected %s at %d days, got %v", id, days, seen)
		}
	}
}

func TestReminderScannerQuietWhenNothingDue(t *testing.T) {
	store := memory.NewStore([]entities.Birthday{
		{BirthdayID: "b-far", Name: "Davi", Day: 25, Month: 12, ChurchID: "church-1"},
	})
	publisher := &capturingPublisher{}

	job := ReminderScanner{
		Birthdays:   store,
		Publisher:   publisher,
		Clock:       fixedClock{now: time.Date(2024, time.June, 10, 7, 0, 0, 0, time.UTC)},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}
	if err := job.RunOnce(context.Background()); err != nil {
		t.Fatalf("sweep failed: %v", err)
	}
	if len(publisher.published) != 0 {
		t.Fatalf("expected no reminders, got %d", len(publisher.published))
	}
}
