package workers

import (
	"context"
	"log/slog"
	"time"

	application "agendaviva/contexts/agenda/birthday-service/application"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

const ReminderTopic = "agenda.birthday.reminders"

// ReminderPayload is published for every birthday falling due within
// the reminder horizons (same day, tomorrow, one week out).
type ReminderPayload struct {
	BirthdayID string    `json:"birthdayId"`
	Name       string    `json:"name"`
	ChurchID   string    `json:"churchId"`
	Date       string    `json:"date"`
	DaysUntil  int       `json:"daysUntil"`
	TurnsAge   *int      `json:"turnsAge,omitempty"`
	ScannedAt  time.Time `json:"scannedAt"`
}

// ReminderScanner sweeps the birthday book and emits reminder events.
type ReminderScanner struct {
	Birthdays   ports.BirthdayRepository
	Publisher   ports.EventPublisher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

var reminderHorizons = map[int]bool{0: true, 1: true, 7: true}

func (j ReminderScanner) RunOnce(ctx context.Context) error {
	logger := application.ResolveLogger(j.Logger)
	now := time.Now().UTC()
	if j.Clock != nil {
		now = j.Clock.Now().UTC()
	}

	birthdays, err := j.Birthdays.ListBirthdays(ctx, ports.BirthdayFilter{})
	if err != nil {
		logger.Error("reminder sweep failed",
			"event", "birthday_reminder_sweep_failed",
			"module", "agenda/birthday-service",
			"layer", "worker",
			"error", err.Error(),
		)
		return err
	}

	published := 0
	for _, birthday := range birthdays {
		next, daysUntil := birthday.NextOccurrence(now)
		if !reminderHorizons[daysUntil] {
			continue
		}

		eventID, err := j.IDGenerator.NewID(ctx)
		if err != nil {
			return err
		}
		envelope := ports.EventEnvelope{
			EventID:        eventID,
			EventType:      "birthday.reminder",
			SourceService:  "agenda/birthday-service",
			OccurredAtUTC:  now,
			EntityType:     "birthday",
			EntityID:       birthday.BirthdayID,
			PayloadVersion: 1,
			Payload: ReminderPayload{
				BirthdayID: birthday.BirthdayID,
				Name:       birthday.Name,
				ChurchID:   birthday.ChurchID,
				Date:       next.Format("2006-01-02"),
				DaysUntil:  daysUntil,
				TurnsAge:   birthday.Age(next),
				ScannedAt:  now,
			},
		}
		if err := j.Publisher.Publish(ctx, ReminderTopic, envelope); err != nil {
			return err
		}
		published++
	}

	if published > 0 {
		logger.Info("reminder sweep completed",
			"event", "birthday_reminder_sweep_completed",
			"module", "agenda/birthday-service",
			"layer", "worker",
			"published_count", published,
		)
	}
	return nil
}
