package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "agendaviva/contexts/agenda/scheduling-service/application"
	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
	"agendaviva/contexts/agenda/scheduling-service/ports"
)

type CreateEventCommand struct {
	Title        string
	Description  string
	Responsible  string
	StartsAt     time.Time
	EndsAt       time.Time
	CreatedBy    string
	ChurchID     string
	ResourceID   string
	AllDay       bool
	DepartmentID string
	OrganID      string
}

type CreateEventUseCase struct {
	Events      ports.EventRepository
	Booking     *application.BookingLock
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateEventUseCase) Execute(ctx context.Context, cmd CreateEventCommand) (entities.Event, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	eventID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Event{}, err
	}

	event := entities.Event{
		EventID:      eventID,
		Title:        strings.TrimSpace(cmd.Title),
		Description:  strings.TrimSpace(cmd.Description),
		Responsible:  strings.TrimSpace(cmd.Responsible),
		StartsAt:     cmd.StartsAt.UTC(),
		EndsAt:       cmd.EndsAt.UTC(),
		CreatedBy:    strings.TrimSpace(cmd.CreatedBy),
		ChurchID:     strings.TrimSpace(cmd.ChurchID),
		ResourceID:   strings.TrimSpace(cmd.ResourceID),
		AllDay:       cmd.AllDay,
		DepartmentID: strings.TrimSpace(cmd.DepartmentID),
		OrganID:      strings.TrimSpace(cmd.OrganID),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if event.Title == "" || event.ChurchID == "" {
		return entities.Event{}, domainerrors.ErrInvalidEventInput
	}
	if !event.ValidateBasics() {
		return entities.Event{}, domainerrors.ErrInvalidEventPeriod
	}

	unlock := uc.Booking.Lock(event.ChurchID, event.ResourceID)
	defer unlock()

	existing, err := uc.Events.ListEvents(ctx, ports.EventFilter{ChurchID: event.ChurchID})
	if err != nil {
		return entities.Event{}, err
	}
	if other, found := entities.FindConflict(event, existing, ""); found {
		return entities.Event{}, domainerrors.ScheduleConflictError{
			ConflictingEventID: other.EventID,
			ConflictingTitle:   other.Title,
		}
	}

	if err := uc.Events.CreateEvent(ctx, event); err != nil {
		return entities.Event{}, err
	}

	logger.Info("event created",
		"event", "event_created",
		"module", "agenda/scheduling-service",
		"layer", "application",
		"event_id", event.EventID,
		"church_id", event.ChurchID,
		"resource_identity", entities.ResourceIdentity(event.ResourceID),
	)
	return event, nil
}
