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

// UpdateEventCommand applies a partial replace: nil fields keep the stored
// value.
type UpdateEventCommand struct {
	EventID      string
	Title        *string
	Description  *string
	Responsible  *string
	StartsAt     *time.Time
	EndsAt       *time.Time
	ChurchID     *string
	ResourceID   *string
	AllDay       *bool
	DepartmentID *string
	OrganID      *string
}

type UpdateEventUseCase struct {
	Events  ports.EventRepository
	Booking *application.BookingLock
	Clock   ports.Clock
	Logger  *slog.Logger
}

func (uc UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (entities.Event, error) {
	logger := application.ResolveLogger(uc.Logger)

	current, err := uc.Events.GetEvent(ctx, strings.TrimSpace(cmd.EventID))
	if err != nil {
		return entities.Event{}, err
	}

	edited := current
	if cmd.Title != nil {
		edited.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		edited.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.Responsible != nil {
		edited.Responsible = strings.TrimSpace(*cmd.Responsible)
	}
	if cmd.StartsAt != nil {
		edited.StartsAt = cmd.StartsAt.UTC()
	}
	if cmd.EndsAt != nil {
		edited.EndsAt = cmd.EndsAt.UTC()
	}
	if cmd.ChurchID != nil {
		edited.ChurchID = strings.TrimSpace(*cmd.ChurchID)
	}
	if cmd.ResourceID != nil {
		edited.ResourceID = strings.TrimSpace(*cmd.ResourceID)
	}
	if cmd.AllDay != nil {
		edited.AllDay = *cmd.AllDay
	}
	if cmd.DepartmentID != nil {
		edited.DepartmentID = strings.TrimSpace(*cmd.DepartmentID)
	}
	if cmd.OrganID != nil {
		edited.OrganID = strings.TrimSpace(*cmd.OrganID)
	}

	if edited.Title == "" || edited.ChurchID == "" {
		return entities.Event{}, domainerrors.ErrInvalidEventInput
	}
	if !edited.ValidateBasics() {
		return entities.Event{}, domainerrors.ErrInvalidEventPeriod
	}

	// Lock the destination pair; that is the slot whose double-booking the
	// conflict check prevents.
	unlock := uc.Booking.Lock(edited.ChurchID, edited.ResourceID)
	defer unlock()

	existing, err := uc.Events.ListEvents(ctx, ports.EventFilter{ChurchID: edited.ChurchID})
	if err != nil {
		return entities.Event{}, err
	}
	if other, found := entities.FindConflict(edited, existing, edited.EventID); found {
		return entities.Event{}, domainerrors.ScheduleConflictError{
			ConflictingEventID: other.EventID,
			ConflictingTitle:   other.Title,
		}
	}

	edited.UpdatedAt = uc.Clock.Now().UTC()
	if err := uc.Events.UpdateEvent(ctx, edited); err != nil {
		return entities.Event{}, err
	}

	logger.Info("event updated",
		"event", "event_updated",
		"module", "agenda/scheduling-service",
		"layer", "application",
		"event_id", edited.EventID,
		"church_id", edited.ChurchID,
	)
	return edited, nil
}
