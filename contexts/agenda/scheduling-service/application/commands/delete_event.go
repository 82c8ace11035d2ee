package commands

import (
	"context"
	"log/slog"
	"strings"

	application "agendaviva/contexts/agenda/scheduling-service/application"
	"agendaviva/contexts/agenda/scheduling-service/ports"
)

type DeleteEventUseCase struct {
	Events ports.EventRepository
	Logger *slog.Logger
}

func (uc DeleteEventUseCase) Execute(ctx context.Context, eventID string) error {
	logger := application.ResolveLogger(uc.Logger)

	if err := uc.Events.DeleteEvent(ctx, strings.TrimSpace(eventID)); err != nil {
		return err
	}

	logger.Info("event deleted",
		"event", "event_deleted",
		"module", "agenda/scheduling-service",
		"layer", "application",
		"event_id", eventID,
	)
	return nil
}
