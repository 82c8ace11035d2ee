package queries

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

type ListEventsQuery struct {
	ChurchID string
	From     *time.Time
	To       *time.Time
}

type ListEventsUseCase struct {
	Events ports.EventRepository
	Logger *slog.Logger
}

func (uc ListEventsUseCase) Execute(ctx context.Context, query ListEventsQuery) ([]entities.Event, error) {
	logger := application.ResolveLogger(uc.Logger)

	if (query.From == nil) != (query.To == nil) {
		return nil, domainerrors.ErrInvalidAgendaRange
	}
	if query.From != nil && !query.From.Before(*query.To) {
		return nil, domainerrors.ErrInvalidAgendaRange
	}

	items, err := uc.Events.ListEvents(ctx, ports.EventFilter{
		ChurchID: strings.TrimSpace(query.ChurchID),
		From:     query.From,
		To:       query.To,
	})
	if err != nil {
		return nil, err
	}

	logger.Info("events listed",
		"event", "events_listed",
		"module", "agenda/scheduling-service",
		"layer", "application",
		"count", len(items),
	)
	return items, nil
}
