package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"agendaviva/contexts/agenda/scheduling-service/application/commands"
	"agendaviva/contexts/agenda/scheduling-service/application/queries"
	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
	httptransport "agendaviva/contexts/agenda/scheduling-service/transport/http"
)

type Handler struct {
	CreateEvent commands.CreateEventUseCase
	UpdateEvent commands.UpdateEventUseCase
	DeleteEvent commands.DeleteEventUseCase
	ListEvents  queries.ListEventsUseCase
	Agenda      queries.AgendaUseCase
	Logger      *slog.Logger
}

func (h Handler) CreateEventHandler(
	ctx context.Context,
	userID string,
	req httptransport.CreateEventRequest,
) (httptransport.EventResponse, error) {
	startsAt, err := parseInstant(req.StartsAt)
	if err != nil {
		return httptransport.EventResponse{}, domainerrors.ErrInvalidEventInput
	}
	endsAt, err := parseInstant(req.EndsAt)
	if err != nil {
		return httptransport.EventResponse{}, domainerrors.ErrInvalidEventInput
	}

	event, err := h.CreateEvent.Execute(ctx, commands.CreateEventCommand{
		Title:        req.Title,
		Description:  req.Description,
		Responsible:  req.Responsible,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		CreatedBy:    userID,
		ChurchID:     req.ChurchID,
		ResourceID:   req.ResourceID,
		AllDay:       req.AllDay,
		DepartmentID: req.DepartmentID,
		OrganID:      req.OrganID,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return httptransport.EventResponse{Event: mapEvent(event)}, nil
}

func (h Handler) UpdateEventHandler(
	ctx context.Context,
	eventID string,
	req httptransport.UpdateEventRequest,
) (httptransport.EventResponse, error) {
	startsAt, err := parseOptionalInstant(req.StartsAt)
	if err != nil {
		return httptransport.EventResponse{}, domainerrors.ErrInvalidEventInput
	}
	endsAt, err := parseOptionalInstant(req.EndsAt)
	if err != nil {
		return httptransport.EventResponse{}, domainerrors.ErrInvalidEventInput
	}

	event, err := h.UpdateEvent.Execute(ctx, commands.UpdateEventCommand{
		EventID:      eventID,
		Title:        req.Title,
		Description:  req.Description,
		Responsible:  req.Responsible,
		StartsAt:     startsAt,
		EndsAt:       endsAt,
		ChurchID:     req.ChurchID,
		ResourceID:   req.ResourceID,
		AllDay:       req.AllDay,
		DepartmentID: req.DepartmentID,
		OrganID:      req.OrganID,
	})
	if err != nil {
		return httptransport.EventResponse{}, err
	}
	return httptransport.EventResponse{Event: mapEvent(event)}, nil
}

func (h Handler) DeleteEventHandler(ctx context.Context, eventID string) error {
	return h.DeleteEvent.Execute(ctx, eventID)
}

func (h Handler) ListEventsHandler(
	ctx context.Context,
	churchID string,
	from string,
	to string,
) (httptransport.ListEventsResponse, error) {
	query := queries.ListEventsQuery{ChurchID: churchID}
	if from != "" || to != "" {
		fromAt, err := parseInstant(from)
		if err != nil {
			return httptransport.ListEventsResponse{}, domainerrors.ErrInvalidAgendaRange
		}
		toAt, err := parseInstant(to)
		if err != nil {
			return httptransport.ListEventsResponse{}, domainerrors.ErrInvalidAgendaRange
		}
		query.From = &fromAt
		query.To = &toAt
	}

	items, err := h.ListEvents.Execute(ctx, query)
	if err != nil {
		return httptransport.ListEventsResponse{}, err
	}
	result := make([]httptransport.EventDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapEvent(item))
	}
	return httptransport.ListEventsResponse{Items: result}, nil
}

func (h Handler) AgendaRangeHandler(
	ctx context.Context,
	churchID string,
	from string,
	to string,
) (httptransport.AgendaResponse, error) {
	fromAt, err := parseInstant(from)
	if err != nil {
		return httptransport.AgendaResponse{}, domainerrors.ErrInvalidAgendaRange
	}
	toAt, err := parseInstant(to)
	if err != nil {
		return httptransport.AgendaResponse{}, domainerrors.ErrInvalidAgendaRange
	}

	items, err := h.Agenda.Execute(ctx, queries.AgendaQuery{
		From:     fromAt,
		To:       toAt,
		ChurchID: churchID,
	})
	if err != nil {
		return httptransport.AgendaResponse{}, err
	}
	return httptransport.AgendaResponse{Items: mapOccurrences(items)}, nil
}

func (h Handler) AgendaMonthHandler(
	ctx context.Context,
	churchID string,
	year int,
	month int,
) (httptransport.AgendaResponse, error) {
	items, err := h.Agenda.ExecuteMonth(ctx, year, month, churchID)
	if err != nil {
		return httptransport.AgendaResponse{}, err
	}
	return httptransport.AgendaResponse{Items: mapOccurrences(items)}, nil
}

func mapOccurrences(items []entities.Occurrence) []httptransport.OccurrenceDTO {
	result := make([]httptransport.OccurrenceDTO, 0, len(items))
	for _, item := range items {
		dto := httptransport.OccurrenceDTO{
			Kind:         string(item.Kind),
			Date:         item.Date.Format("2006-01-02"),
			SourceID:     item.SourceID,
			Label:        item.Label,
			ChurchID:     item.ChurchID,
			ResourceID:   item.ResourceID,
			DepartmentID: item.DepartmentID,
			OrganID:      item.OrganID,
			AllDay:       item.AllDay,
		}
		if item.Kind == entities.OccurrenceKindEvent {
			dto.StartsAt = item.StartsAt.UTC().Format(time.RFC3339)
			dto.EndsAt = item.EndsAt.UTC().Format(time.RFC3339)
		}
		result = append(result, dto)
	}
	return result
}

func mapEvent(event entities.Event) httptransport.EventDTO {
	return httptransport.EventDTO{
		EventID:      event.EventID,
		Title:        event.Title,
		Description:  event.Description,
		Responsible:  event.Responsible,
		StartsAt:     event.StartsAt.UTC().Format(time.RFC3339),
		EndsAt:       event.EndsAt.UTC().Format(time.RFC3339),
		CreatedBy:    event.CreatedBy,
		ChurchID:     event.ChurchID,
		ResourceID:   event.ResourceID,
		AllDay:       event.AllDay,
		DepartmentID: event.DepartmentID,
		OrganID:      event.OrganID,
	}
}

func parseInstant(value string) (time.Time, error) {
	return time.Parse(time.RFC3339, value)
}

func parseOptionalInstant(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
