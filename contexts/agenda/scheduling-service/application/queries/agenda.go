package queries

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	application "agendaviva/contexts/agenda/scheduling-service/application"
	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
	"agendaviva/contexts/agenda/scheduling-service/ports"
)

type AgendaQuery struct {
	From     time.Time
	To       time.Time
	ChurchID string
}

// AgendaUseCase merges timed events and projected birthdays into one
// chronologically ordered occurrence stream. It is read-only and
// deterministic: identical inputs yield identically ordered output. Within
// one calendar day events come before birthdays, each in source order.
type AgendaUseCase struct {
	Events    ports.EventRepository
	Birthdays ports.BirthdayProvider
	Logger    *slog.Logger
}

func (uc AgendaUseCase) Execute(ctx context.Context, query AgendaQuery) ([]entities.Occurrence, error) {
	logger := application.ResolveLogger(uc.Logger)

	from := query.From.UTC()
	to := query.To.UTC()
	if from.IsZero() || to.IsZero() || !from.Before(to) {
		return nil, domainerrors.ErrInvalidAgendaRange
	}
	churchID := strings.TrimSpace(query.ChurchID)

	events, err := uc.Events.ListEvents(ctx, ports.EventFilter{
		ChurchID: churchID,
		From:     &from,
		To:       &to,
	})
	if err != nil {
		return nil, err
	}

	occurrences := make([]entities.Occurrence, 0, len(events))
	for _, event := range events {
		occurrences = append(occurrences, entities.Occurrence{
			Kind:         entities.OccurrenceKindEvent,
			Date:         dayOf(event.StartsAt),
			SourceID:     event.EventID,
			Label:        event.Title,
			ChurchID:     event.ChurchID,
			ResourceID:   event.ResourceID,
			DepartmentID: event.DepartmentID,
			OrganID:      event.OrganID,
			StartsAt:     event.StartsAt,
			EndsAt:       event.EndsAt,
			AllDay:       event.AllDay,
		})
	}

	birthdays, err := uc.Birthdays.BirthdaySnapshots(ctx, churchID)
	if err != nil {
		return nil, err
	}
	for _, birthday := range birthdays {
		for year := from.Year(); year <= to.Year(); year++ {
			date, ok := entities.BirthdayDateInYear(birthday.Day, birthday.Month, year)
			if !ok {
				continue
			}
			if date.Before(from) || !date.Before(to) {
				continue
			}
			occurrences = append(occurrences, entities.Occurrence{
				Kind:         entities.OccurrenceKindBirthday,
				Date:         date,
				SourceID:     birthday.BirthdayID,
				Label:        birthday.Name,
				ChurchID:     birthday.ChurchID,
				DepartmentID: birthday.DepartmentID,
				OrganID:      birthday.OrganID,
				AllDay:       true,
			})
		}
	}

	// Events were appended before birthdays and both keep source order, so a
	// stable sort on the day alone yields the documented tie-break.
	sort.SliceStable(occurrences, func(i, j int) bool {
		return occurrences[i].Date.Before(occurrences[j].Date)
	})

	logger.Info("agenda assembled",
		"event", "agenda_assembled",
		"module", "agenda/scheduling-service",
		"layer", "application",
		"from", from.Format(time.RFC3339),
		"to", to.Format(time.RFC3339),
		"count", len(occurrences),
	)
	return occurrences, nil
}

// ExecuteMonth is the month-scoped variant covering [first of month, first
// of next month) in UTC.
func (uc AgendaUseCase) ExecuteMonth(ctx context.Context, year int, month int, churchID string) ([]entities.Occurrence, error) {
	if month < 1 || month > 12 || year < 1 {
		return nil, domainerrors.ErrInvalidAgendaRange
	}
	from := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return uc.Execute(ctx, AgendaQuery{From: from, To: from.AddDate(0, 1, 0), ChurchID: churchID})
}

func dayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
