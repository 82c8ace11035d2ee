package application

import (
	"context"
	"log/slog"
	"time"

	domainerrors "agendaviva/contexts/agenda/report-service/domain/errors"
	"agendaviva/contexts/agenda/report-service/ports"

	ics "github.com/arran4/golang-ical"
)

type ExportICSRequest struct {
	From     time.Time
	To       time.Time
	ChurchID string
}

type ExportICSUseCase struct {
	Agenda ports.AgendaProvider
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute serializes the occurrence stream as an iCalendar feed. Timed
// events keep their instants; birthdays become all-day entries.
func (uc ExportICSUseCase) Execute(ctx context.Context, req ExportICSRequest) (string, error) {
	logger := resolveLogger(uc.Logger)

	if req.From.IsZero() || req.To.IsZero() || !req.From.Before(req.To) {
		return "", domainerrors.ErrInvalidReportRequest
	}

	items, err := uc.Agenda.OccurrencesInRange(ctx, req.From, req.To, req.ChurchID)
	if err != nil {
		return "", err
	}

	now := time.Now().UTC()
	if uc.Clock != nil {
		now = uc.Clock.Now().UTC()
	}

	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//agendaviva//calendar//EN")

	for _, item := range items {
		uid := item.Kind + "-" + item.SourceID + "-" + item.Date.UTC().Format("20060102")
		event := cal.AddEvent(uid)
		event.SetDtStampTime(now)
		event.SetSummary(item.Label)
		if item.Kind == "event" && !item.AllDay {
			event.SetStartAt(item.StartsAt.UTC())
			event.SetEndAt(item.EndsAt.UTC())
		} else {
			day := item.Date.UTC()
			event.SetAllDayStartAt(day)
			event.SetAllDayEndAt(day.AddDate(0, 0, 1))
		}
	}

	logger.Info("ics feed exported",
		"event", "ics_feed_exported",
		"module", "agenda/report-service",
		"layer", "application",
		"item_count", len(items),
	)
	return cal.Serialize(), nil
}
