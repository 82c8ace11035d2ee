package queries

import (
	"context"
	"log/slog"
	"sort"
	"time"

	"agendaviva/contexts/agenda/birthday-service/ports"
)

// UpcomingEntry pairs a birthday with its next occurrence relative to today.
type UpcomingEntry struct {
	BirthdayID   string
	Name         string
	Day          int
	Month        int
	ChurchID     string
	DepartmentID string
	OrganID      string
	NextDate     time.Time
	DaysUntil    int
	// TurnsAge is the age turned on NextDate, not the age today;
	// nil when the birth year is unknown.
	TurnsAge *int
}

type UpcomingBirthdaysQuery struct {
	ChurchID   string
	WithinDays int
}

type UpcomingBirthdaysUseCase struct {
	Birthdays ports.BirthdayRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpcomingBirthdaysUseCase) Execute(ctx context.Context, query UpcomingBirthdaysQuery) ([]UpcomingEntry, error) {
	birthdays, err := uc.Birthdays.ListBirthdays(ctx, ports.BirthdayFilter{ChurchID: query.ChurchID})
	if err != nil {
		return nil, err
	}

	within := query.WithinDays
	if within <= 0 {
		within = 30
	}
	today := uc.Clock.Now().UTC()

	entries := make([]UpcomingEntry, 0, len(birthdays))
	for _, birthday := range birthdays {
		next, daysUntil := birthday.NextOccurrence(today)
		if daysUntil > within {
			continue
		}
		entries = append(entries, UpcomingEntry{
			BirthdayID:   birthday.BirthdayID,
			Name:         birthday.Name,
			Day:          birthday.Day,
			Month:        birthday.Month,
			ChurchID:     birthday.ChurchID,
			DepartmentID: birthday.DepartmentID,
			OrganID:      birthday.OrganID,
			NextDate:     next,
			DaysUntil:    daysUntil,
			TurnsAge:     birthday.Age(next),
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].DaysUntil != entries[j].DaysUntil {
			return entries[i].DaysUntil < entries[j].DaysUntil
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
