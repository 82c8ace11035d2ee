package queries

import (
	"context"
	"log/slog"
	"sort"

	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

// MonthEntry is the public projection of a birthday within a month listing.
// Birth year and notes stay private to the full record.
type MonthEntry struct {
	BirthdayID   string
	Name         string
	Day          int
	Month        int
	ChurchID     string
	DepartmentID string
	OrganID      string
}

type BirthdaysInMonthQuery struct {
	Month    int
	ChurchID string
}

type BirthdaysInMonthUseCase struct {
	Birthdays ports.BirthdayRepository
	Logger    *slog.Logger
}

func (uc BirthdaysInMonthUseCase) Execute(ctx context.Context, query BirthdaysInMonthQuery) ([]MonthEntry, error) {
	if query.Month < 1 || query.Month > 12 {
		return nil, domainerrors.ErrInvalidMonth
	}

	birthdays, err := uc.Birthdays.ListBirthdays(ctx, ports.BirthdayFilter{
		ChurchID: query.ChurchID,
		Month:    query.Month,
	})
	if err != nil {
		return nil, err
	}

	entries := make([]MonthEntry, 0, len(birthdays))
	for _, birthday := range birthdays {
		entries = append(entries, MonthEntry{
			BirthdayID:   birthday.BirthdayID,
			Name:         birthday.Name,
			Day:          birthday.Day,
			Month:        birthday.Month,
			ChurchID:     birthday.ChurchID,
			DepartmentID: birthday.DepartmentID,
			OrganID:      birthday.OrganID,
		})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Day != entries[j].Day {
			return entries[i].Day < entries[j].Day
		}
		return entries[i].Name < entries[j].Name
	})
	return entries, nil
}
