package queries

import (
	"context"
	"log/slog"

	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

type ListBirthdaysQuery struct {
	ChurchID string
	Month    int
}

type ListBirthdaysUseCase struct {
	Birthdays ports.BirthdayRepository
	Logger    *slog.Logger
}

func (uc ListBirthdaysUseCase) Execute(ctx context.Context, query ListBirthdaysQuery) ([]entities.Birthday, error) {
	if query.Month != 0 && (query.Month < 1 || query.Month > 12) {
		return nil, domainerrors.ErrInvalidMonth
	}
	return uc.Birthdays.ListBirthdays(ctx, ports.BirthdayFilter{
		ChurchID: query.ChurchID,
		Month:    query.Month,
	})
}
