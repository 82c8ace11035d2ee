package commands

import (
	"context"
	"log/slog"
	"strings"

	application "agendaviva/contexts/agenda/birthday-service/application"
	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

// UpdateBirthdayCommand carries partial updates; nil fields keep the current value.
type UpdateBirthdayCommand struct {
	BirthdayID   string
	Name         *string
	Day          *int
	Month        *int
	BirthYear    *int
	ChurchID     *string
	Notes        *string
	DepartmentID *string
	OrganID      *string
}

type UpdateBirthdayUseCase struct {
	Birthdays ports.BirthdayRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateBirthdayUseCase) Execute(ctx context.Context, cmd UpdateBirthdayCommand) (entities.Birthday, error) {
	logger := application.ResolveLogger(uc.Logger)

	birthday, err := uc.Birthdays.GetBirthday(ctx, cmd.BirthdayID)
	if err != nil {
		return entities.Birthday{}, err
	}

	if cmd.Name != nil {
		birthday.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Day != nil {
		birthday.Day = *cmd.Day
	}
	if cmd.Month != nil {
		birthday.Month = *cmd.Month
	}
	if cmd.BirthYear != nil {
		birthday.BirthYear = cmd.BirthYear
	}
	if cmd.ChurchID != nil {
		birthday.ChurchID = strings.TrimSpace(*cmd.ChurchID)
	}
	if cmd.Notes != nil {
		birthday.Notes = strings.TrimSpace(*cmd.Notes)
	}
	if cmd.DepartmentID != nil {
		birthday.DepartmentID = strings.TrimSpace(*cmd.DepartmentID)
	}
	if cmd.OrganID != nil {
		birthday.OrganID = strings.TrimSpace(*cmd.OrganID)
	}

	if birthday.Name == "" {
		return entities.Birthday{}, domainerrors.ErrInvalidBirthdayInput
	}
	if !entities.ValidDayMonth(birthday.Day, birthday.Month) {
		return entities.Birthday{}, domainerrors.ErrInvalidBirthdayDate
	}

	birthday.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Birthdays.UpdateBirthday(ctx, birthday); err != nil {
		return entities.Birthday{}, err
	}

	logger.Info("birthday updated",
		"event", "birthday_updated",
		"module", "agenda/birthday-service",
		"layer", "application",
		"birthday_id", birthday.BirthdayID,
	)
	return birthday, nil
}
