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

type CreateBirthdayCommand struct {
	Name         string
	Day          int
	Month        int
	BirthYear    *int
	ChurchID     string
	Notes        string
	CreatedBy    string
	DepartmentID string
	OrganID      string
}

type CreateBirthdayUseCase struct {
	Birthdays   ports.BirthdayRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateBirthdayUseCase) Execute(ctx context.Context, cmd CreateBirthdayCommand) (entities.Birthday, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	if strings.TrimSpace(cmd.Name) == "" {
		return entities.Birthday{}, domainerrors.ErrInvalidBirthdayInput
	}
	if !entities.ValidDayMonth(cmd.Day, cmd.Month) {
		return entities.Birthday{}, domainerrors.ErrInvalidBirthdayDate
	}

	birthdayID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Birthday{}, err
	}

	birthday := entities.Birthday{
		BirthdayID:   birthdayID,
		Name:         strings.TrimSpace(cmd.Name),
		Day:          cmd.Day,
		Month:        cmd.Month,
		BirthYear:    cmd.BirthYear,
		ChurchID:     strings.TrimSpace(cmd.ChurchID),
		Notes:        strings.TrimSpace(cmd.Notes),
		CreatedBy:    strings.TrimSpace(cmd.CreatedBy),
		DepartmentID: strings.TrimSpace(cmd.DepartmentID),
		OrganID:      strings.TrimSpace(cmd.OrganID),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.Birthdays.CreateBirthday(ctx, birthday); err != nil {
		return entities.Birthday{}, err
	}

	logger.Info("birthday created",
		"event", "birthday_created",
		"module", "agenda/birthday-service",
		"layer", "application",
		"birthday_id", birthday.BirthdayID,
		"church_id", birthday.ChurchID,
	)
	return birthday, nil
}
