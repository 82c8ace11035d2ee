package commands

import (
	"context"
	"log/slog"

	application "agendaviva/contexts/agenda/birthday-service/application"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

type DeleteBirthdayUseCase struct {
	Birthdays ports.BirthdayRepository
	Logger    *slog.Logger
}

func (uc DeleteBirthdayUseCase) Execute(ctx context.Context, birthdayID string) error {
	logger := application.ResolveLogger(uc.Logger)

	if err := uc.Birthdays.DeleteBirthday(ctx, birthdayID); err != nil {
		return err
	}

	logger.Info("birthday deleted",
		"event", "birthday_deleted",
		"module", "agenda/birthday-service",
		"layer", "application",
		"birthday_id", birthdayID,
	)
	return nil
}
