package commands

import (
	"context"
	"log/slog"
	"strings"

	application "agendaviva/contexts/agenda/directory-service/application"
	"agendaviva/contexts/agenda/directory-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	"agendaviva/contexts/agenda/directory-service/ports"
)

type CreateChurchCommand struct {
	Name        string
	Address     string
	ColorCode   string
	Organs      []string
	Departments []string
}

type CreateChurchUseCase struct {
	Churches    ports.ChurchRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateChurchUseCase) Execute(ctx context.Context, cmd CreateChurchCommand) (entities.Church, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	church := entities.Church{
		Name:        strings.TrimSpace(cmd.Name),
		Address:     strings.TrimSpace(cmd.Address),
		ColorCode:   strings.TrimSpace(cmd.ColorCode),
		Organs:      cleanNames(cmd.Organs),
		Departments: cleanNames(cmd.Departments),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !church.ValidateBasics() {
		return entities.Church{}, domainerrors.ErrInvalidInput
	}

	churchID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Church{}, err
	}
	church.ChurchID = churchID

	if err := uc.Churches.CreateChurch(ctx, church); err != nil {
		return entities.Church{}, err
	}

	logger.Info("church created",
		"event", "church_created",
		"module", "agenda/directory-service",
		"layer", "application",
		"church_id", church.ChurchID,
	)
	return church, nil
}

type UpdateChurchCommand struct {
	ChurchID    string
	Name        *string
	Address     *string
	ColorCode   *string
	Organs      []string
	Departments []string
}

type UpdateChurchUseCase struct {
	Churches ports.ChurchRepository
	Clock    ports.Clock
	Logger   *slog.Logger
}

func (uc UpdateChurchUseCase) Execute(ctx context.Context, cmd UpdateChurchCommand) (entities.Church, error) {
	logger := application.ResolveLogger(uc.Logger)

	church, err := uc.Churches.GetChurch(ctx, cmd.ChurchID)
	if err != nil {
		return entities.Church{}, err
	}

	if cmd.Name != nil {
		church.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Address != nil {
		church.Address = strings.TrimSpace(*cmd.Address)
	}
	if cmd.ColorCode != nil {
		church.ColorCode = strings.TrimSpace(*cmd.ColorCode)
	}
	if cmd.Organs != nil {
		church.Organs = cleanNames(cmd.Organs)
	}
	if cmd.Departments != nil {
		church.Departments = cleanNames(cmd.Departments)
	}
	if !church.ValidateBasics() {
		return entities.Church{}, domainerrors.ErrInvalidInput
	}

	church.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Churches.UpdateChurch(ctx, church); err != nil {
		return entities.Church{}, err
	}

	logger.Info("church updated",
		"event", "church_updated",
		"module", "agenda/directory-service",
		"layer", "application",
		"church_id", church.ChurchID,
	)
	return church, nil
}

type DeleteChurchUseCase struct {
	Churches ports.ChurchRepository
	Logger   *slog.Logger
}

func (uc DeleteChurchUseCase) Execute(ctx context.Context, churchID string) error {
	logger := application.ResolveLogger(uc.Logger)

	if err := uc.Churches.DeleteChurch(ctx, churchID); err != nil {
		return err
	}

	logger.Info("church deleted",
		"event", "church_deleted",
		"module", "agenda/directory-service",
		"layer", "application",
		"church_id", churchID,
	)
	return nil
}

func cleanNames(values []string) []string {
	result := make([]string, 0, len(values))
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
