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

type CreateResourceCommand struct {
	Name      string
	Type      string
	Available *bool
}

type CreateResourceUseCase struct {
	Resources   ports.ResourceRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateResourceUseCase) Execute(ctx context.Context, cmd CreateResourceCommand) (entities.Resource, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	available := true
	if cmd.Available != nil {
		available = *cmd.Available
	}
	resource := entities.Resource{
		Name:      strings.TrimSpace(cmd.Name),
		Type:      entities.ResourceType(strings.TrimSpace(cmd.Type)),
		Available: available,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if !resource.ValidateBasics() {
		return entities.Resource{}, domainerrors.ErrInvalidInput
	}

	resourceID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.Resource{}, err
	}
	resource.ResourceID = resourceID

	if err := uc.Resources.CreateResource(ctx, resource); err != nil {
		return entities.Resource{}, err
	}

	logger.Info("resource created",
		"event", "resource_created",
		"module", "agenda/directory-service",
		"layer", "application",
		"resource_id", resource.ResourceID,
		"resource_type", string(resource.Type),
	)
	return resource, nil
}

type UpdateResourceCommand struct {
	ResourceID string
	Name       *string
	Type       *string
	Available  *bool
}

type UpdateResourceUseCase struct {
	Resources ports.ResourceRepository
	Clock     ports.Clock
	Logger    *slog.Logger
}

func (uc UpdateResourceUseCase) Execute(ctx context.Context, cmd UpdateResourceCommand) (entities.Resource, error) {
	logger := application.ResolveLogger(uc.Logger)

	resource, err := uc.Resources.GetResource(ctx, cmd.ResourceID)
	if err != nil {
		return entities.Resource{}, err
	}

	if cmd.Name != nil {
		resource.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Type != nil {
		resource.Type = entities.ResourceType(strings.TrimSpace(*cmd.Type))
	}
	if cmd.Available != nil {
		resource.Available = *cmd.Available
	}
	if !resource.ValidateBasics() {
		return entities.Resource{}, domainerrors.ErrInvalidInput
	}

	resource.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Resources.UpdateResource(ctx, resource); err != nil {
		return entities.Resource{}, err
	}

	logger.Info("resource updated",
		"event", "resource_updated",
		"module", "agenda/directory-service",
		"layer", "application",
		"resource_id", resource.ResourceID,
	)
	return resource, nil
}

type DeleteResourceUseCase struct {
	Resources ports.ResourceRepository
	Logger    *slog.Logger
}

// Execute removes the resource record. Events keep the stored resource
// id; future bookings against it simply find no conflicts to join.
func (uc DeleteResourceUseCase) Execute(ctx context.Context, resourceID string) error {
	logger := application.ResolveLogger(uc.Logger)

	if err := uc.Resources.DeleteResource(ctx, resourceID); err != nil {
		return err
	}

	logger.Info("resource deleted",
		"event", "resource_deleted",
		"module", "agenda/directory-service",
		"layer", "application",
		"resource_id", resourceID,
	)
	return nil
}
