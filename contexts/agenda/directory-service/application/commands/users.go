package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "agendaviva/contexts/agenda/directory-service/application"
	"agendaviva/contexts/agenda/directory-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	"agendaviva/contexts/agenda/directory-service/ports"
)

type CreateUserCommand struct {
	Name      string
	Email     string
	Password  string
	Role      string
	ChurchID  string
	BirthDate *time.Time
}

type CreateUserUseCase struct {
	Users       ports.UserRepository
	Hasher      ports.PasswordHasher
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (uc CreateUserUseCase) Execute(ctx context.Context, cmd CreateUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(uc.Logger)
	now := uc.Clock.Now().UTC()

	if strings.TrimSpace(cmd.Password) == "" {
		return entities.User{}, domainerrors.ErrInvalidInput
	}
	user := entities.User{
		Name:      strings.TrimSpace(cmd.Name),
		Email:     entities.NormalizedEmail(cmd.Email),
		Role:      entities.Role(strings.TrimSpace(cmd.Role)),
		ChurchID:  strings.TrimSpace(cmd.ChurchID),
		BirthDate: normalizeBirthDate(cmd.BirthDate),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if user.Role == "" {
		user.Role = entities.RoleMember
	}
	if !user.ValidateBasics() {
		return entities.User{}, domainerrors.ErrInvalidInput
	}

	hash, err := uc.Hasher.Hash(cmd.Password)
	if err != nil {
		return entities.User{}, err
	}
	user.PasswordHash = hash

	userID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.User{}, err
	}
	user.UserID = userID

	if err := uc.Users.CreateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	logger.Info("user created",
		"event", "user_created",
		"module", "agenda/directory-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", string(user.Role),
	)
	return user, nil
}

type UpdateUserCommand struct {
	UserID    string
	Name      *string
	Email     *string
	Password  *string
	Role      *string
	ChurchID  *string
	BirthDate *time.Time
}

type UpdateUserUseCase struct {
	Users  ports.UserRepository
	Hasher ports.PasswordHasher
	Clock  ports.Clock
	Logger *slog.Logger
}

func (uc UpdateUserUseCase) Execute(ctx context.Context, cmd UpdateUserCommand) (entities.User, error) {
	logger := application.ResolveLogger(uc.Logger)

	user, err := uc.Users.GetUser(ctx, cmd.UserID)
	if err != nil {
		return entities.User{}, err
	}

	if cmd.Name != nil {
		user.Name = strings.TrimSpace(*cmd.Name)
	}
	if cmd.Email != nil {
		user.Email = entities.NormalizedEmail(*cmd.Email)
	}
	if cmd.Role != nil {
		user.Role = entities.Role(strings.TrimSpace(*cmd.Role))
	}
	if cmd.ChurchID != nil {
		user.ChurchID = strings.TrimSpace(*cmd.ChurchID)
	}
	if cmd.BirthDate != nil {
		user.BirthDate = normalizeBirthDate(cmd.BirthDate)
	}
	if !user.ValidateBasics() {
		return entities.User{}, domainerrors.ErrInvalidInput
	}

	if cmd.Password != nil {
		if strings.TrimSpace(*cmd.Password) == "" {
			return entities.User{}, domainerrors.ErrInvalidInput
		}
		hash, err := uc.Hasher.Hash(*cmd.Password)
		if err != nil {
			return entities.User{}, err
		}
		user.PasswordHash = hash
	}

	user.UpdatedAt = uc.Clock.Now().UTC()

	if err := uc.Users.UpdateUser(ctx, user); err != nil {
		return entities.User{}, err
	}

	logger.Info("user updated",
		"event", "user_updated",
		"module", "agenda/directory-service",
		"layer", "application",
		"user_id", user.UserID,
	)
	return user, nil
}

type DeleteUserUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (uc DeleteUserUseCase) Execute(ctx context.Context, userID string) error {
	logger := application.ResolveLogger(uc.Logger)

	if err := uc.Users.DeleteUser(ctx, userID); err != nil {
		return err
	}

	logger.Info("user deleted",
		"event", "user_deleted",
		"module", "agenda/directory-service",
		"layer", "application",
		"user_id", userID,
	)
	return nil
}

// normalizeBirthDate keeps only the calendar day in UTC.
func normalizeBirthDate(value *time.Time) *time.Time {
	if value == nil {
		return nil
	}
	day := time.Date(value.Year(), value.Month(), value.Day(), 0, 0, 0, 0, time.UTC)
	return &day
}
