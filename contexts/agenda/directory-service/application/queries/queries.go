package queries

import (
	"context"
	"log/slog"

	"agendaviva/contexts/agenda/directory-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	"agendaviva/contexts/agenda/directory-service/ports"
)

type ListChurchesUseCase struct {
	Churches ports.ChurchRepository
	Logger   *slog.Logger
}

func (uc ListChurchesUseCase) Execute(ctx context.Context) ([]entities.Church, error) {
	return uc.Churches.ListChurches(ctx)
}

type ListResourcesUseCase struct {
	Resources ports.ResourceRepository
	Logger    *slog.Logger
}

func (uc ListResourcesUseCase) Execute(ctx context.Context) ([]entities.Resource, error) {
	return uc.Resources.ListResources(ctx)
}

type ListUsersUseCase struct {
	Users  ports.UserRepository
	Logger *slog.Logger
}

func (uc ListUsersUseCase) Execute(ctx context.Context, filter ports.UserFilter) ([]entities.User, error) {
	return uc.Users.ListUsers(ctx, filter)
}

// UserBirthdaysUseCase answers the directory's own birthday questions,
// driven by stored user birth dates rather than the birthday book.
type UserBirthdaysUseCase struct {
	Users  ports.UserRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// BornToday lists users whose birth date matches today's day and month.
func (uc UserBirthdaysUseCase) BornToday(ctx context.Context) ([]entities.User, error) {
	now := uc.Clock.Now().UTC()
	return uc.BornOn(ctx, now.Day(), int(now.Month()))
}

func (uc UserBirthdaysUseCase) BornOn(ctx context.Context, day, month int) ([]entities.User, error) {
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return nil, domainerrors.ErrInvalidMonth
	}
	users, err := uc.Users.ListUsers(ctx, ports.UserFilter{})
	if err != nil {
		return nil, err
	}
	matches := make([]entities.User, 0, len(users))
	for _, user := range users {
		if user.BornOn(day, month) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}

func (uc UserBirthdaysUseCase) BornInMonth(ctx context.Context, month int) ([]entities.User, error) {
	if month < 1 || month > 12 {
		return nil, domainerrors.ErrInvalidMonth
	}
	users, err := uc.Users.ListUsers(ctx, ports.UserFilter{})
	if err != nil {
		return nil, err
	}
	matches := make([]entities.User, 0, len(users))
	for _, user := range users {
		if user.BornInMonth(month) {
			matches = append(matches, user)
		}
	}
	return matches, nil
}
