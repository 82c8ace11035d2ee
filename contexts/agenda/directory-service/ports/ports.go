package ports

import (
	"context"
	"time"

	"agendaviva/contexts/agenda/directory-service/domain/entities"
)

type ChurchRepository interface {
	CreateChurch(ctx context.Context, church entities.Church) error
	UpdateChurch(ctx context.Context, church entities.Church) error
	GetChurch(ctx context.Context, churchID string) (entities.Church, error)
	ListChurches(ctx context.Context) ([]entities.Church, error)
	DeleteChurch(ctx context.Context, churchID string) error
}

type ResourceRepository interface {
	CreateResource(ctx context.Context, resource entities.Resource) error
	UpdateResource(ctx context.Context, resource entities.Resource) error
	GetResource(ctx context.Context, resourceID string) (entities.Resource, error)
	ListResources(ctx context.Context) ([]entities.Resource, error)
	DeleteResource(ctx context.Context, resourceID string) error
}

type UserFilter struct {
	ChurchID string
}

type UserRepository interface {
	CreateUser(ctx context.Context, user entities.User) error
	UpdateUser(ctx context.Context, user entities.User) error
	GetUser(ctx context.Context, userID string) (entities.User, error)
	ListUsers(ctx context.Context, filter UserFilter) ([]entities.User, error)
	DeleteUser(ctx context.Context, userID string) error
}

// PasswordHasher hides the hashing scheme from the application layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
