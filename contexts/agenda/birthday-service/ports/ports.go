package ports

import (
	"context"
	"time"

	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	"agendaviva/internal/shared/events"
)

// BirthdayFilter narrows listings. Month zero means any month; an empty
// ChurchID means all churches including unscoped records.
type BirthdayFilter struct {
	ChurchID string
	Month    int
}

type BirthdayRepository interface {
	CreateBirthday(ctx context.Context, birthday entities.Birthday) error
	UpdateBirthday(ctx context.Context, birthday entities.Birthday) error
	GetBirthday(ctx context.Context, birthdayID string) (entities.Birthday, error)
	ListBirthdays(ctx context.Context, filter BirthdayFilter) ([]entities.Birthday, error)
	DeleteBirthday(ctx context.Context, birthdayID string) error
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = events.Envelope

type EventPublisher interface {
	Publish(ctx context.Context, topic string, event EventEnvelope) error
}
