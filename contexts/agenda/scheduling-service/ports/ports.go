package ports

import (
	"context"
	"time"

	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
)

// EventFilter narrows event listings. From/To select events whose
// [StartsAt, EndsAt) overlaps the half-open [From, To) window.
type EventFilter struct {
	ChurchID string
	From     *time.Time
	To       *time.Time
}

type EventRepository interface {
	CreateEvent(ctx context.Context, event entities.Event) error
	UpdateEvent(ctx context.Context, event entities.Event) error
	GetEvent(ctx context.Context, eventID string) (entities.Event, error)
	ListEvents(ctx context.Context, filter EventFilter) ([]entities.Event, error)
	DeleteEvent(ctx context.Context, eventID string) error
}

// BirthdaySnapshot is the read-only projection of a birthday record the
// aggregator needs. BirthYear and notes stay inside the birthday service.
type BirthdaySnapshot struct {
	BirthdayID   string
	Name         string
	Day          int
	Month        int
	ChurchID     string
	DepartmentID string
	OrganID      string
}

// BirthdayProvider is implemented by the birthday service for the
// occurrence aggregator. An empty churchID means all churches.
type BirthdayProvider interface {
	BirthdaySnapshots(ctx context.Context, churchID string) ([]BirthdaySnapshot, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}
