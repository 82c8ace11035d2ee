package memory

import (
	"context"
	"sort"
	"strings"
	"sync"

	"agendaviva/contexts/agenda/scheduling-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/scheduling-service/domain/errors"
	"agendaviva/contexts/agenda/scheduling-service/ports"
)

// Store is the in-memory event repository used by tests and the default
// storage-less wiring.
type Store struct {
	mu     sync.RWMutex
	events map[string]entities.Event
	order  []string
}

func NewStore(seed []entities.Event) *Store {
	events := make(map[string]entities.Event, len(seed))
	order := make([]string, 0, len(seed))
	for _, item := range seed {
		events[item.EventID] = item
		order = append(order, item.EventID)
	}
	return &Store{
		events: events,
		order:  order,
	}
}

func (s *Store) CreateEvent(_ context.Context, event entities.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.EventID]; exists {
		return domainerrors.ErrInvalidEventInput
	}
	s.events[event.EventID] = event
	s.order = append(s.order, event.EventID)
	return nil
}

func (s *Store) UpdateEvent(_ context.Context, event entities.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.events[event.EventID]; !exists {
		return domainerrors.ErrEventNotFound
	}
	s.events[event.EventID] = event
	return nil
}

func (s *Store) GetEvent(_ context.Context, eventID string) (entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	item, exists := s.events[strings.TrimSpace(eventID)]
	if !exists {
		return entities.Event{}, domainerrors.ErrEventNotFound
	}
	return item, nil
}

func (s *Store) ListEvents(_ context.Context, filter ports.EventFilter) ([]entities.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	churchID := strings.TrimSpace(filter.ChurchID)
	items := make([]entities.Event, 0, len(s.events))
	for _, eventID := range s.order {
		event, exists := s.events[eventID]
		if !exists {
			continue
		}
		if churchID != "" && event.ChurchID != churchID {
			continue
		}
		if filter.From != nil && filter.To != nil &&
			!entities.IntervalsOverlap(event.StartsAt, event.EndsAt, *filter.From, *filter.To) {
			continue
		}
		items = append(items, event)
	}
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartsAt.Before(items[j].StartsAt)
	})
	return items, nil
}

func (s *Store) DeleteEvent(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	eventID = strings.TrimSpace(eventID)
	if _, exists := s.events[eventID]; !exists {
		return domainerrors.ErrEventNotFound
	}
	delete(s.events, eventID)
	for i, id := range s.order {
		if id == eventID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
