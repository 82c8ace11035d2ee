package memory

import (
	"context"
	"sort"
	"sync"

	"agendaviva/contexts/agenda/birthday-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
	"agendaviva/contexts/agenda/birthday-service/ports"
)

// Store is the in-memory birthday repository used by tests and the
// zero-configuration deployment mode.
type Store struct {
	mu        sync.RWMutex
	birthdays map[string]entities.Birthday
	order     []string
}

func NewStore(seed []entities.Birthday) *Store {
	store := &Store{birthdays: make(map[string]entities.Birthday)}
	for _, birthday := range seed {
		store.birthdays[birthday.BirthdayID] = birthday
		store.order = append(store.order, birthday.BirthdayID)
	}
	return store
}

func (s *Store) CreateBirthday(ctx context.Context, birthday entities.Birthday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.birthdays[birthday.BirthdayID]; !exists {
		s.order = append(s.order, birthday.BirthdayID)
	}
	s.birthdays[birthday.BirthdayID] = birthday
	return nil
}

func (s *Store) UpdateBirthday(ctx context.Context, birthday entities.Birthday) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.birthdays[birthday.BirthdayID]; !exists {
		return domainerrors.ErrBirthdayNotFound
	}
	s.birthdays[birthday.BirthdayID] = birthday
	return nil
}

func (s *Store) GetBirthday(ctx context.Context, birthdayID string) (entities.Birthday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	birthday, exists := s.birthdays[birthdayID]
	if !exists {
		return entities.Birthday{}, domainerrors.ErrBirthdayNotFound
	}
	return birthday, nil
}

func (s *Store) ListBirthdays(ctx context.Context, filter ports.BirthdayFilter) ([]entities.Birthday, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]entities.Birthday, 0, len(s.order))
	for _, id := range s.order {
		birthday := s.birthdays[id]
		if filter.ChurchID != "" && birthday.ChurchID != filter.ChurchID {
			continue
		}
		if filter.Month != 0 && birthday.Month != filter.Month {
			continue
		}
		matches = append(matches, birthday)
	}
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].Month != matches[j].Month {
			return matches[i].Month < matches[j].Month
		}
		if matches[i].Day != matches[j].Day {
			return matches[i].Day < matches[j].Day
		}
		return matches[i].Name < matches[j].Name
	})
	return matches, nil
}

func (s *Store) DeleteBirthday(ctx context.Context, birthdayID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.birthdays[birthdayID]; !exists {
		return domainerrors.ErrBirthdayNotFound
	}
	delete(s.birthdays, birthdayID)
	for i, id := range s.order {
		if id == birthdayID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}
