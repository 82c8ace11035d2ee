package memory

import (
	"context"
	"sort"
	"sync"

	"agendaviva/contexts/agenda/directory-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	"agendaviva/contexts/agenda/directory-service/ports"
)

// Store backs all three directory aggregates with mutex-guarded maps.
// Name and email uniqueness is enforced here, mirroring the unique
// indexes the postgres adapter relies on.
type Store struct {
	mu        sync.RWMutex
	churches  map[string]entities.Church
	resources map[string]entities.Resource
	users     map[string]entities.User
}

func NewStore() *Store {
	return &Store{
		churches:  make(map[string]entities.Church),
		resources: make(map[string]entities.Resource),
		users:     make(map[string]entities.User),
	}
}

func (s *Store) CreateChurch(ctx context.Context, church entities.Church) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.churchNameTaken(church.Name, church.ChurchID) {
		return domainerrors.ErrDuplicateChurch
	}
	s.churches[church.ChurchID] = church
	return nil
}

func (s *Store) UpdateChurch(ctx context.Context, church entities.Church) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.churches[church.ChurchID]; !exists {
		return domainerrors.ErrChurchNotFound
	}
	if s.churchNameTaken(church.Name, church.ChurchID) {
		return domainerrors.ErrDuplicateChurch
	}
	s.churches[church.ChurchID] = church
	return nil
}

func (s *Store) GetChurch(ctx context.Context, churchID string) (entities.Church, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	church, exists := s.churches[churchID]
	if !exists {
		return entities.Church{}, domainerrors.ErrChurchNotFound
	}
	return church, nil
}

func (s *Store) ListChurches(ctx context.Context) ([]entities.Church, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Church, 0, len(s.churches))
	for _, church := range s.churches {
		result = append(result, church)
	}
	sort.Slice(result, func(i, j int) bool {
		return entities.NormalizedName(result[i].Name) < entities.NormalizedName(result[j].Name)
	})
	return result, nil
}

func (s *Store) DeleteChurch(ctx context.Context, churchID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.churches[churchID]; !exists {
		return domainerrors.ErrChurchNotFound
	}
	delete(s.churches, churchID)
	return nil
}

func (s *Store) churchNameTaken(name, selfID string) bool {
	key := entities.NormalizedName(name)
	for id, church := range s.churches {
		if id != selfID && entities.NormalizedName(church.Name) == key {
			return true
		}
	}
	return false
}

func (s *Store) CreateResource(ctx context.Context, resource entities.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.resourceNameTaken(resource.Name, resource.ResourceID) {
		return domainerrors.ErrDuplicateResource
	}
	s.resources[resource.ResourceID] = resource
	return nil
}

func (s *Store) UpdateResource(ctx context.Context, resource entities.Resource) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.resources[resource.ResourceID]; !exists {
		return domainerrors.ErrResourceNotFound
	}
	if s.resourceNameTaken(resource.Name, resource.ResourceID) {
		return domainerrors.ErrDuplicateResource
	}
	s.resources[resource.ResourceID] = resource
	return nil
}

func (s *Store) GetResource(ctx context.Context, resourceID string) (entities.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	resource, exists := s.resources[resourceID]
	if !exists {
		return entities.Resource{}, domainerrors.ErrResourceNotFound
	}
	return resource, nil
}

func (s *Store) ListResources(ctx context.Context) ([]entities.Resource, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.Resource, 0, len(s.resources))
	for _, resource := range s.resources {
		result = append(result, resource)
	}
	sort.Slice(result, func(i, j int) bool {
		return entities.NormalizedName(result[i].Name) < entities.NormalizedName(result[j].Name)
	})
	return result, nil
}

func (s *Store) DeleteResource(ctx context.Context, resourceID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.resources[resourceID]; !exists {
		return domainerrors.ErrResourceNotFound
	}
	delete(s.resources, resourceID)
	return nil
}

func (s *Store) resourceNameTaken(name, selfID string) bool {
	key := entities.NormalizedName(name)
	for id, resource := range s.resources {
		if id != selfID && entities.NormalizedName(resource.Name) == key {
			return true
		}
	}
	return false
}

func (s *Store) CreateUser(ctx context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.emailTaken(user.Email, user.UserID) {
		return domainerrors.ErrDuplicateEmail
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) UpdateUser(ctx context.Context, user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[user.UserID]; !exists {
		return domainerrors.ErrUserNotFound
	}
	if s.emailTaken(user.Email, user.UserID) {
		return domainerrors.ErrDuplicateEmail
	}
	s.users[user.UserID] = user
	return nil
}

func (s *Store) GetUser(ctx context.Context, userID string) (entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, exists := s.users[userID]
	if !exists {
		return entities.User{}, domainerrors.ErrUserNotFound
	}
	return user, nil
}

func (s *Store) ListUsers(ctx context.Context, filter ports.UserFilter) ([]entities.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entities.User, 0, len(s.users))
	for _, user := range s.users {
		if filter.ChurchID != "" && user.ChurchID != filter.ChurchID {
			continue
		}
		result = append(result, user)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Email < result[j].Email
	})
	return result, nil
}

func (s *Store) DeleteUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[userID]; !exists {
		return domainerrors.ErrUserNotFound
	}
	delete(s.users, userID)
	return nil
}

func (s *Store) emailTaken(email, selfID string) bool {
	key := entities.NormalizedEmail(email)
	for id, user := range s.users {
		if id != selfID && entities.NormalizedEmail(user.Email) == key {
			return true
		}
	}
	return false
}
