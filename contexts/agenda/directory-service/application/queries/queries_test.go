package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"agendaviva/contexts/agenda/directory-service/adapters/memory"
	"agendaviva/contexts/agenda/directory-service/domain/entities"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
	"agendaviva/contexts/agenda/directory-service/ports"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func datePtr(year int, month time.Month, day int) *time.Time {
	d := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return &d
}

func seedUsers(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	users := []entities.User{
		{UserID: "u-1", Name: "Ana", Email: "ana@example.com", Role: entities.RoleMember, BirthDate: datePtr(1990, time.June, 15)},
		{UserID: "u-2", Name: "Bruno", Email: "bruno@example.com", Role: entities.RoleLeader, BirthDate: datePtr(1985, time.June, 2)},
		{UserID: "u-3", Name: "Clara", Email: "clara@example.com", Role: entities.RoleAdmin},
	}
	for _, user := range users {
		if err := store.CreateUser(context.Background(), user); err != nil {
			t.Fatalf("seed failed: %v", err)
		}
	}
	return store
}

func TestBornTodayUsesClockDate(t *testing.T) {
	uc := UserBirthdaysUseCase{
		Users: seedUsers(t),
		Clock: fixedClock{now: time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)},
	}

	users, err := uc.BornToday(context.Background())
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(users) != 1 || users[0].UserID != "u-1" {
		t.Fatalf("expected only Ana today, got %+v", users)
	}
}

func TestBornInMonthSkipsUsersWithoutBirthDate(t *testing.T) {
	uc := UserBirthdaysUseCase{
		Users: seedUsers(t),
		Clock: fixedClock{now: time.Now()},
	}

	users, err := uc.BornInMonth(context.Background(), 6)
	if err != nil {
		t.Fatalf("query failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected two june users, got %+v", users)
	}

	if _, err := uc.BornInMonth(context.Background(), 13); !errors.Is(err, domainerrors.ErrInvalidMonth) {
		t.Fatalf("month 13 must be rejected, got %v", err)
	}
}

func TestListUsersFiltersByChurch(t *testing.T) {
	store := memory.NewStore()
	if err := store.CreateUser(context.Background(), entities.User{
		UserID: "u-1", Name: "Ana", Email: "ana@example.com", ChurchID: "church-1",
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if err := store.CreateUser(context.Background(), entities.User{
		UserID: "u-2", Name: "Bruno", Email: "bruno@example.com", ChurchID: "church-2",
	}); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	uc := ListUsersUseCase{Users: store}
	users, err := uc.Execute(context.Background(), ports.UserFilter{ChurchID: "church-1"})
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 1 || users[0].UserID != "u-1" {
		t.Fatalf("expected only church-1 users, got %+v", users)
	}
}
