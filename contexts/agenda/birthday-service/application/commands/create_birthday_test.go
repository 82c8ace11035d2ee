package commands

import (
	"context"
	"errors"
	"testing"

	"agendaviva/contexts/agenda/birthday-service/adapters/memory"
	postgresadapter "agendaviva/contexts/agenda/birthday-service/adapters/postgres"
	domainerrors "agendaviva/contexts/agenda/birthday-service/domain/errors"
)

func newCreateUseCase(store *memory.Store) CreateBirthdayUseCase {
	return CreateBirthdayUseCase{
		Birthdays:   store,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}
}

func TestCreateBirthdayRejectsBlankName(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	_, err := uc.Execute(context.Background(), CreateBirthdayCommand{
		Name:     "   ",
		Day:      15,
		Month:    6,
		ChurchID: "church-1",
	})
	if !errors.Is(err, domainerrors.ErrInvalidBirthdayInput) {
		t.Fatalf("expected ErrInvalidBirthdayInput, got %v", err)
	}
}

func TestCreateBirthdayRejectsImpossibleDates(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	cases := []struct {
		name  string
		day   int
		month int
	}{
		{"month zero", 10, 0},
		{"month thirteen", 10, 13},
		{"day zero", 0, 6},
		{"april 31", 31, 4},
		{"february 30", 30, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), CreateBirthdayCommand{
				Name:     "Ana",
				Day:      tc.day,
				Month:    tc.month,
				ChurchID: "church-1",
			})
			if !errors.Is(err, domainerrors.ErrInvalidBirthdayDate) {
				t.Fatalf("expected ErrInvalidBirthdayDate, got %v", err)
			}
		})
	}
}

func TestCreateBirthdayAcceptsLeapDay(t *testing.T) {
	uc := newCreateUseCase(memory.NewStore(nil))

	birthday, err := uc.Execute(context.Background(), CreateBirthdayCommand{
		Name:     "  Marcos Silva  ",
		Day:      29,
		Month:    2,
		ChurchID: "church-1",
	})
	if err != nil {
		t.Fatalf("leap day must be storable: %v", err)
	}
	if birthday.Name != "Marcos Silva" {
		t.Fatalf("name must be trimmed, got %q", birthday.Name)
	}
	if birthday.BirthdayID == "" {
		t.Fatal("expected generated id")
	}
}

func TestUpdateBirthdayAppliesPartialFields(t *testing.T) {
	store := memory.NewStore(nil)
	created, err := newCreateUseCase(store).Execute(context.Background(), CreateBirthdayCommand{
		Name:     "Ana",
		Day:      15,
		Month:    6,
		ChurchID: "church-1",
		Notes:    "choir",
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	uc := UpdateBirthdayUseCase{
		Birthdays: store,
		Clock:     postgresadapter.SystemClock{},
	}
	newDay := 16
	updated, err := uc.Execute(context.Background(), UpdateBirthdayCommand{
		BirthdayID: created.BirthdayID,
		Day:        &newDay,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Day != 16 || updated.Name != "Ana" || updated.Notes != "choir" {
		t.Fatalf("unset fields must be preserved, got %+v", updated)
	}
}

func TestUpdateBirthdayValidatesResultingDate(t *testing.T) {
	store := memory.NewStore(nil)
	created, err := newCreateUseCase(store).Execute(context.Background(), CreateBirthdayCommand{
		Name:     "Ana",
		Day:      31,
		Month:    1,
		ChurchID: "church-1",
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	uc := UpdateBirthdayUseCase{
		Birthdays: store,
		Clock:     postgresadapter.SystemClock{},
	}
	newMonth := 4
	_, err = uc.Execute(context.Background(), UpdateBirthdayCommand{
		BirthdayID: created.BirthdayID,
		Month:      &newMonth,
	})
	if !errors.Is(err, domainerrors.ErrInvalidBirthdayDate) {
		t.Fatalf("moving january 31 to april must fail, got %v", err)
	}
}

func TestUpdateBirthdayUnknownID(t *testing.T) {
	uc := UpdateBirthdayUseCase{
		Birthdays: memory.NewStore(nil),
		Clock:     postgresadapter.SystemClock{},
	}
	name := "Ana"
	_, err := uc.Execute(context.Background(), UpdateBirthdayCommand{
		BirthdayID: "missing",
		Name:       &name,
	})
	if !errors.Is(err, domainerrors.ErrBirthdayNotFound) {
		t.Fatalf("expected ErrBirthdayNotFound, got %v", err)
	}
}

func TestDeleteBirthday(t *testing.T) {
	store := memory.NewStore(nil)
	created, err := newCreateUseCase(store).Execute(context.Background(), CreateBirthdayCommand{
		Name:     "Ana",
		Day:      15,
		Month:    6,
		ChurchID: "church-1",
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	uc := DeleteBirthdayUseCase{Birthdays: store}
	if err := uc.Execute(context.Background(), created.BirthdayID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := uc.Execute(context.Background(), created.BirthdayID); !errors.Is(err, domainerrors.ErrBirthdayNotFound) {
		t.Fatalf("second delete must report not found, got %v", err)
	}
}
