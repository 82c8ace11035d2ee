package commands

import (
	"context"
	"errors"
	"testing"

	"agendaviva/contexts/agenda/directory-service/adapters/memory"
	postgresadapter "agendaviva/contexts/agenda/directory-service/adapters/postgres"
	"agendaviva/contexts/agenda/directory-service/adapters/security"
	domainerrors "agendaviva/contexts/agenda/directory-service/domain/errors"
)

func newChurchUseCase(store *memory.Store) CreateChurchUseCase {
	return CreateChurchUseCase{
		Churches:    store,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}
}

func TestCreateChurchRejectsDuplicateNameCaseInsensitive(t *testing.T) {
	store := memory.NewStore()
	uc := newChurchUseCase(store)

	if _, err := uc.Execute(context.Background(), CreateChurchCommand{Name: "Igreja Central"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := uc.Execute(context.Background(), CreateChurchCommand{Name: "  igreja central  "})
	if !errors.Is(err, domainerrors.ErrDuplicateChurch) {
		t.Fatalf("expected ErrDuplicateChurch, got %v", err)
	}
}

func TestCreateChurchValidatesColorCode(t *testing.T) {
	uc := newChurchUseCase(memory.NewStore())

	_, err := uc.Execute(context.Background(), CreateChurchCommand{
		Name:      "Igreja Norte",
		ColorCode: "blue",
	})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for bad color, got %v", err)
	}
	if _, err := uc.Execute(context.Background(), CreateChurchCommand{
		Name:      "Igreja Norte",
		ColorCode: "#1a6b3f",
	}); err != nil {
		t.Fatalf("hex color must be accepted: %v", err)
	}
}

func TestCreateResourceDefaultsAndValidation(t *testing.T) {
	store := memory.NewStore()
	uc := CreateResourceUseCase{
		Resources:   store,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}

	created, err := uc.Execute(context.Background(), CreateResourceCommand{Name: "Salão Principal", Type: "space"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if !created.Available {
		t.Fatal("resources default to available")
	}

	_, err = uc.Execute(context.Background(), CreateResourceCommand{Name: "Van", Type: "vehicle"})
	if !errors.Is(err, domainerrors.ErrInvalidInput) {
		t.Fatalf("unknown type must be rejected, got %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateResourceCommand{Name: "salão principal", Type: "space"})
	if !errors.Is(err, domainerrors.ErrDuplicateResource) {
		t.Fatalf("expected ErrDuplicateResource, got %v", err)
	}
}

func TestCreateUserHashesPasswordAndGuardsEmail(t *testing.T) {
	store := memory.NewStore()
	hasher := security.BcryptHasher{Cost: 4}
	uc := CreateUserUseCase{
		Users:       store,
		Hasher:      hasher,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}

	user, err := uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Ana Silva",
		Email:    "Ana@Example.com",
		Password: "s3cret!",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("email must be normalized, got %q", user.Email)
	}
	if user.Role != "member" {
		t.Fatalf("role must default to member, got %q", user.Role)
	}
	if user.PasswordHash == "s3cret!" || user.PasswordHash == "" {
		t.Fatal("password must be stored hashed")
	}
	if err := hasher.Compare(user.PasswordHash, "s3cret!"); err != nil {
		t.Fatalf("stored hash must verify the original password: %v", err)
	}

	_, err = uc.Execute(context.Background(), CreateUserCommand{
		Name:     "Other Ana",
		Email:    "ANA@example.com",
		Password: "different",
	})
	if !errors.Is(err, domainerrors.ErrDuplicateEmail) {
		t.Fatalf("expected ErrDuplicateEmail, got %v", err)
	}
}

func TestCreateUserRejectsBadInput(t *testing.T) {
	uc := CreateUserUseCase{
		Users:       memory.NewStore(),
		Hasher:      security.BcryptHasher{Cost: 4},
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}

	cases := []struct {
		name string
		cmd  CreateUserCommand
	}{
		{"missing password", CreateUserCommand{Name: "Ana", Email: "ana@example.com"}},
		{"bad email", CreateUserCommand{Name: "Ana", Email: "not-an-email", Password: "x1"}},
		{"bad role", CreateUserCommand{Name: "Ana", Email: "ana@example.com", Password: "x1", Role: "owner"}},
		{"blank name", CreateUserCommand{Name: "  ", Email: "ana@example.com", Password: "x1"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := uc.Execute(context.Background(), tc.cmd); !errors.Is(err, domainerrors.ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestUpdateUserKeepsHashUnlessPasswordChanges(t *testing.T) {
	store := memory.NewStore()
	hasher := security.BcryptHasher{Cost: 4}
	created, err := CreateUserUseCase{
		Users:       store,
		Hasher:      hasher,
		Clock:       postgresadapter.SystemClock{},
		IDGenerator: postgresadapter.UUIDGenerator{},
	}.Execute(context.Background(), CreateUserCommand{
		Name:     "Ana",
		Email:    "ana@example.com",
		Password: "original",
	})
	if err != nil {
		t.Fatalf("seed create failed: %v", err)
	}

	uc := UpdateUserUseCase{
		Users:  store,
		Hasher: hasher,
		Clock:  postgresadapter.SystemClock{},
	}
	newName := "Ana Silva"
	updated, err := uc.Execute(context.Background(), UpdateUserCommand{
		UserID: created.UserID,
		Name:   &newName,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.PasswordHash != created.PasswordHash {
		t.Fatal("hash must not change without a new password")
	}

	newPassword := "rotated"
	updated, err = uc.Execute(context.Background(), UpdateUserCommand{
		UserID:   created.UserID,
		Password: &newPassword,
	})
	if err != nil {
		t.Fatalf("password update failed: %v", err)
	}
	if err := hasher.Compare(updated.PasswordHash, "rotated"); err != nil {
		t.Fatalf("new hash must verify the new password: %v", err)
	}
}
