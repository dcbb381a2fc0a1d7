package application

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/taskhive/internal/domain/entity"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
	"github.com/taskhive/taskhive/pkg/helpers"
)

func TestRegisterDefaultsToUserRole(t *testing.T) {
	var created *entity.User
	users := &mockUserRepo{
		createFn: func(ctx context.Context, u *entity.User) error {
			u.ID = "u1"
			created = u
			return nil
		},
	}
	svc := NewAuthService(users, nil, nil, nil)

	u, err := svc.Register(context.Background(), RegisterInput{
		Username: "dev", Password: "password", FullName: "Developer One",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if u.Role != entity.RoleUser {
		t.Errorf("role = %s, want user", u.Role)
	}
	if created == nil || created.Password == "password" {
		t.Error("password must be stored hashed")
	}
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, nil, nil, nil)
	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "x", Password: "password", Role: entity.Role("overlord"),
	})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestRegisterSecondAdminConflicts(t *testing.T) {
	users := &mockUserRepo{
		getByRoleFn: func(ctx context.Context, role entity.Role) ([]entity.User, error) {
			return []entity.User{{ID: "a1", Role: entity.RoleAdmin}}, nil
		},
	}
	svc := NewAuthService(users, nil, nil, nil)

	_, err := svc.Register(context.Background(), RegisterInput{
		Username: "boss", Password: "password", Role: entity.RoleAdmin,
	})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestRegisterMapsStorageConflicts(t *testing.T) {
	cases := []struct {
		name     string
		storeErr error
	}{
		{"duplicate username", repo.ErrDuplicateUsername},
		{"admin exists", repo.ErrAdminExists},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			users := &mockUserRepo{
				createFn: func(ctx context.Context, u *entity.User) error { return tc.storeErr },
			}
			svc := NewAuthService(users, nil, nil, nil)
			_, err := svc.Register(context.Background(), RegisterInput{
				Username: "dev", Password: "password",
			})
			if !errors.Is(err, ErrConflict) {
				t.Errorf("expected ErrConflict, got %v", err)
			}
		})
	}
}

func TestRegisterExistingUsernameConflicts(t *testing.T) {
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			return &entity.User{ID: "u1", Username: "Dev"}, nil
		},
	}
	svc := NewAuthService(users, nil, nil, nil)
	_, err := svc.Register(context.Background(), RegisterInput{Username: "dev", Password: "password"})
	if !errors.Is(err, ErrConflict) {
		t.Errorf("expected ErrConflict, got %v", err)
	}
}

func TestAuthenticate(t *testing.T) {
	hash, err := helpers.HashPassword("correct horse")
	if err != nil {
		t.Fatal(err)
	}
	users := &mockUserRepo{
		getByUsernameFn: func(ctx context.Context, username string) (*entity.User, error) {
			if username == "dev" {
				return &entity.User{ID: "u1", Username: "dev", Password: hash}, nil
			}
			return nil, repo.ErrNotFound
		},
	}
	svc := NewAuthService(users, nil, nil, nil)

	if _, err := svc.Authenticate(context.Background(), "dev", "correct horse"); err != nil {
		t.Errorf("valid credentials rejected: %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "dev", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, err := svc.Authenticate(context.Background(), "ghost", "any"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestCurrentUserNotFound(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{}, nil, nil, nil)
	if _, err := svc.CurrentUser(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
