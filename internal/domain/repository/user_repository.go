package repository

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain/entity"
)

// UserRepository defines the interface for identity persistence.
// GetByUsername matches case-insensitively.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByUsername(ctx context.Context, username string) (*entity.User, error)
	GetAll(ctx context.Context) ([]entity.User, error)
	GetByRole(ctx context.Context, role entity.Role) ([]entity.User, error)
}
