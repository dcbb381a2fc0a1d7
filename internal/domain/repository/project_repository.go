package repository

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain/entity"
)

// ProjectUpdate is the partial-update set for a project. Nil fields are
// left unchanged.
type ProjectUpdate struct {
	Name        *string
	Description *string
	ManagerID   *string
	IsActive    *bool
}

// ProjectRepository defines the interface for project persistence.
// Delete removes the project and all of its tasks in one transaction.
type ProjectRepository interface {
	Create(ctx context.Context, p *entity.Project) error
	GetByID(ctx context.Context, id string) (*entity.Project, error)
	GetAll(ctx context.Context) ([]entity.Project, error)
	GetByManager(ctx context.Context, managerID string) ([]entity.Project, error)
	Update(ctx context.Context, id string, upd ProjectUpdate) (*entity.Project, error)
	Delete(ctx context.Context, id string) error
}
