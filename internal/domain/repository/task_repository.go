package repository

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/lifecycle"
)

// TaskRepository defines the interface for task persistence.
// GetByManager returns the tasks of every project the given moderator
// manages.
type TaskRepository interface {
	Create(ctx context.Context, t *entity.Task) error
	GetByID(ctx context.Context, id string) (*entity.Task, error)
	GetAll(ctx context.Context) ([]entity.Task, error)
	GetByAssignee(ctx context.Context, userID string) ([]entity.Task, error)
	GetByManager(ctx context.Context, managerID string) ([]entity.Task, error)
	Update(ctx context.Context, id string, patch lifecycle.Patch) (*entity.Task, error)
	Delete(ctx context.Context, id string) error
}
