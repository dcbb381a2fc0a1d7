package application

import (
	"context"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/lifecycle"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

type mockUserRepo struct {
	createFn        func(ctx context.Context, u *entity.User) error
	getByIDFn       func(ctx context.Context, id string) (*entity.User, error)
	getByUsernameFn func(ctx context.Context, username string) (*entity.User, error)
	getAllFn        func(ctx context.Context) ([]entity.User, error)
	getByRoleFn     func(ctx context.Context, role entity.Role) ([]entity.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, u)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*entity.User, error) {
	if m.getByUsernameFn != nil {
		return m.getByUsernameFn(ctx, username)
	}
	return nil, repo.ErrNotFound
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]entity.User, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByRole(ctx context.Context, role entity.Role) ([]entity.User, error) {
	if m.getByRoleFn != nil {
		return m.getByRoleFn(ctx, role)
	}
	return nil, nil
}

type mockProjectRepo struct {
	createFn       func(ctx context.Context, p *entity.Project) error
	getByIDFn      func(ctx context.Context, id string) (*entity.Project, error)
	getAllFn       func(ctx context.Context) ([]entity.Project, error)
	getByManagerFn func(ctx context.Context, managerID string) ([]entity.Project, error)
	updateFn       func(ctx context.Context, id string, upd repo.ProjectUpdate) (*entity.Project, error)
	deleteFn       func(ctx context.Context, id string) error
}

func (m *mockProjectRepo) Create(ctx context.Context, p *entity.Project) error {
	if m.createFn != nil {
		return m.createFn(ctx, p)
	}
	return nil
}

func (m *mockProjectRepo) GetByID(ctx context.Context, id string) (*entity.Project, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockProjectRepo) GetAll(ctx context.Context) ([]entity.Project, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockProjectRepo) GetByManager(ctx context.Context, managerID string) ([]entity.Project, error) {
	if m.getByManagerFn != nil {
		return m.getByManagerFn(ctx, managerID)
	}
	return nil, nil
}

func (m *mockProjectRepo) Update(ctx context.Context, id string, upd repo.ProjectUpdate) (*entity.Project, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, upd)
	}
	return nil, repo.ErrNotFound
}

func (m *mockProjectRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockTaskRepo struct {
	createFn        func(ctx context.Context, t *entity.Task) error
	getByIDFn       func(ctx context.Context, id string) (*entity.Task, error)
	getAllFn        func(ctx context.Context) ([]entity.Task, error)
	getByAssigneeFn func(ctx context.Context, userID string) ([]entity.Task, error)
	getByManagerFn  func(ctx context.Context, managerID string) ([]entity.Task, error)
	updateFn        func(ctx context.Context, id string, patch lifecycle.Patch) (*entity.Task, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (m *mockTaskRepo) Create(ctx context.Context, t *entity.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id string) (*entity.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, repo.ErrNotFound
}

func (m *mockTaskRepo) GetAll(ctx context.Context) ([]entity.Task, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetByAssignee(ctx context.Context, userID string) ([]entity.Task, error) {
	if m.getByAssigneeFn != nil {
		return m.getByAssigneeFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockTaskRepo) GetByManager(ctx context.Context, managerID string) ([]entity.Task, error) {
	if m.getByManagerFn != nil {
		return m.getByManagerFn(ctx, managerID)
	}
	return nil, nil
}

func (m *mockTaskRepo) Update(ctx context.Context, id string, patch lifecycle.Patch) (*entity.Task, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return nil, repo.ErrNotFound
}

func (m *mockTaskRepo) Delete(ctx context.Context, id string) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

func strptr(s string) *string { return &s }
