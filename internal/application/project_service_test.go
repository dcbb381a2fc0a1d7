package application

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/policy"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

func TestProjectListScoping(t *testing.T) {
	all := []entity.Project{
		{ID: "p1", ManagerID: strptr("mod-1")},
		{ID: "p2", ManagerID: strptr("mod-2")},
	}
	projects := &mockProjectRepo{
		getAllFn: func(ctx context.Context) ([]entity.Project, error) { return all, nil },
		getByManagerFn: func(ctx context.Context, managerID string) ([]entity.Project, error) {
			var out []entity.Project
			for _, p := range all {
				if p.ManagedBy(managerID) {
					out = append(out, p)
				}
			}
			return out, nil
		},
	}
	svc := NewProjectService(projects, &mockUserRepo{}, nil)

	got, err := svc.List(context.Background(), policy.Actor{ID: "adm", Role: entity.RoleAdmin})
	if err != nil || len(got) != 2 {
		t.Errorf("admin list = %d projects (%v), want 2", len(got), err)
	}
	got, err = svc.List(context.Background(), policy.Actor{ID: "mod-1", Role: entity.RoleModerator})
	if err != nil || len(got) != 1 || got[0].ID != "p1" {
		t.Errorf("moderator list = %+v (%v), want only p1", got, err)
	}
	// Plain users see all projects so task views can resolve names.
	got, err = svc.List(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser})
	if err != nil || len(got) != 2 {
		t.Errorf("user list = %d projects (%v), want 2", len(got), err)
	}
}

func TestProjectCreateModeratorBecomesManager(t *testing.T) {
	var created *entity.Project
	projects := &mockProjectRepo{
		createFn: func(ctx context.Context, p *entity.Project) error {
			p.ID = "p1"
			created = p
			return nil
		},
	}
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.User, error) {
			return &entity.User{ID: id, Role: entity.RoleModerator}, nil
		},
	}
	svc := NewProjectService(projects, users, nil)

	p, err := svc.Create(context.Background(), policy.Actor{ID: "mod-1", Role: entity.RoleModerator}, CreateProjectInput{Name: "Website Redesign"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ManagerID == nil || *p.ManagerID != "mod-1" {
		t.Errorf("manager = %v, want mod-1", p.ManagerID)
	}
	if !created.IsActive {
		t.Error("projects default to active")
	}
}

func TestProjectCreateAdminWithoutManager(t *testing.T) {
	projects := &mockProjectRepo{
		createFn: func(ctx context.Context, p *entity.Project) error { p.ID = "p1"; return nil },
	}
	svc := NewProjectService(projects, &mockUserRepo{}, nil)

	p, err := svc.Create(context.Background(), policy.Actor{ID: "adm", Role: entity.RoleAdmin}, CreateProjectInput{Name: "Backlog"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ManagerID != nil {
		t.Errorf("admin-created project should stay unmanaged, got %v", *p.ManagerID)
	}
}

func TestProjectCreateManagerValidation(t *testing.T) {
	users := &mockUserRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.User, error) {
			if id == "u-plain" {
				return &entity.User{ID: id, Role: entity.RoleUser}, nil
			}
			return nil, repo.ErrNotFound
		},
	}
	svc := NewProjectService(&mockProjectRepo{}, users, nil)
	actor := policy.Actor{ID: "adm", Role: entity.RoleAdmin}

	_, err := svc.Create(context.Background(), actor, CreateProjectInput{Name: "X", ManagerID: strptr("ghost")})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("missing manager: expected ErrValidation, got %v", err)
	}
	_, err = svc.Create(context.Background(), actor, CreateProjectInput{Name: "X", ManagerID: strptr("u-plain")})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("non-moderator manager: expected ErrValidation, got %v", err)
	}
}

func TestProjectCreateForbiddenForUser(t *testing.T) {
	svc := NewProjectService(&mockProjectRepo{}, &mockUserRepo{}, nil)
	_, err := svc.Create(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser}, CreateProjectInput{Name: "X"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestProjectUpdateOwnership(t *testing.T) {
	stored := &entity.Project{ID: "p1", Name: "Old", ManagerID: strptr("mod-1")}
	projects := &mockProjectRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Project, error) {
			if id == "p1" {
				return stored, nil
			}
			return nil, repo.ErrNotFound
		},
		updateFn: func(ctx context.Context, id string, upd repo.ProjectUpdate) (*entity.Project, error) {
			p := *stored
			if upd.Name != nil {
				p.Name = *upd.Name
			}
			return &p, nil
		},
	}
	svc := NewProjectService(projects, &mockUserRepo{}, nil)
	upd := repo.ProjectUpdate{Name: strptr("New")}

	// Missing project is NotFound before any policy check.
	_, err := svc.Update(context.Background(), policy.Actor{ID: "mod-1", Role: entity.RoleModerator}, "ghost", upd)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Admin and foreign moderators are both refused.
	for _, actor := range []policy.Actor{
		{ID: "adm", Role: entity.RoleAdmin},
		{ID: "mod-2", Role: entity.RoleModerator},
		{ID: "u1", Role: entity.RoleUser},
	} {
		if _, err := svc.Update(context.Background(), actor, "p1", upd); !errors.Is(err, ErrForbidden) {
			t.Errorf("%s: expected ErrForbidden, got %v", actor.ID, err)
		}
	}

	got, err := svc.Update(context.Background(), policy.Actor{ID: "mod-1", Role: entity.RoleModerator}, "p1", upd)
	if err != nil {
		t.Fatalf("owner update failed: %v", err)
	}
	if got.Name != "New" {
		t.Errorf("name = %s, want New", got.Name)
	}
}

func TestProjectDeleteOwnership(t *testing.T) {
	deleted := false
	projects := &mockProjectRepo{
		getByIDFn: func(ctx context.Context, id string) (*entity.Project, error) {
			return &entity.Project{ID: id, ManagerID: strptr("mod-1")}, nil
		},
		deleteFn: func(ctx context.Context, id string) error { deleted = true; return nil },
	}
	svc := NewProjectService(projects, &mockUserRepo{}, nil)

	if err := svc.Delete(context.Background(), policy.Actor{ID: "adm", Role: entity.RoleAdmin}, "p1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), policy.Actor{ID: "mod-1", Role: entity.RoleModerator}, "p1"); err != nil {
		t.Errorf("owner delete failed: %v", err)
	}
	if !deleted {
		t.Error("repository delete was not called")
	}
}
