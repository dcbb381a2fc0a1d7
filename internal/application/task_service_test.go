package application

import (
	"context"
	"errors"
	"testing"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/lifecycle"
	"github.com/taskhive/taskhive/internal/domain/policy"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

func taskFixtures() (*mockTaskRepo, *mockProjectRepo) {
	projects := []entity.Project{
		{ID: "p1", ManagerID: strptr("mod-1")},
	}
	tasks := []entity.Task{
		{ID: "t1", ProjectID: "p1", Title: "fix login", AssignedToID: strptr("u1"), Status: entity.TaskOpen},
		{ID: "t2", ProjectID: "p-gone", Title: "orphan", AssignedToID: strptr("u1"), Status: entity.TaskOpen},
	}

	taskRepo := &mockTaskRepo{
		getAllFn: func(ctx context.Context) ([]entity.Task, error) { return tasks, nil },
		getByIDFn: func(ctx context.Context, id string) (*entity.Task, error) {
			for i := range tasks {
				if tasks[i].ID == id {
					t := tasks[i]
					return &t, nil
				}
			}
			return nil, repo.ErrNotFound
		},
		getByAssigneeFn: func(ctx context.Context, userID string) ([]entity.Task, error) {
			var out []entity.Task
			for _, t := range tasks {
				if t.AssignedTo(userID) {
					out = append(out, t)
				}
			}
			return out, nil
		},
		getByManagerFn: func(ctx context.Context, managerID string) ([]entity.Task, error) {
			if managerID == "mod-1" {
				return tasks[:1], nil
			}
			return nil, nil
		},
		updateFn: func(ctx context.Context, id string, patch lifecycle.Patch) (*entity.Task, error) {
			for _, t := range tasks {
				if t.ID == id {
					updated := lifecycle.Apply(t, patch)
					return &updated, nil
				}
			}
			return nil, repo.ErrNotFound
		},
	}
	projectRepo := &mockProjectRepo{
		getAllFn: func(ctx context.Context) ([]entity.Project, error) { return projects, nil },
		getByIDFn: func(ctx context.Context, id string) (*entity.Project, error) {
			for i := range projects {
				if projects[i].ID == id {
					p := projects[i]
					return &p, nil
				}
			}
			return nil, repo.ErrNotFound
		},
	}
	return taskRepo, projectRepo
}

func TestTaskListExcludesOrphans(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")

	got, err := svc.List(context.Background(), policy.Actor{ID: "adm", Role: entity.RoleAdmin})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("admin list = %+v, want only t1", got)
	}

	// The orphan is also invisible to its own assignee in listings.
	got, err = svc.List(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("assignee list = %+v, want only t1", got)
	}
}

func TestTaskCreateRequiresExistingProject(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")
	actor := policy.Actor{ID: "mod-1", Role: entity.RoleModerator}

	_, err := svc.Create(context.Background(), actor, CreateTaskInput{ProjectID: "nope", Title: "x"})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation for dangling project, got %v", err)
	}

	taskRepo.createFn = func(ctx context.Context, task *entity.Task) error {
		task.ID = "t3"
		return nil
	}
	task, err := svc.Create(context.Background(), actor, CreateTaskInput{ProjectID: "p1", Title: "new"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if task.Status != entity.TaskOpen {
		t.Errorf("new tasks start open, got %s", task.Status)
	}
}

func TestTaskCreateForbiddenForUser(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")
	_, err := svc.Create(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser}, CreateTaskInput{ProjectID: "p1", Title: "x"})
	if !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden, got %v", err)
	}
}

func TestTaskUpdateAuthorization(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")
	status := entity.TaskInProgress
	patch := lifecycle.Patch{Status: &status}

	// Missing task is NotFound, not Forbidden.
	if _, err := svc.Update(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser}, "ghost", patch); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}

	// Neither admin nor a foreign user may touch t1.
	for _, actor := range []policy.Actor{
		{ID: "adm", Role: entity.RoleAdmin},
		{ID: "u2", Role: entity.RoleUser},
		{ID: "mod-2", Role: entity.RoleModerator},
	} {
		if _, err := svc.Update(context.Background(), actor, "t1", patch); !errors.Is(err, ErrForbidden) {
			t.Errorf("%s: expected ErrForbidden, got %v", actor.ID, err)
		}
	}

	// Assignee and managing moderator both may.
	for _, actor := range []policy.Actor{
		{ID: "u1", Role: entity.RoleUser},
		{ID: "mod-1", Role: entity.RoleModerator},
	} {
		got, err := svc.Update(context.Background(), actor, "t1", patch)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", actor.ID, err)
			continue
		}
		if got.Status != entity.TaskInProgress {
			t.Errorf("%s: status = %s, want in_progress", actor.ID, got.Status)
		}
	}
}

func TestTaskUpdateOrphanAssigneeStillAllowed(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")
	status := entity.TaskResolved

	// t2's parent is gone: the assignee keeps access, a moderator does not.
	if _, err := svc.Update(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser}, "t2", lifecycle.Patch{Status: &status}); err != nil {
		t.Errorf("assignee update on orphan failed: %v", err)
	}
	if _, err := svc.Update(context.Background(), policy.Actor{ID: "mod-1", Role: entity.RoleModerator}, "t2", lifecycle.Patch{Status: &status}); !errors.Is(err, ErrForbidden) {
		t.Errorf("expected ErrForbidden for moderator on orphan, got %v", err)
	}
}

func TestTaskResolveWithoutNotesAccepted(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")
	status := entity.TaskResolved

	got, err := svc.Update(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser}, "t1", lifecycle.Patch{Status: &status})
	if err != nil {
		t.Fatalf("resolve without notes rejected: %v", err)
	}
	if got.ResolutionNotes != "" {
		t.Errorf("notes = %q, want empty", got.ResolutionNotes)
	}
}

func TestTaskUpdateRejectsUnknownStatus(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")
	bad := entity.TaskStatus("paused")

	_, err := svc.Update(context.Background(), policy.Actor{ID: "u1", Role: entity.RoleUser}, "t1", lifecycle.Patch{Status: &bad})
	if !errors.Is(err, ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

func TestTaskDelete(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	deleted := ""
	taskRepo.deleteFn = func(ctx context.Context, id string) error { deleted = id; return nil }
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")

	if err := svc.Delete(context.Background(), policy.Actor{ID: "adm", Role: entity.RoleAdmin}, "t1"); !errors.Is(err, ErrForbidden) {
		t.Errorf("admin delete: expected ErrForbidden, got %v", err)
	}
	if err := svc.Delete(context.Background(), policy.Actor{ID: "mod-1", Role: entity.RoleModerator}, "t1"); err != nil {
		t.Errorf("manager delete failed: %v", err)
	}
	if deleted != "t1" {
		t.Errorf("deleted = %q, want t1", deleted)
	}
}

func TestTaskSearchWithoutElasticsearch(t *testing.T) {
	taskRepo, projectRepo := taskFixtures()
	svc := NewTaskService(taskRepo, projectRepo, nil, nil, "")

	got, err := svc.Search(context.Background(), policy.Actor{ID: "adm", Role: entity.RoleAdmin}, "login", 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("search without es should be empty, got %d", len(got))
	}
}
