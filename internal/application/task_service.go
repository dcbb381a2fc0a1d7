package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/lifecycle"
	"github.com/taskhive/taskhive/internal/domain/policy"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

// TaskService drives the task lifecycle. Every mutation resolves the task
// and its parent project first, then consults the policy, then lets the
// lifecycle schema apply the patch.
type TaskService struct {
	Tasks        repo.TaskRepository
	Projects     repo.ProjectRepository
	Logger       *logrus.Logger
	ES           *elasticsearch.Client
	ESTasksIndex string
}

func NewTaskService(tasks repo.TaskRepository, projects repo.ProjectRepository, logger *logrus.Logger, es *elasticsearch.Client, esTasksIndex string) *TaskService {
	return &TaskService{Tasks: tasks, Projects: projects, Logger: logger, ES: es, ESTasksIndex: esTasksIndex}
}

// List scopes tasks by role and drops tasks whose parent project is gone.
func (s *TaskService) List(ctx context.Context, actor policy.Actor) ([]entity.Task, error) {
	var (
		tasks []entity.Task
		err   error
	)
	switch policy.TaskListScope(actor) {
	case policy.ScopeAll:
		tasks, err = s.Tasks.GetAll(ctx)
	case policy.ScopeManaged:
		tasks, err = s.Tasks.GetByManager(ctx, actor.ID)
	case policy.ScopeAssigned:
		tasks, err = s.Tasks.GetByAssignee(ctx, actor.ID)
	default:
		return []entity.Task{}, nil
	}
	if err != nil {
		return nil, err
	}
	projects, err := s.Projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dropOrphanTasks(tasks, projects), nil
}

type CreateTaskInput struct {
	ProjectID    string
	Title        string
	Description  string
	AssignedToID *string
}

// Create is allowed for admins and moderators. The parent project must
// exist; a dangling projectId is a validation failure, not a 404.
func (s *TaskService) Create(ctx context.Context, actor policy.Actor, in CreateTaskInput) (*entity.Task, error) {
	if !policy.CanPerform(actor, policy.ActionTaskCreate, policy.Resource{}) {
		return nil, fmt.Errorf("%w: task creation requires admin or moderator", ErrForbidden)
	}
	if _, err := s.Projects.GetByID(ctx, in.ProjectID); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, fmt.Errorf("%w: project %s does not exist", ErrValidation, in.ProjectID)
		}
		return nil, err
	}

	t := &entity.Task{
		ProjectID:    in.ProjectID,
		Title:        in.Title,
		Description:  in.Description,
		Status:       entity.TaskOpen,
		AssignedToID: in.AssignedToID,
	}
	if err := s.Tasks.Create(ctx, t); err != nil {
		return nil, err
	}
	s.indexTask(ctx, t)
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "project_id": t.ProjectID}).Info("task created")
	}
	return t, nil
}

// Update applies a partial patch. Authorization is the coarse
// assignee-or-manager rule for every field including status transitions;
// NotFound and Forbidden stay distinct.
func (s *TaskService) Update(ctx context.Context, actor policy.Actor, id string, patch lifecycle.Patch) (*entity.Task, error) {
	if err := patch.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	t, parent, err := s.resolve(ctx, id)
	if err != nil {
		return nil, err
	}
	if !policy.CanPerform(actor, policy.ActionTaskUpdate, policy.Resource{Task: t, Project: parent}) {
		return nil, fmt.Errorf("%w: only the assignee or the project's manager may update this task", ErrForbidden)
	}
	updated, err := s.Tasks.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	s.indexTask(ctx, updated)
	return updated, nil
}

// Delete shares Update's authorization rule.
func (s *TaskService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	t, parent, err := s.resolve(ctx, id)
	if err != nil {
		return err
	}
	if !policy.CanPerform(actor, policy.ActionTaskDelete, policy.Resource{Task: t, Project: parent}) {
		return fmt.Errorf("%w: only the assignee or the project's manager may delete this task", ErrForbidden)
	}
	if err := s.Tasks.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	s.removeFromIndex(ctx, id)
	return nil
}

// resolve loads the task and, best effort, its parent project. A missing
// parent leaves the project nil: the assignee may still act on an orphaned
// task, a manager cannot be established for it.
func (s *TaskService) resolve(ctx context.Context, id string) (*entity.Task, *entity.Project, error) {
	t, err := s.Tasks.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	parent, err := s.Projects.GetByID(ctx, t.ProjectID)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, nil, err
	}
	return t, parent, nil
}

// Search runs a multi_match query against the task index, then returns only
// the hits the actor is allowed to see by the regular list scoping. With no
// Elasticsearch configured it returns an empty result rather than failing.
func (s *TaskService) Search(ctx context.Context, actor policy.Actor, q string, size int) ([]entity.Task, error) {
	if s.ES == nil || s.ESTasksIndex == "" {
		return []entity.Task{}, nil
	}
	if size <= 0 || size > 50 {
		size = 10
	}
	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"title^2", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESTasksIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	hitIDs := make(map[string]struct{}, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		hitIDs[h.ID] = struct{}{}
	}

	visible, err := s.List(ctx, actor)
	if err != nil {
		return nil, err
	}
	out := make([]entity.Task, 0, len(hitIDs))
	for _, t := range visible {
		if _, ok := hitIDs[t.ID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (s *TaskService) indexTask(ctx context.Context, t *entity.Task) {
	if s.ES == nil || s.ESTasksIndex == "" {
		return
	}
	doc := map[string]any{
		"id":          t.ID,
		"project_id":  t.ProjectID,
		"title":       t.Title,
		"description": t.Description,
		"status":      t.Status.String(),
		"created_at":  t.CreatedAt.Format(time.RFC3339Nano),
	}
	b, _ := json.Marshal(doc)
	req := esapi.IndexRequest{Index: s.ESTasksIndex, DocumentID: t.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", t.ID).Warn("es index failed")
		}
		return
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && s.Logger != nil {
		s.Logger.WithField("status", res.Status()).WithField("task_id", t.ID).Warn("es index response error")
	}
}

func (s *TaskService) removeFromIndex(ctx context.Context, id string) {
	if s.ES == nil || s.ESTasksIndex == "" {
		return
	}
	req := esapi.DeleteRequest{Index: s.ESTasksIndex, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("task_id", id).Warn("es delete failed")
		}
		return
	}
	_ = res.Body.Close()
}
