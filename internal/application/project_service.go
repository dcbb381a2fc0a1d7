package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/policy"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

// ProjectService implements the project registry with role-scoped listing.
type ProjectService struct {
	Projects repo.ProjectRepository
	Users    repo.UserRepository
	Logger   *logrus.Logger
}

func NewProjectService(projects repo.ProjectRepository, users repo.UserRepository, logger *logrus.Logger) *ProjectService {
	return &ProjectService{Projects: projects, Users: users, Logger: logger}
}

// List scopes projects by role: admin sees all, moderators only what they
// manage, plain users all projects (for name resolution).
func (s *ProjectService) List(ctx context.Context, actor policy.Actor) ([]entity.Project, error) {
	switch policy.ProjectListScope(actor) {
	case policy.ScopeAll:
		return s.Projects.GetAll(ctx)
	case policy.ScopeManaged:
		return s.Projects.GetByManager(ctx, actor.ID)
	default:
		return []entity.Project{}, nil
	}
}

type CreateProjectInput struct {
	Name        string
	Description string
	ManagerID   *string
	IsActive    *bool
}

// Create is allowed for admins and moderators. A moderator who omits the
// manager becomes the manager. An explicit manager must reference an
// existing moderator; that relationship is checked here once, at creation,
// and never re-validated afterwards.
func (s *ProjectService) Create(ctx context.Context, actor policy.Actor, in CreateProjectInput) (*entity.Project, error) {
	if !policy.CanPerform(actor, policy.ActionProjectCreate, policy.Resource{}) {
		return nil, fmt.Errorf("%w: project creation requires admin or moderator", ErrForbidden)
	}

	managerID := in.ManagerID
	if managerID == nil && actor.Role == entity.RoleModerator {
		id := actor.ID
		managerID = &id
	}
	if managerID != nil {
		mgr, err := s.Users.GetByID(ctx, *managerID)
		if err != nil {
			if errors.Is(err, repo.ErrNotFound) {
				return nil, fmt.Errorf("%w: manager %s does not exist", ErrValidation, *managerID)
			}
			return nil, err
		}
		if mgr.Role != entity.RoleModerator {
			return nil, fmt.Errorf("%w: manager must be a moderator", ErrValidation)
		}
	}

	active := true
	if in.IsActive != nil {
		active = *in.IsActive
	}
	p := &entity.Project{
		Name:        in.Name,
		Description: in.Description,
		ManagerID:   managerID,
		IsActive:    active,
	}
	if err := s.Projects.Create(ctx, p); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": p.ID, "actor_id": actor.ID}).Info("project created")
	}
	return p, nil
}

// Get returns a single project to any authenticated actor.
func (s *ProjectService) Get(ctx context.Context, actor policy.Actor, id string) (*entity.Project, error) {
	if !policy.CanPerform(actor, policy.ActionProjectRead, policy.Resource{}) {
		return nil, ErrForbidden
	}
	p, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return p, nil
}

// Update is restricted to the owning moderator; admins cannot update
// projects they do not manage, and never manage any since managers are
// moderators.
func (s *ProjectService) Update(ctx context.Context, actor policy.Actor, id string, upd repo.ProjectUpdate) (*entity.Project, error) {
	p, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !policy.CanPerform(actor, policy.ActionProjectUpdate, policy.Resource{Project: p}) {
		return nil, fmt.Errorf("%w: only the project's manager may update it", ErrForbidden)
	}
	updated, err := s.Projects.Update(ctx, id, upd)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return updated, nil
}

// Delete is restricted like Update and cascades to the project's tasks in
// one transaction.
func (s *ProjectService) Delete(ctx context.Context, actor policy.Actor, id string) error {
	p, err := s.Projects.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !policy.CanPerform(actor, policy.ActionProjectDelete, policy.Resource{Project: p}) {
		return fmt.Errorf("%w: only the project's manager may delete it", ErrForbidden)
	}
	if err := s.Projects.Delete(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"project_id": id, "actor_id": actor.ID}).Info("project deleted")
	}
	return nil
}
