package application

import (
	"context"
	"fmt"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/policy"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

// UserService serves the user listing endpoints. Role gates are enforced
// here as well as at the route level so the rules hold no matter how the
// service is reached.
type UserService struct {
	Users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{Users: users}
}

// ListAll returns every user. Admin only.
func (s *UserService) ListAll(ctx context.Context, actor policy.Actor) ([]entity.User, error) {
	if !policy.CanPerform(actor, policy.ActionUserListAll, policy.Resource{}) {
		return nil, fmt.Errorf("%w: user listing is admin only", ErrForbidden)
	}
	return s.Users.GetAll(ctx)
}

// ListAssignable returns users with the plain user role, used to populate
// assignee pickers. Admin or moderator.
func (s *UserService) ListAssignable(ctx context.Context, actor policy.Actor) ([]entity.User, error) {
	if !policy.CanPerform(actor, policy.ActionUserListRole, policy.Resource{}) {
		return nil, fmt.Errorf("%w: assignee listing requires admin or moderator", ErrForbidden)
	}
	return s.Users.GetByRole(ctx, entity.RoleUser)
}
