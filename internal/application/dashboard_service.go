package application

import (
	"context"
	"fmt"

	"github.com/taskhive/taskhive/internal/domain/entity"
	"github.com/taskhive/taskhive/internal/domain/lifecycle"
	"github.com/taskhive/taskhive/internal/domain/policy"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
)

// DashboardService computes the role-scoped aggregates behind the dashboard
// and analytics views. Each aggregate runs through the orphan-task filter
// before counting.
type DashboardService struct {
	Users    repo.UserRepository
	Projects repo.ProjectRepository
	Tasks    repo.TaskRepository
}

func NewDashboardService(users repo.UserRepository, projects repo.ProjectRepository, tasks repo.TaskRepository) *DashboardService {
	return &DashboardService{Users: users, Projects: projects, Tasks: tasks}
}

// AdminStats are system-wide totals.
type AdminStats struct {
	TotalProjects  int `json:"totalProjects"`
	TotalTasks     int `json:"totalTasks"`
	ActiveUsers    int `json:"activeUsers"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
}

// ModeratorStats are totals scoped to the projects the moderator manages.
type ModeratorStats struct {
	MyProjects     int `json:"myProjects"`
	MyTasks        int `json:"myTasks"`
	ActiveProjects int `json:"activeProjects"`
	CompletedTasks int `json:"completedTasks"`
	PendingTasks   int `json:"pendingTasks"`
}

// UserStats are totals scoped to the tasks assigned to the user.
type UserStats struct {
	AssignedTasks   int `json:"assignedTasks"`
	CompletedTasks  int `json:"completedTasks"`
	PendingTasks    int `json:"pendingTasks"`
	InProgressTasks int `json:"inProgressTasks"`
}

// Stats returns the role-specific aggregate for the actor's dashboard.
func (s *DashboardService) Stats(ctx context.Context, actor policy.Actor) (any, error) {
	switch actor.Role {
	case entity.RoleAdmin:
		return s.adminStats(ctx)
	case entity.RoleModerator:
		return s.moderatorStats(ctx, actor.ID)
	case entity.RoleUser:
		return s.userStats(ctx, actor.ID)
	}
	return nil, fmt.Errorf("%w: unknown role %q", ErrForbidden, actor.Role)
}

func (s *DashboardService) adminStats(ctx context.Context) (AdminStats, error) {
	projects, err := s.Projects.GetAll(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	tasks, err := s.Tasks.GetAll(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return AdminStats{}, err
	}
	valid := dropOrphanTasks(tasks, projects)

	st := AdminStats{TotalProjects: len(projects), TotalTasks: len(valid)}
	for _, u := range users {
		if u.Role != entity.RoleAdmin {
			st.ActiveUsers++
		}
	}
	for _, t := range valid {
		if lifecycle.Completed(t.Status) {
			st.CompletedTasks++
		} else {
			st.PendingTasks++
		}
	}
	return st, nil
}

func (s *DashboardService) moderatorStats(ctx context.Context, managerID string) (ModeratorStats, error) {
	projects, err := s.Projects.GetByManager(ctx, managerID)
	if err != nil {
		return ModeratorStats{}, err
	}
	tasks, err := s.Tasks.GetByManager(ctx, managerID)
	if err != nil {
		return ModeratorStats{}, err
	}
	valid := dropOrphanTasks(tasks, projects)

	st := ModeratorStats{MyProjects: len(projects), MyTasks: len(valid)}
	for _, p := range projects {
		if p.IsActive {
			st.ActiveProjects++
		}
	}
	for _, t := range valid {
		if lifecycle.Completed(t.Status) {
			st.CompletedTasks++
		} else {
			st.PendingTasks++
		}
	}
	return st, nil
}

func (s *DashboardService) userStats(ctx context.Context, userID string) (UserStats, error) {
	tasks, err := s.Tasks.GetByAssignee(ctx, userID)
	if err != nil {
		return UserStats{}, err
	}
	st := UserStats{AssignedTasks: len(tasks)}
	for _, t := range tasks {
		if lifecycle.Completed(t.Status) {
			st.CompletedTasks++
		} else {
			st.PendingTasks++
		}
		if t.Status == entity.TaskInProgress {
			st.InProgressTasks++
		}
	}
	return st, nil
}

// Projects returns the project list for the dashboard view. Plain users get
// an empty list: the dashboard has no project panel for them.
func (s *DashboardService) DashboardProjects(ctx context.Context, actor policy.Actor) ([]entity.Project, error) {
	switch actor.Role {
	case entity.RoleAdmin:
		return s.Projects.GetAll(ctx)
	case entity.RoleModerator:
		return s.Projects.GetByManager(ctx, actor.ID)
	case entity.RoleUser:
		return []entity.Project{}, nil
	}
	return nil, fmt.Errorf("%w: unknown role %q", ErrForbidden, actor.Role)
}

// DashboardTasks returns the role-scoped, orphan-filtered task list.
func (s *DashboardService) DashboardTasks(ctx context.Context, actor policy.Actor) ([]entity.Task, error) {
	projects, err := s.Projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var tasks []entity.Task
	switch actor.Role {
	case entity.RoleAdmin:
		tasks, err = s.Tasks.GetAll(ctx)
	case entity.RoleModerator:
		tasks, err = s.Tasks.GetByManager(ctx, actor.ID)
	case entity.RoleUser:
		tasks, err = s.Tasks.GetByAssignee(ctx, actor.ID)
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrForbidden, actor.Role)
	}
	if err != nil {
		return nil, err
	}
	return dropOrphanTasks(tasks, projects), nil
}

// NameValue is one bucket of a chart series.
type NameValue struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// UserTaskBreakdown is one row of the per-user resolved/open series.
// Resolved counts resolved and closed tasks; everything else counts as open.
type UserTaskBreakdown struct {
	Name     string `json:"name"`
	Resolved int    `json:"resolved"`
	Open     int    `json:"open"`
}

// Analytics is the admin-only aggregate view.
type Analytics struct {
	ProjectsByStatus []NameValue         `json:"projectsByStatus"`
	TasksByStatus    []NameValue         `json:"tasksByStatus"`
	TasksByUser      []UserTaskBreakdown `json:"tasksByUser"`
}

// ComputeAnalytics builds the admin analytics. Every status bucket appears
// exactly once even when empty, and the per-user breakdown covers non-admin
// users only.
func (s *DashboardService) ComputeAnalytics(ctx context.Context, actor policy.Actor) (*Analytics, error) {
	if actor.Role != entity.RoleAdmin {
		return nil, fmt.Errorf("%w: analytics is admin only", ErrForbidden)
	}
	projects, err := s.Projects.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	tasks, err := s.Tasks.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.Users.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	valid := dropOrphanTasks(tasks, projects)

	out := &Analytics{}

	active, inactive := 0, 0
	for _, p := range projects {
		if p.IsActive {
			active++
		} else {
			inactive++
		}
	}
	out.ProjectsByStatus = []NameValue{
		{Name: "Active", Value: active},
		{Name: "Inactive", Value: inactive},
	}

	byStatus := make(map[entity.TaskStatus]int, len(entity.TaskStatuses))
	for _, t := range valid {
		byStatus[t.Status]++
	}
	for _, st := range entity.TaskStatuses {
		out.TasksByStatus = append(out.TasksByStatus, NameValue{Name: st.String(), Value: byStatus[st]})
	}

	for _, u := range users {
		if u.Role == entity.RoleAdmin {
			continue
		}
		row := UserTaskBreakdown{Name: u.Username}
		for _, t := range valid {
			if !t.AssignedTo(u.ID) {
				continue
			}
			if lifecycle.Completed(t.Status) {
				row.Resolved++
			} else {
				row.Open++
			}
		}
		out.TasksByUser = append(out.TasksByUser, row)
	}
	return out, nil
}
