// Package policy holds the pure authorization rules. Every mutating or
// listing request is gated here before it touches storage; the functions are
// deterministic and depend only on their arguments.
package policy

import (
	"github.com/taskhive/taskhive/internal/domain/entity"
)

// Actor is the acting identity resolved from the session.
type Actor struct {
	ID   string
	Role entity.Role
}

// Action enumerates every operation the policy can decide on.
type Action string

const (
	ActionProjectCreate Action = "project.create"
	ActionProjectRead   Action = "project.read"
	ActionProjectUpdate Action = "project.update"
	ActionProjectDelete Action = "project.delete"
	ActionTaskCreate    Action = "task.create"
	ActionTaskUpdate    Action = "task.update"
	ActionTaskDelete    Action = "task.delete"
	ActionUserListAll   Action = "user.list_all"
	ActionUserListRole  Action = "user.list_role"
)

// Resource carries the entities an action targets. Project is the task's
// parent project for task actions; both fields may be nil for actions that
// need no ownership context.
type Resource struct {
	Project *entity.Project
	Task    *entity.Task
}

// CanPerform is the single decision function consulted before every mutation
// and before list results are scoped. Unknown actions are denied.
func CanPerform(a Actor, action Action, res Resource) bool {
	switch action {
	case ActionProjectCreate:
		return CanCreateProject(a)
	case ActionProjectRead:
		// Any authenticated actor may read a single project.
		return a.Role.Valid()
	case ActionProjectUpdate, ActionProjectDelete:
		return CanManageProject(a, res.Project)
	case ActionTaskCreate:
		return CanCreateTask(a)
	case ActionTaskUpdate, ActionTaskDelete:
		return CanModifyTask(a, res.Task, res.Project)
	case ActionUserListAll:
		return CanListAllUsers(a)
	case ActionUserListRole:
		return CanListAssignableUsers(a)
	}
	return false
}

// CanCreateProject: admin or moderator.
func CanCreateProject(a Actor) bool {
	switch a.Role {
	case entity.RoleAdmin, entity.RoleModerator:
		return true
	case entity.RoleUser:
		return false
	}
	return false
}

// CanManageProject: only the moderator who manages the project may update or
// delete it. Admin is deliberately excluded even though it may create
// projects; that asymmetry is part of the product's rules.
func CanManageProject(a Actor, p *entity.Project) bool {
	if p == nil {
		return false
	}
	switch a.Role {
	case entity.RoleModerator:
		return p.ManagedBy(a.ID)
	case entity.RoleAdmin, entity.RoleUser:
		return false
	}
	return false
}

// CanCreateTask: admin or moderator, never a plain user.
func CanCreateTask(a Actor) bool {
	switch a.Role {
	case entity.RoleAdmin, entity.RoleModerator:
		return true
	case entity.RoleUser:
		return false
	}
	return false
}

// CanModifyTask governs every task update and delete: the assignee, or the
// moderator managing the task's parent project. The same coarse rule covers
// all status transitions including resolved->closed; admins get no blanket
// task-update rights beyond being assignee or manager themselves.
func CanModifyTask(a Actor, t *entity.Task, parent *entity.Project) bool {
	if t == nil {
		return false
	}
	if t.AssignedTo(a.ID) {
		return true
	}
	switch a.Role {
	case entity.RoleModerator:
		return parent != nil && parent.ManagedBy(a.ID)
	case entity.RoleAdmin, entity.RoleUser:
		return false
	}
	return false
}

// CanListAllUsers: admin only.
func CanListAllUsers(a Actor) bool {
	switch a.Role {
	case entity.RoleAdmin:
		return true
	case entity.RoleModerator, entity.RoleUser:
		return false
	}
	return false
}

// CanListAssignableUsers: admin or moderator (assignee pickers).
func CanListAssignableUsers(a Actor) bool {
	switch a.Role {
	case entity.RoleAdmin, entity.RoleModerator:
		return true
	case entity.RoleUser:
		return false
	}
	return false
}

// ListScope says which slice of a collection a role may see.
type ListScope int

const (
	ScopeAll ListScope = iota
	ScopeManaged
	ScopeAssigned
	ScopeNone
)

// ProjectListScope: admin sees all, moderator only managed projects, plain
// users see all projects (name resolution only, not management).
func ProjectListScope(a Actor) ListScope {
	switch a.Role {
	case entity.RoleAdmin:
		return ScopeAll
	case entity.RoleModerator:
		return ScopeManaged
	case entity.RoleUser:
		return ScopeAll
	}
	return ScopeNone
}

// TaskListScope: admin sees all, moderator tasks of managed projects, plain
// users only tasks assigned to them.
func TaskListScope(a Actor) ListScope {
	switch a.Role {
	case entity.RoleAdmin:
		return ScopeAll
	case entity.RoleModerator:
		return ScopeManaged
	case entity.RoleUser:
		return ScopeAssigned
	}
	return ScopeNone
}
