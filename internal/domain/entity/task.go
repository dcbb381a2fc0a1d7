package entity

import "time"

// TaskStatus is the closed set of task states.
type TaskStatus string

const (
	TaskOpen       TaskStatus = "open"
	TaskInProgress TaskStatus = "in_progress"
	TaskResolved   TaskStatus = "resolved"
	TaskClosed     TaskStatus = "closed"
)

// TaskStatuses lists every status in workflow order. Aggregations iterate
// this slice so that empty buckets still appear in the output.
var TaskStatuses = []TaskStatus{TaskOpen, TaskInProgress, TaskResolved, TaskClosed}

func (s TaskStatus) Valid() bool {
	switch s {
	case TaskOpen, TaskInProgress, TaskResolved, TaskClosed:
		return true
	}
	return false
}

func (s TaskStatus) String() string { return string(s) }

// Task always belongs to a project. ResolutionNotes is filled when the
// assignee resolves the task; IsVerified is set by whoever closes it.
type Task struct {
	ID              string     `json:"id"`
	ProjectID       string     `json:"projectId"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Status          TaskStatus `json:"status"`
	AssignedToID    *string    `json:"assignedToId,omitempty"`
	ResolutionNotes string     `json:"resolutionNotes,omitempty"`
	IsVerified      bool       `json:"isVerified"`
	CreatedAt       time.Time  `json:"createdAt"`
}

// AssignedTo reports whether userID is the task's assignee.
func (t *Task) AssignedTo(userID string) bool {
	return t.AssignedToID != nil && *t.AssignedToID == userID
}
