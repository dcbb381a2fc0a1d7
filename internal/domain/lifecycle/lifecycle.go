// Package lifecycle implements the task state machine and the strict
// partial-update schema applied to tasks.
//
// The forward chain is open -> in_progress -> resolved -> closed. There is no
// defined backward transition: a request that sets an earlier status is a
// plain field overwrite, gated by authorization only. The core deliberately
// does not chain fields against each other: resolving without resolution
// notes and closing without isVerified are both accepted (the UI enforces
// those pairings, the core does not).
package lifecycle

import (
	"fmt"

	"github.com/taskhive/taskhive/internal/domain/entity"
)

// ErrUnknownStatus is returned when a patch carries a status outside the
// closed set.
type ErrUnknownStatus struct {
	Status string
}

func (e *ErrUnknownStatus) Error() string {
	return fmt.Sprintf("unknown task status %q", e.Status)
}

var statusRank = map[entity.TaskStatus]int{
	entity.TaskOpen:       0,
	entity.TaskInProgress: 1,
	entity.TaskResolved:   2,
	entity.TaskClosed:     3,
}

// Next returns the next status in the forward chain, and false when the
// status is terminal.
func Next(s entity.TaskStatus) (entity.TaskStatus, bool) {
	switch s {
	case entity.TaskOpen:
		return entity.TaskInProgress, true
	case entity.TaskInProgress:
		return entity.TaskResolved, true
	case entity.TaskResolved:
		return entity.TaskClosed, true
	}
	return s, false
}

// IsForward reports whether from -> to follows the workflow direction.
// Equal statuses count as forward (idempotent writes).
func IsForward(from, to entity.TaskStatus) bool {
	fr, ok := statusRank[from]
	if !ok {
		return false
	}
	tr, ok := statusRank[to]
	if !ok {
		return false
	}
	return tr >= fr
}

// Completed buckets resolved and closed together; dashboards and analytics
// count both as done work.
func Completed(s entity.TaskStatus) bool {
	return s == entity.TaskResolved || s == entity.TaskClosed
}

// Pending is the complement bucket used by dashboards.
func Pending(s entity.TaskStatus) bool {
	return s == entity.TaskOpen || s == entity.TaskInProgress
}

// Patch is the strict partial-update schema for a task. Nil fields are left
// untouched; any subset may be supplied in one call and no field requires
// another to be present.
type Patch struct {
	Title           *string
	Description     *string
	Status          *entity.TaskStatus
	AssignedToID    *string
	ResolutionNotes *string
	IsVerified      *bool
}

// Empty reports whether the patch changes nothing.
func (p Patch) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Status == nil &&
		p.AssignedToID == nil && p.ResolutionNotes == nil && p.IsVerified == nil
}

// Validate rejects statuses outside the closed set. Everything else the
// schema allows is accepted, including resolved without notes.
func (p Patch) Validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return &ErrUnknownStatus{Status: p.Status.String()}
	}
	return nil
}

// Apply writes the patch onto a copy of the task and returns it. An empty
// AssignedToID string clears the assignment.
func Apply(t entity.Task, p Patch) entity.Task {
	if p.Title != nil {
		t.Title = *p.Title
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.AssignedToID != nil {
		if *p.AssignedToID == "" {
			t.AssignedToID = nil
		} else {
			id := *p.AssignedToID
			t.AssignedToID = &id
		}
	}
	if p.ResolutionNotes != nil {
		t.ResolutionNotes = *p.ResolutionNotes
	}
	if p.IsVerified != nil {
		t.IsVerified = *p.IsVerified
	}
	return t
}
