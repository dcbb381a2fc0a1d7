package entity

import "time"

// Project is owned by at most one moderator (the manager). Admin-created
// projects may have no manager until one is assigned at creation time.
type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	ManagerID   *string   `json:"managerId,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ManagedBy reports whether userID is the project's manager.
func (p *Project) ManagedBy(userID string) bool {
	return p.ManagerID != nil && *p.ManagerID == userID
}
