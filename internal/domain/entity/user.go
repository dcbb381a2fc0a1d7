package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// Password holds a bcrypt hash and never leaves the API boundary.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"-"`
	FullName  string    `json:"fullName"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}
