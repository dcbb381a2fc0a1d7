package entity

// Role is the closed set of roles a user can hold. The role is fixed at
// registration; there is no role-change operation.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleModerator Role = "moderator"
	RoleUser      Role = "user"
)

// Roles lists every role, in privilege order.
var Roles = []Role{RoleAdmin, RoleModerator, RoleUser}

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleUser:
		return true
	}
	return false
}

func (r Role) String() string { return string(r) }
