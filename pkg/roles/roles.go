package roles

import "errors"

// ErrRoleNotAllowed indicates the caller's role is below the required one.
var ErrRoleNotAllowed = errors.New("roles.not_allowed")

// Role is an ordered access level. The zero value is not a valid role and
// compares below every defined one.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleUser     Role = "user"
	RoleReadOnly Role = "read_only"
)

// roleLevels defines the total order. Anything absent maps to -1 so that an
// unknown or garbage role never satisfies a requirement.
var roleLevels = map[Role]int{
	RoleAdmin:    3,
	RoleUser:     2,
	RoleReadOnly: 1,
}

// Level returns the numeric rank of the role, or -1 for unknown roles.
func (r Role) Level() int {
	if level, ok := roleLevels[r]; ok {
		return level
	}
	return -1
}

// Valid reports whether r is one of the defined roles.
func (r Role) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

// AtLeast reports whether r ranks at or above min.
func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level() && r.Valid()
}

// Require returns ErrRoleNotAllowed unless current ranks at or above min.
func Require(current, min Role) error {
	if !current.AtLeast(min) {
		return ErrRoleNotAllowed
	}
	return nil
}
