package domain

import "time"

// Role enumerates the three kinds of participants.
type Role string

const (
	RoleNGO       Role = "ngo"
	RoleDonor     Role = "donor"
	RoleValidator Role = "validator"
)

// Profile represents an authenticated participant. One profile exists per
// account; creation happens at signup, outside this service.
type Profile struct {
	ID          string
	Role        Role
	DisplayName string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsValidator reports whether the profile may vote on milestones.
func (p Profile) IsValidator() bool {
	return p.Role == RoleValidator
}

// IsNGO reports whether the profile may own projects.
func (p Profile) IsNGO() bool {
	return p.Role == RoleNGO
}
