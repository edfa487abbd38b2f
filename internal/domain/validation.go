package domain

import "time"

// Validation is a single validator's vote on a milestone. At most one vote
// exists per (milestone, validator) pair, enforced by a unique constraint;
// votes are immutable once cast.
type Validation struct {
	ID          string
	MilestoneID string
	ValidatorID string
	IsValid     bool
	CreatedAt   time.Time
}
