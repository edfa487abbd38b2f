package domain

import "time"

// Proof is an opaque evidence reference attached to a milestone. The service
// stores and lists proofs; it never inspects or validates their content.
type Proof struct {
	ID          string
	MilestoneID string
	URL         string
	Geotag      *string
	CreatedAt   time.Time
}
