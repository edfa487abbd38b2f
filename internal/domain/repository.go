package domain

import "context"

// ProfileRepository resolves caller identities to profiles.
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*Profile, error)
}

// ProjectRepository handles project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, limit int) ([]Project, error)
	// AddFunds increments funds_raised by amount as a single store-side
	// arithmetic update. Returns ErrNotFound when the project does not exist.
	AddFunds(ctx context.Context, projectID string, amount int64) error
}

// MilestoneRepository handles milestone persistence.
type MilestoneRepository interface {
	Create(ctx context.Context, milestone *Milestone) error
	GetByID(ctx context.Context, id string) (*Milestone, error)
	ListByProject(ctx context.Context, projectID string) ([]Milestone, error)
	// Complete transitions the milestone to completed unless it already is.
	// The update is conditional on the current status, so exactly one caller
	// observes the transition; it reports whether this call caused it.
	Complete(ctx context.Context, milestoneID string) (bool, error)
}

// ProofRepository handles proof persistence.
type ProofRepository interface {
	Create(ctx context.Context, proof *Proof) error
	ListByMilestone(ctx context.Context, milestoneID string) ([]Proof, error)
}

// ValidationRepository handles vote persistence.
type ValidationRepository interface {
	// Create inserts a vote. Returns ErrDuplicateVote when the
	// (milestone, validator) pair already voted and ErrNotFound when the
	// milestone does not exist.
	Create(ctx context.Context, validation *Validation) error
	CountPositive(ctx context.Context, milestoneID string) (int64, error)
}

// DonationRepository handles donation persistence.
type DonationRepository interface {
	// Create inserts a donation. Returns ErrNotFound when the referenced
	// project does not exist.
	Create(ctx context.Context, donation *Donation) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]Donation, error)
}

// LedgerRepository is the append-only audit log. Append never mutates
// existing entries; reads are project-scoped filters over event details.
type LedgerRepository interface {
	Append(ctx context.Context, eventType LedgerEventType, details any) error
	ListByProject(ctx context.Context, projectID string, limit int) ([]LedgerEntry, error)
}

// StatsRepository serves read-side aggregates for the public dashboard.
type StatsRepository interface {
	ProjectStats(ctx context.Context, projectID string) (*ProjectStats, error)
}
