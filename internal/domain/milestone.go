package domain

import "time"

// MilestoneStatus enumerates milestone states. The only transition is
// pending -> completed; completed is terminal.
type MilestoneStatus string

const (
	MilestonePending   MilestoneStatus = "pending"
	MilestoneCompleted MilestoneStatus = "completed"
)

// ApprovalThreshold is the number of positive validator votes required to
// complete a milestone.
const ApprovalThreshold = 3

// Milestone is a funded checkpoint within a project. It is created by the
// owning NGO and completed by validator quorum.
type Milestone struct {
	ID           string
	ProjectID    string
	Title        string
	AmountNeeded int64
	Status       MilestoneStatus
	CompletedAt  *time.Time
	CreatedAt    time.Time
}

// IsCompleted reports whether the milestone reached its terminal state.
func (m Milestone) IsCompleted() bool {
	return m.Status == MilestoneCompleted
}
