package domain

import (
	"encoding/json"
	"time"
)

// LedgerEventType tags ledger entries.
type LedgerEventType string

const (
	LedgerEventDonation LedgerEventType = "donation"
	LedgerEventRelease  LedgerEventType = "release"
)

// LedgerEntry is one row of the append-only audit log. Entries are never
// updated or deleted; Details carries the event parameters as JSON.
type LedgerEntry struct {
	ID        string
	EventType LedgerEventType
	Details   json.RawMessage
	CreatedAt time.Time
}

// DonationEvent is the details payload for a "donation" ledger entry.
type DonationEvent struct {
	DonationID   string    `json:"donation_id"`
	DonorID      string    `json:"donor_id"`
	ProjectID    string    `json:"project_id"`
	Amount       int64     `json:"amount"`
	DonorCountry string    `json:"donor_country,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ReleaseEvent is the details payload for a "release" ledger entry.
type ReleaseEvent struct {
	MilestoneID   string    `json:"milestone_id"`
	ProjectID     string    `json:"project_id"`
	ValidationID  string    `json:"validation_id"`
	PositiveVotes int64     `json:"positive_votes"`
	CreatedAt     time.Time `json:"created_at"`
}
