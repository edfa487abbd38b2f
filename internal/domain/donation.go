package domain

import "time"

// Donation records a donor giving an amount to a project. Amounts are
// integer minor units and must be positive. Donations are immutable.
type Donation struct {
	ID           string
	DonorID      string
	ProjectID    string
	Amount       int64
	DonorCountry string
	CreatedAt    time.Time
}
