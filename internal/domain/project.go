package domain

import "time"

// Project is a fundraising campaign owned by a single NGO profile.
// FundsRaised is only ever moved by donation processing via an atomic
// store-side increment; it is never assigned directly.
type Project struct {
	ID          string
	NGOID       string
	Title       string
	Description string
	FundingGoal int64
	FundsRaised int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
