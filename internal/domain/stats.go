package domain

// ProjectStats aggregates a project's public transparency numbers.
type ProjectStats struct {
	ProjectID           string
	FundingGoal         int64
	FundsRaised         int64
	DonationCount       int64
	DonationsByCountry  map[string]int64
	MilestonesTotal     int64
	MilestonesCompleted int64
}
