package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

// DonationRecorder persists donations, bumps the project's raised-funds
// counter, and appends the audit trail entry.
type DonationRecorder struct {
	profiles  domain.ProfileRepository
	projects  domain.ProjectRepository
	donations domain.DonationRepository
	ledger    domain.LedgerRepository
	logger    zerolog.Logger
}

// NewDonationRecorder wires the recorder's dependencies.
func NewDonationRecorder(
	profiles domain.ProfileRepository,
	projects domain.ProjectRepository,
	donations domain.DonationRepository,
	ledger domain.LedgerRepository,
	logger zerolog.Logger,
) *DonationRecorder {
	return &DonationRecorder{
		profiles:  profiles,
		projects:  projects,
		donations: donations,
		ledger:    ledger,
		logger:    logger,
	}
}

// Record inserts a donation for the caller, adds the amount to the project's
// funds_raised counter, and appends a "donation" ledger entry. The counter
// update is a store-side increment, never a read-modify-write. A failed
// ledger append is logged and does not fail the donation.
func (s *DonationRecorder) Record(ctx context.Context, callerID, projectID string, amount int64, donorCountry string) (*domain.Donation, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	profile, err := s.profiles.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("resolve donor profile: %w", err)
	}

	donation := &domain.Donation{
		ID:           uuid.NewString(),
		DonorID:      profile.ID,
		ProjectID:    projectID,
		Amount:       amount,
		DonorCountry: donorCountry,
	}
	if err := s.donations.Create(ctx, donation); err != nil {
		return nil, fmt.Errorf("insert donation: %w", err)
	}

	if err := s.projects.AddFunds(ctx, projectID, amount); err != nil {
		// The donation row is already in; surface the failure without
		// pretending to roll it back.
		return nil, fmt.Errorf("add funds to project %s: %w", projectID, err)
	}

	event := domain.DonationEvent{
		DonationID:   donation.ID,
		DonorID:      donation.DonorID,
		ProjectID:    donation.ProjectID,
		Amount:       donation.Amount,
		DonorCountry: donation.DonorCountry,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.ledger.Append(ctx, domain.LedgerEventDonation, event); err != nil {
		s.logger.Error().Err(err).
			Str("donation_id", donation.ID).
			Str("project_id", projectID).
			Msg("ledger append failed for donation")
	}

	return donation, nil
}
