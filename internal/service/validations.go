package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

// VoteResult reports the outcome of a cast vote.
type VoteResult struct {
	Validation    *domain.Validation
	PositiveVotes int64
	Completed     bool
}

// MilestoneValidationService records validator votes and completes a
// milestone once enough approving votes exist.
type MilestoneValidationService struct {
	profiles    domain.ProfileRepository
	milestones  domain.MilestoneRepository
	validations domain.ValidationRepository
	ledger      domain.LedgerRepository
	logger      zerolog.Logger
}

// NewMilestoneValidationService wires the service's dependencies.
func NewMilestoneValidationService(
	profiles domain.ProfileRepository,
	milestones domain.MilestoneRepository,
	validations domain.ValidationRepository,
	ledger domain.LedgerRepository,
	logger zerolog.Logger,
) *MilestoneValidationService {
	return &MilestoneValidationService{
		profiles:    profiles,
		milestones:  milestones,
		validations: validations,
		ledger:      ledger,
		logger:      logger,
	}
}

// CastVote records one validator's vote on a milestone. The vote insert is
// the primary write; everything after it degrades softly. The positive-vote
// tally is re-read after the insert rather than cached, so concurrent votes
// are counted correctly, and the completion transition is a conditional
// update that fires at most once per milestone.
func (s *MilestoneValidationService) CastVote(ctx context.Context, callerID, milestoneID string, isValid bool) (*VoteResult, error) {
	if callerID == "" {
		return nil, domain.ErrUnauthenticated
	}
	profile, err := s.profiles.GetByID(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("resolve validator profile: %w", err)
	}
	if !profile.IsValidator() {
		return nil, domain.ErrForbidden
	}

	validation := &domain.Validation{
		ID:          uuid.NewString(),
		MilestoneID: milestoneID,
		ValidatorID: profile.ID,
		IsValid:     isValid,
	}
	if err := s.validations.Create(ctx, validation); err != nil {
		return nil, fmt.Errorf("insert validation: %w", err)
	}

	result := &VoteResult{Validation: validation}

	count, err := s.validations.CountPositive(ctx, milestoneID)
	if err != nil {
		// The vote is already recorded; report it without a tally.
		s.logger.Error().Err(err).
			Str("milestone_id", milestoneID).
			Msg("positive vote count failed after insert")
		return result, nil
	}
	result.PositiveVotes = count

	if count < domain.ApprovalThreshold {
		return result, nil
	}

	completed, err := s.milestones.Complete(ctx, milestoneID)
	if err != nil {
		s.logger.Error().Err(err).
			Str("milestone_id", milestoneID).
			Msg("milestone completion update failed")
		return result, nil
	}
	if !completed {
		// Already completed, either earlier or by a concurrent vote that
		// crossed the threshold first. Nothing to release.
		return result, nil
	}
	result.Completed = true

	milestone, err := s.milestones.GetByID(ctx, milestoneID)
	projectID := ""
	if err != nil {
		s.logger.Error().Err(err).
			Str("milestone_id", milestoneID).
			Msg("milestone lookup failed for release event")
	} else {
		projectID = milestone.ProjectID
	}

	event := domain.ReleaseEvent{
		MilestoneID:   milestoneID,
		ProjectID:     projectID,
		ValidationID:  validation.ID,
		PositiveVotes: count,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.ledger.Append(ctx, domain.LedgerEventRelease, event); err != nil {
		s.logger.Error().Err(err).
			Str("milestone_id", milestoneID).
			Msg("ledger append failed for release")
	}

	return result, nil
}
