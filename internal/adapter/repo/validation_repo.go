package repo

import (
	"context"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// ValidationRepositoryPG implements domain.ValidationRepository backed by PostgreSQL.
type ValidationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewValidationRepository creates a new ValidationRepositoryPG.
func NewValidationRepository(sql infra.SQLExecutor) *ValidationRepositoryPG {
	return &ValidationRepositoryPG{sql: sql}
}

// Create inserts a vote. The unique constraint on (milestone_id,
// validator_id) is the source of truth for repeat voting.
func (r *ValidationRepositoryPG) Create(ctx context.Context, validation *domain.Validation) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertValidation,
		validation.ID, validation.MilestoneID, validation.ValidatorID, validation.IsValid)
	if err := row.Scan(&validation.CreatedAt); err != nil {
		if isPgError(err, pgUniqueViolation) {
			return domain.ErrDuplicateVote
		}
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// CountPositive re-reads the number of approving votes for the milestone.
func (r *ValidationRepositoryPG) CountPositive(ctx context.Context, milestoneID string) (int64, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QCountPositiveValidations, milestoneID)
	var count int64
	if err := row.Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

var _ domain.ValidationRepository = (*ValidationRepositoryPG)(nil)
