package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// MilestoneRepositoryPG implements domain.MilestoneRepository backed by PostgreSQL.
type MilestoneRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewMilestoneRepository creates a new MilestoneRepositoryPG.
func NewMilestoneRepository(sql infra.SQLExecutor) *MilestoneRepositoryPG {
	return &MilestoneRepositoryPG{sql: sql}
}

// Create inserts a new milestone in pending state.
func (r *MilestoneRepositoryPG) Create(ctx context.Context, milestone *domain.Milestone) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertMilestone,
		milestone.ID, milestone.ProjectID, milestone.Title, milestone.AmountNeeded)
	if err := row.Scan(&milestone.Status, &milestone.CreatedAt); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// GetByID fetches a milestone by UUID.
func (r *MilestoneRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Milestone, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QGetMilestone, id)
	var m domain.Milestone
	if err := row.Scan(&m.ID, &m.ProjectID, &m.Title, &m.AmountNeeded,
		&m.Status, &m.CompletedAt, &m.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &m, nil
}

// ListByProject returns a project's milestones, oldest first.
func (r *MilestoneRepositoryPG) ListByProject(ctx context.Context, projectID string) ([]domain.Milestone, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListMilestonesByProject, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Milestone
	for rows.Next() {
		var m domain.Milestone
		if err := rows.Scan(&m.ID, &m.ProjectID, &m.Title, &m.AmountNeeded,
			&m.Status, &m.CompletedAt, &m.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Complete marks the milestone completed unless it already is. The WHERE
// clause on the current status makes the transition fire at most once even
// when two threshold-crossing votes race; the affected-row count tells the
// caller whether this call won.
func (r *MilestoneRepositoryPG) Complete(ctx context.Context, milestoneID string) (bool, error) {
	tag, err := r.sql.Exec(ctx, sqlinline.QCompleteMilestone, milestoneID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

var _ domain.MilestoneRepository = (*MilestoneRepositoryPG)(nil)
