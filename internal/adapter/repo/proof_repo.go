package repo

import (
	"context"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// ProofRepositoryPG implements domain.ProofRepository backed by PostgreSQL.
type ProofRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProofRepository creates a new ProofRepositoryPG.
func NewProofRepository(sql infra.SQLExecutor) *ProofRepositoryPG {
	return &ProofRepositoryPG{sql: sql}
}

// Create attaches a proof to a milestone.
func (r *ProofRepositoryPG) Create(ctx context.Context, proof *domain.Proof) error {
	geotag := ""
	if proof.Geotag != nil {
		geotag = *proof.Geotag
	}
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProof, proof.ID, proof.MilestoneID, proof.URL, geotag)
	if err := row.Scan(&proof.CreatedAt); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// ListByMilestone returns a milestone's proofs, oldest first.
func (r *ProofRepositoryPG) ListByMilestone(ctx context.Context, milestoneID string) ([]domain.Proof, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProofsByMilestone, milestoneID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Proof
	for rows.Next() {
		var p domain.Proof
		if err := rows.Scan(&p.ID, &p.MilestoneID, &p.URL, &p.Geotag, &p.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.ProofRepository = (*ProofRepositoryPG)(nil)
