package repo

import (
	"context"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// DonationRepositoryPG implements domain.DonationRepository backed by PostgreSQL.
type DonationRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewDonationRepository creates a new DonationRepositoryPG.
func NewDonationRepository(sql infra.SQLExecutor) *DonationRepositoryPG {
	return &DonationRepositoryPG{sql: sql}
}

// Create inserts a new donation record.
func (r *DonationRepositoryPG) Create(ctx context.Context, donation *domain.Donation) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertDonation,
		donation.ID, donation.DonorID, donation.ProjectID, donation.Amount, donation.DonorCountry)
	if err := row.Scan(&donation.CreatedAt); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// ListByProject returns a project's donations, newest first.
func (r *DonationRepositoryPG) ListByProject(ctx context.Context, projectID string, limit int) ([]domain.Donation, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListDonationsByProject, projectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Donation
	for rows.Next() {
		var d domain.Donation
		if err := rows.Scan(&d.ID, &d.DonorID, &d.ProjectID, &d.Amount, &d.DonorCountry, &d.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.DonationRepository = (*DonationRepositoryPG)(nil)
