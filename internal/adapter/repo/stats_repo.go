package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// StatsRepositoryPG implements domain.StatsRepository backed by PostgreSQL.
type StatsRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewStatsRepository creates a new StatsRepositoryPG.
func NewStatsRepository(sql infra.SQLExecutor) *StatsRepositoryPG {
	return &StatsRepositoryPG{sql: sql}
}

// ProjectStats aggregates transparency numbers for one project.
func (r *StatsRepositoryPG) ProjectStats(ctx context.Context, projectID string) (*domain.ProjectStats, error) {
	stats := &domain.ProjectStats{
		ProjectID:          projectID,
		DonationsByCountry: map[string]int64{},
	}

	row := r.sql.QueryRow(ctx, sqlinline.QProjectFundsStats, projectID)
	if err := row.Scan(&stats.FundingGoal, &stats.FundsRaised, &stats.DonationCount,
		&stats.MilestonesTotal, &stats.MilestonesCompleted); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	rows, err := r.sql.Query(ctx, sqlinline.QProjectDonationsByCountry, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var country string
		var count int64
		if err := rows.Scan(&country, &count); err != nil {
			return nil, err
		}
		stats.DonationsByCountry[country] = count
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return stats, nil
}

var _ domain.StatsRepository = (*StatsRepositoryPG)(nil)
