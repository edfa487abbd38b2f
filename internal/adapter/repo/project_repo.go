package repo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// ProjectRepositoryPG implements domain.ProjectRepository backed by PostgreSQL.
type ProjectRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewProjectRepository creates a new ProjectRepositoryPG.
func NewProjectRepository(sql infra.SQLExecutor) *ProjectRepositoryPG {
	return &ProjectRepositoryPG{sql: sql}
}

// Create inserts a new project owned by an NGO profile.
func (r *ProjectRepositoryPG) Create(ctx context.Context, project *domain.Project) error {
	row := r.sql.QueryRow(ctx, sqlinline.QInsertProject,
		project.ID, project.NGOID, project.Title, project.Description, project.FundingGoal)
	if err := row.Scan(&project.FundsRaised, &project.CreatedAt, &project.UpdatedAt); err != nil {
		if isPgError(err, pgForeignKeyViolation) {
			return domain.ErrNotFound
		}
		return err
	}
	return nil
}

// GetByID fetches a project by UUID.
func (r *ProjectRepositoryPG) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.sql.QueryRow(ctx, sqlinline.QGetProject, id)
	return scanProject(row)
}

// List returns the most recent projects limited by the input value.
func (r *ProjectRepositoryPG) List(ctx context.Context, limit int) ([]domain.Project, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListProjects, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.Project
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(&p.ID, &p.NGOID, &p.Title, &p.Description,
			&p.FundingGoal, &p.FundsRaised, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// AddFunds bumps funds_raised by amount in a single store-side update, so
// concurrent donations to the same project cannot lose increments.
func (r *ProjectRepositoryPG) AddFunds(ctx context.Context, projectID string, amount int64) error {
	tag, err := r.sql.Exec(ctx, sqlinline.QAddProjectFunds, projectID, amount)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanProject(row pgx.Row) (*domain.Project, error) {
	var p domain.Project
	if err := row.Scan(&p.ID, &p.NGOID, &p.Title, &p.Description,
		&p.FundingGoal, &p.FundsRaised, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &p, nil
}

var _ domain.ProjectRepository = (*ProjectRepositoryPG)(nil)
