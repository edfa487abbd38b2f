package repo

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/sqlinline"
)

// LedgerRepositoryPG implements domain.LedgerRepository backed by PostgreSQL.
// The table is insert-only; no update or delete statement exists for it.
type LedgerRepositoryPG struct {
	sql infra.SQLExecutor
}

// NewLedgerRepository creates a new LedgerRepositoryPG.
func NewLedgerRepository(sql infra.SQLExecutor) *LedgerRepositoryPG {
	return &LedgerRepositoryPG{sql: sql}
}

// Append writes one typed event. Callers treat failures as non-fatal; the
// repository itself just reports them.
func (r *LedgerRepositoryPG) Append(ctx context.Context, eventType domain.LedgerEventType, details any) error {
	payload, err := json.Marshal(details)
	if err != nil {
		return fmt.Errorf("marshal ledger details: %w", err)
	}
	_, err = r.sql.Exec(ctx, sqlinline.QAppendLedgerEntry, string(eventType), payload)
	return err
}

// ListByProject returns entries whose details reference the project directly
// or through one of its milestones, newest first.
func (r *LedgerRepositoryPG) ListByProject(ctx context.Context, projectID string, limit int) ([]domain.LedgerEntry, error) {
	rows, err := r.sql.Query(ctx, sqlinline.QListLedgerByProject, projectID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.LedgerEntry
	for rows.Next() {
		var e domain.LedgerEntry
		if err := rows.Scan(&e.ID, &e.EventType, &e.Details, &e.CreatedAt); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var _ domain.LedgerRepository = (*LedgerRepositoryPG)(nil)
