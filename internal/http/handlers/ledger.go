package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

type ledgerEntryDTO struct {
	ID        string          `json:"id"`
	EventType string          `json:"event_type"`
	Details   json.RawMessage `json:"details"`
	CreatedAt time.Time       `json:"created_at"`
}

// ProjectLedger returns the project's transaction history: its donation
// events plus release events of its milestones, newest first.
func (a *App) ProjectLedger(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	entries, err := a.Ledger.ListByProject(r.Context(), projectID, a.listLimit())
	if err != nil {
		a.serviceError(w, err)
		return
	}
	items := make([]ledgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		items = append(items, ledgerEntryDTO{
			ID:        e.ID,
			EventType: string(e.EventType),
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
