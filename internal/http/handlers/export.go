package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Arsenepro177/fundflow-transparency/pkg/zip"
)

// ProjectExport serves a downloadable audit bundle for one project: the
// project record, its full ledger slice, and the aggregate stats, each as a
// JSON document inside a zip archive. Auditors can fetch this once instead
// of paging three endpoints.
func (a *App) ProjectExport(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	project, err := a.Projects.GetByID(r.Context(), projectID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	entries, err := a.Ledger.ListByProject(r.Context(), projectID, a.listLimit())
	if err != nil {
		a.serviceError(w, err)
		return
	}
	stats, err := a.Stats.ProjectStats(r.Context(), projectID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	ledgerItems := make([]ledgerEntryDTO, 0, len(entries))
	for _, e := range entries {
		ledgerItems = append(ledgerItems, ledgerEntryDTO{
			ID:        e.ID,
			EventType: string(e.EventType),
			Details:   e.Details,
			CreatedAt: e.CreatedAt,
		})
	}

	files := make([]zip.File, 0, 3)
	for _, doc := range []struct {
		name string
		body any
	}{
		{"project.json", toProjectDTO(project)},
		{"ledger.json", ledgerItems},
		{"stats.json", map[string]any{
			"project_id":           stats.ProjectID,
			"funding_goal":         stats.FundingGoal,
			"funds_raised":         stats.FundsRaised,
			"donation_count":       stats.DonationCount,
			"donations_by_country": stats.DonationsByCountry,
			"milestones_total":     stats.MilestonesTotal,
			"milestones_completed": stats.MilestonesCompleted,
		}},
	} {
		data, err := json.MarshalIndent(doc.body, "", "  ")
		if err != nil {
			a.serviceError(w, err)
			return
		}
		files = append(files, zip.File{Name: doc.name, Data: data})
	}

	archive, err := zip.Bundle(files)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf(`attachment; filename="project-%s-audit.zip"`, projectID))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(archive)
}
