package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// ProjectStats returns the project's public transparency numbers.
func (a *App) ProjectStats(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	stats, err := a.Stats.ProjectStats(r.Context(), projectID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"project_id":           stats.ProjectID,
		"funding_goal":         stats.FundingGoal,
		"funds_raised":         stats.FundsRaised,
		"donation_count":       stats.DonationCount,
		"donations_by_country": stats.DonationsByCountry,
		"milestones_total":     stats.MilestonesTotal,
		"milestones_completed": stats.MilestonesCompleted,
	})
}
