package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

type milestoneRequest struct {
	Title        string `json:"title"`
	AmountNeeded int64  `json:"amountNeeded"`
}

type milestoneDTO struct {
	ID           string     `json:"id"`
	ProjectID    string     `json:"project_id"`
	Title        string     `json:"title"`
	AmountNeeded int64      `json:"amount_needed"`
	Status       string     `json:"status"`
	CompletedAt  *time.Time `json:"completed_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func toMilestoneDTO(m *domain.Milestone) milestoneDTO {
	return milestoneDTO{
		ID:           m.ID,
		ProjectID:    m.ProjectID,
		Title:        m.Title,
		AmountNeeded: m.AmountNeeded,
		Status:       string(m.Status),
		CompletedAt:  m.CompletedAt,
		CreatedAt:    m.CreatedAt,
	}
}

// MilestonesCreate lets the owning NGO add a milestone to its project.
func (a *App) MilestonesCreate(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")

	var req milestoneRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title required")
		return
	}
	if req.AmountNeeded <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "amountNeeded must be positive")
		return
	}

	profile, err := a.requireProfile(w, r)
	if err != nil {
		return
	}
	project, err := a.Projects.GetByID(r.Context(), projectID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	if !profile.IsNGO() || project.NGOID != profile.ID {
		a.error(w, http.StatusForbidden, "forbidden", "only the owning ngo can add milestones")
		return
	}

	milestone := &domain.Milestone{
		ID:           uuid.NewString(),
		ProjectID:    projectID,
		Title:        req.Title,
		AmountNeeded: req.AmountNeeded,
	}
	if err := a.Milestones.Create(r.Context(), milestone); err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"success":   true,
		"milestone": toMilestoneDTO(milestone),
	})
}

// MilestonesGet returns one milestone with its current approving-vote count.
func (a *App) MilestonesGet(w http.ResponseWriter, r *http.Request) {
	milestoneID := chi.URLParam(r, "id")
	milestone, err := a.Milestones.GetByID(r.Context(), milestoneID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	positive, err := a.Validations.CountPositive(r.Context(), milestoneID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusOK, map[string]any{
		"milestone":      toMilestoneDTO(milestone),
		"positive_votes": positive,
	})
}
