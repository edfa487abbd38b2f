package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

type proofRequest struct {
	URL    string  `json:"url"`
	Geotag *string `json:"geotag"`
}

type proofDTO struct {
	ID          string    `json:"id"`
	MilestoneID string    `json:"milestone_id"`
	URL         string    `json:"url"`
	Geotag      *string   `json:"geotag,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProofDTO(p *domain.Proof) proofDTO {
	return proofDTO{
		ID:          p.ID,
		MilestoneID: p.MilestoneID,
		URL:         p.URL,
		Geotag:      p.Geotag,
		CreatedAt:   p.CreatedAt,
	}
}

// ProofsCreate lets the owning NGO attach evidence to a milestone. The proof
// is an opaque reference; nothing here inspects it.
func (a *App) ProofsCreate(w http.ResponseWriter, r *http.Request) {
	milestoneID := chi.URLParam(r, "id")

	var req proofRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.URL == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "url required")
		return
	}

	profile, err := a.requireProfile(w, r)
	if err != nil {
		return
	}
	milestone, err := a.Milestones.GetByID(r.Context(), milestoneID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	project, err := a.Projects.GetByID(r.Context(), milestone.ProjectID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	if !profile.IsNGO() || project.NGOID != profile.ID {
		a.error(w, http.StatusForbidden, "forbidden", "only the owning ngo can attach proofs")
		return
	}

	proof := &domain.Proof{
		ID:          uuid.NewString(),
		MilestoneID: milestoneID,
		URL:         req.URL,
		Geotag:      req.Geotag,
	}
	if err := a.Proofs.Create(r.Context(), proof); err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"success": true,
		"proof":   toProofDTO(proof),
	})
}

// ProofsList returns a milestone's proofs.
func (a *App) ProofsList(w http.ResponseWriter, r *http.Request) {
	milestoneID := chi.URLParam(r, "id")
	proofs, err := a.Proofs.ListByMilestone(r.Context(), milestoneID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	items := make([]proofDTO, 0, len(proofs))
	for i := range proofs {
		items = append(items, toProofDTO(&proofs[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}
