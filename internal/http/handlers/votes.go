package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

type voteRequest struct {
	MilestoneID string `json:"milestoneId"`
	IsValid     *bool  `json:"isValid"`
}

type validationDTO struct {
	ID          string    `json:"id"`
	MilestoneID string    `json:"milestone_id"`
	ValidatorID string    `json:"validator_id"`
	IsValid     bool      `json:"is_valid"`
	CreatedAt   time.Time `json:"created_at"`
}

func toValidationDTO(v *domain.Validation) validationDTO {
	return validationDTO{
		ID:          v.ID,
		MilestoneID: v.MilestoneID,
		ValidatorID: v.ValidatorID,
		IsValid:     v.IsValid,
		CreatedAt:   v.CreatedAt,
	}
}

// VotesCast is the cast-vote endpoint.
func (a *App) VotesCast(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.MilestoneID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "milestoneId required")
		return
	}
	if req.IsValid == nil {
		a.error(w, http.StatusBadRequest, "bad_request", "isValid required")
		return
	}

	caller := a.currentUserID(r)
	result, err := a.Votes.CastVote(r.Context(), caller, req.MilestoneID, *req.IsValid)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"success":             true,
		"validation":          toValidationDTO(result.Validation),
		"positive_votes":      result.PositiveVotes,
		"milestone_completed": result.Completed,
	})
}
