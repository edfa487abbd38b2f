package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/middleware"
)

type donationRequest struct {
	ProjectID string `json:"projectId"`
	Amount    int64  `json:"amount"`
}

type donationDTO struct {
	ID           string    `json:"id"`
	DonorID      string    `json:"donor_id"`
	ProjectID    string    `json:"project_id"`
	Amount       int64     `json:"amount"`
	DonorCountry string    `json:"donor_country,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func toDonationDTO(d *domain.Donation) donationDTO {
	return donationDTO{
		ID:           d.ID,
		DonorID:      d.DonorID,
		ProjectID:    d.ProjectID,
		Amount:       d.Amount,
		DonorCountry: d.DonorCountry,
		CreatedAt:    d.CreatedAt,
	}
}

// DonationsCreate is the make-donation endpoint.
func (a *App) DonationsCreate(w http.ResponseWriter, r *http.Request) {
	var req donationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.ProjectID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "projectId required")
		return
	}

	caller := a.currentUserID(r)
	country := middleware.CountryFromContext(r.Context())
	donation, err := a.Donations.Record(r.Context(), caller, req.ProjectID, req.Amount, country)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"success":  true,
		"donation": toDonationDTO(donation),
	})
}
