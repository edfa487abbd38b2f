package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/middleware"
	"github.com/Arsenepro177/fundflow-transparency/internal/service"
)

// DonationService is the slice of DonationRecorder the handlers need.
type DonationService interface {
	Record(ctx context.Context, callerID, projectID string, amount int64, donorCountry string) (*domain.Donation, error)
}

// VoteService is the slice of MilestoneValidationService the handlers need.
type VoteService interface {
	CastVote(ctx context.Context, callerID, milestoneID string, isValid bool) (*service.VoteResult, error)
}

// App bundles the handlers' dependencies.
type App struct {
	Donations   DonationService
	Votes       VoteService
	Profiles    domain.ProfileRepository
	Projects    domain.ProjectRepository
	Milestones  domain.MilestoneRepository
	Proofs      domain.ProofRepository
	Validations domain.ValidationRepository
	Ledger      domain.LedgerRepository
	Stats       domain.StatsRepository
	Logger      zerolog.Logger
	ListLimit   int
}

func (a *App) json(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func (a *App) error(w http.ResponseWriter, status int, code, message string) {
	a.json(w, status, map[string]string{"code": code, "error": message})
}

// serviceError maps domain sentinels onto HTTP statuses. Anything unmapped
// is a 500 with a generic body.
func (a *App) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidAmount):
		a.error(w, http.StatusBadRequest, "invalid_amount", "amount must be positive")
	case errors.Is(err, domain.ErrUnauthenticated):
		a.error(w, http.StatusUnauthorized, "unauthenticated", "caller identity required")
	case errors.Is(err, domain.ErrForbidden):
		a.error(w, http.StatusForbidden, "forbidden", "caller role does not permit this operation")
	case errors.Is(err, domain.ErrNotFound):
		a.error(w, http.StatusNotFound, "not_found", "referenced entity does not exist")
	case errors.Is(err, domain.ErrDuplicateVote):
		a.error(w, http.StatusConflict, "duplicate_vote", "validator already voted on this milestone")
	default:
		a.Logger.Error().Err(err).Msg("request failed")
		a.error(w, http.StatusInternalServerError, "internal", "internal error")
	}
}

func (a *App) currentUserID(r *http.Request) string {
	return middleware.UserIDFromContext(r.Context())
}

func (a *App) listLimit() int {
	if a.ListLimit > 0 {
		return a.ListLimit
	}
	return 50
}
