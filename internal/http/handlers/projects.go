package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

type projectRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FundingGoal int64  `json:"fundingGoal"`
}

type projectDTO struct {
	ID          string    `json:"id"`
	NGOID       string    `json:"ngo_id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	FundingGoal int64     `json:"funding_goal"`
	FundsRaised int64     `json:"funds_raised"`
	CreatedAt   time.Time `json:"created_at"`
}

func toProjectDTO(p *domain.Project) projectDTO {
	return projectDTO{
		ID:          p.ID,
		NGOID:       p.NGOID,
		Title:       p.Title,
		Description: p.Description,
		FundingGoal: p.FundingGoal,
		FundsRaised: p.FundsRaised,
		CreatedAt:   p.CreatedAt,
	}
}

// ProjectsCreate lets an NGO open a new fundraising project.
func (a *App) ProjectsCreate(w http.ResponseWriter, r *http.Request) {
	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.Title == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "title required")
		return
	}
	if req.FundingGoal <= 0 {
		a.error(w, http.StatusBadRequest, "bad_request", "fundingGoal must be positive")
		return
	}

	profile, err := a.requireProfile(w, r)
	if err != nil {
		return
	}
	if !profile.IsNGO() {
		a.error(w, http.StatusForbidden, "forbidden", "only ngo profiles can create projects")
		return
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		NGOID:       profile.ID,
		Title:       req.Title,
		Description: req.Description,
		FundingGoal: req.FundingGoal,
	}
	if err := a.Projects.Create(r.Context(), project); err != nil {
		a.serviceError(w, err)
		return
	}
	a.json(w, http.StatusCreated, map[string]any{
		"success": true,
		"project": toProjectDTO(project),
	})
}

// ProjectsList returns the most recent projects.
func (a *App) ProjectsList(w http.ResponseWriter, r *http.Request) {
	projects, err := a.Projects.List(r.Context(), a.listLimit())
	if err != nil {
		a.serviceError(w, err)
		return
	}
	items := make([]projectDTO, 0, len(projects))
	for i := range projects {
		items = append(items, toProjectDTO(&projects[i]))
	}
	a.json(w, http.StatusOK, map[string]any{"items": items})
}

// ProjectsGet returns one project with its milestones.
func (a *App) ProjectsGet(w http.ResponseWriter, r *http.Request) {
	projectID := chi.URLParam(r, "id")
	project, err := a.Projects.GetByID(r.Context(), projectID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	milestones, err := a.Milestones.ListByProject(r.Context(), projectID)
	if err != nil {
		a.serviceError(w, err)
		return
	}
	items := make([]milestoneDTO, 0, len(milestones))
	for i := range milestones {
		items = append(items, toMilestoneDTO(&milestones[i]))
	}
	a.json(w, http.StatusOK, map[string]any{
		"project":    toProjectDTO(project),
		"milestones": items,
	})
}

// requireProfile resolves the authenticated caller to a stored profile and
// writes the error response itself when it cannot.
func (a *App) requireProfile(w http.ResponseWriter, r *http.Request) (*domain.Profile, error) {
	caller := a.currentUserID(r)
	if caller == "" {
		a.error(w, http.StatusUnauthorized, "unauthenticated", "caller identity required")
		return nil, domain.ErrUnauthenticated
	}
	profile, err := a.Profiles.GetByID(r.Context(), caller)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			a.error(w, http.StatusNotFound, "not_found", "profile not found")
		} else {
			a.serviceError(w, err)
		}
		return nil, err
	}
	return profile, nil
}
