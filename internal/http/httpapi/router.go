package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/Arsenepro177/fundflow-transparency/internal/http/handlers"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/middleware"
)

// NewRouter builds the full route table. Reads are public; every mutating
// route sits behind bearer authentication.
func NewRouter(cfg *infra.Config, app *handlers.App, lookup middleware.CountryLookup) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(app.Logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))
	r.Use(middleware.I18N(cfg.DefaultLocale, lookup))
	r.Use(middleware.RateLimit(cfg.RateLimitPerMin, time.Minute))

	// Health
	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/projects", func(r chi.Router) {
		r.Get("/", app.ProjectsList)
		r.Get("/{id}", app.ProjectsGet)
		r.Get("/{id}/ledger", app.ProjectLedger)
		r.Get("/{id}/stats", app.ProjectStats)
		r.Get("/{id}/export", app.ProjectExport)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))
			r.Post("/", app.ProjectsCreate)
			r.Post("/{id}/milestones", app.MilestonesCreate)
		})
	})

	r.Route("/v1/milestones", func(r chi.Router) {
		r.Get("/{id}", app.MilestonesGet)
		r.Get("/{id}/proofs", app.ProofsList)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthJWT(cfg.JWTSecret))
			r.Post("/{id}/proofs", app.ProofsCreate)
		})
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthJWT(cfg.JWTSecret))
		r.Post("/v1/donations", app.DonationsCreate)
		r.Post("/v1/votes", app.VotesCast)
	})

	return r
}
