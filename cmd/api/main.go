package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/Arsenepro177/fundflow-transparency/internal/adapter/repo"
	"github.com/Arsenepro177/fundflow-transparency/internal/http/handlers"
	"github.com/Arsenepro177/fundflow-transparency/internal/http/httpapi"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra"
	"github.com/Arsenepro177/fundflow-transparency/internal/infra/geoip"
	"github.com/Arsenepro177/fundflow-transparency/internal/middleware"
	"github.com/Arsenepro177/fundflow-transparency/internal/service"
)

func main() {
	// .env is optional
	_ = godotenv.Load()

	cfg, err := infra.LoadConfig()
	if err != nil {
		panic(err)
	}
	logger := infra.NewLogger(cfg.AppEnv)

	ctx := context.Background()
	dbpool, err := infra.NewDBPool(ctx, cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect database")
	}
	defer dbpool.Close()

	runner := infra.NewSQLRunner(dbpool, logger)

	resolver, err := geoip.NewResolver(cfg.GeoIPDBPath)
	if err != nil {
		logger.Warn().Err(err).Msg("geoip database unavailable, donor countries will rely on headers")
	}
	var lookup middleware.CountryLookup
	if resolver != nil {
		lookup = resolver.CountryCode
		if closer, ok := resolver.(*geoip.Resolver); ok {
			defer closer.Close()
		}
	}

	profiles := repo.NewProfileRepository(runner)
	projects := repo.NewProjectRepository(runner)
	milestones := repo.NewMilestoneRepository(runner)
	proofs := repo.NewProofRepository(runner)
	validations := repo.NewValidationRepository(runner)
	donations := repo.NewDonationRepository(runner)
	ledger := repo.NewLedgerRepository(runner)
	stats := repo.NewStatsRepository(runner)

	app := &handlers.App{
		Donations:   service.NewDonationRecorder(profiles, projects, donations, ledger, logger),
		Votes:       service.NewMilestoneValidationService(profiles, milestones, validations, ledger, logger),
		Profiles:    profiles,
		Projects:    projects,
		Milestones:  milestones,
		Proofs:      proofs,
		Validations: validations,
		Ledger:      ledger,
		Stats:       stats,
		Logger:      logger,
		ListLimit:   cfg.ListLimitDefault,
	}

	router := httpapi.NewRouter(cfg, app, lookup)
	server := infra.NewHTTPServer(cfg, router)

	go func() {
		logger.Info().Msgf("API listening on :%s", cfg.Port)
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http server failed")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTPIdleTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("failed to shutdown server")
	}
	logger.Info().Msg("server stopped")
}
