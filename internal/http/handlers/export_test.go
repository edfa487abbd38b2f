package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

type stubProjects struct {
	project *domain.Project
}

func (s *stubProjects) Create(context.Context, *domain.Project) error { return nil }
func (s *stubProjects) GetByID(_ context.Context, id string) (*domain.Project, error) {
	if s.project == nil || s.project.ID != id {
		return nil, domain.ErrNotFound
	}
	return s.project, nil
}
func (s *stubProjects) List(context.Context, int) ([]domain.Project, error) { return nil, nil }
func (s *stubProjects) AddFunds(context.Context, string, int64) error       { return nil }

type stubLedger struct {
	entries []domain.LedgerEntry
}

func (s *stubLedger) Append(context.Context, domain.LedgerEventType, any) error { return nil }
func (s *stubLedger) ListByProject(context.Context, string, int) ([]domain.LedgerEntry, error) {
	return s.entries, nil
}

type stubStats struct {
	stats *domain.ProjectStats
}

func (s *stubStats) ProjectStats(context.Context, string) (*domain.ProjectStats, error) {
	return s.stats, nil
}

func TestProjectExportProducesArchive(t *testing.T) {
	app := &App{
		Projects: &stubProjects{project: &domain.Project{
			ID: "p-1", NGOID: "ngo-1", Title: "Wells", FundingGoal: 10000, CreatedAt: time.Now(),
		}},
		Ledger: &stubLedger{entries: []domain.LedgerEntry{
			{ID: "l-1", EventType: domain.LedgerEventDonation, Details: []byte(`{"amount":500}`)},
		}},
		Stats:  &stubStats{stats: &domain.ProjectStats{ProjectID: "p-1", FundsRaised: 500}},
		Logger: zerolog.Nop(),
	}

	r := chi.NewRouter()
	r.Get("/v1/projects/{id}/export", app.ProjectExport)

	req := httptest.NewRequest("GET", "/v1/projects/p-1/export", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); got != "application/zip" {
		t.Fatalf("content-type %q", got)
	}

	body := rr.Body.Bytes()
	zr, err := zip.NewReader(bytes.NewReader(body), int64(len(body)))
	if err != nil {
		t.Fatalf("response is not a zip archive: %v", err)
	}
	want := map[string]bool{"project.json": false, "ledger.json": false, "stats.json": false}
	for _, f := range zr.File {
		if _, ok := want[f.Name]; !ok {
			t.Fatalf("unexpected entry %q", f.Name)
		}
		want[f.Name] = true
	}
	for name, found := range want {
		if !found {
			t.Fatalf("archive is missing %q", name)
		}
	}
}

func TestProjectExportUnknownProject(t *testing.T) {
	app := &App{
		Projects: &stubProjects{},
		Ledger:   &stubLedger{},
		Stats:    &stubStats{},
		Logger:   zerolog.Nop(),
	}

	r := chi.NewRouter()
	r.Get("/v1/projects/{id}/export", app.ProjectExport)

	req := httptest.NewRequest("GET", "/v1/projects/missing/export", nil)
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Fatalf("status %d, want 404", rr.Code)
	}
}
