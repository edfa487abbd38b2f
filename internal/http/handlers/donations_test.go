package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/middleware"
)

type fakeDonationService struct {
	donation *domain.Donation
	err      error

	gotCaller  string
	gotProject string
	gotAmount  int64
	gotCountry string
}

func (f *fakeDonationService) Record(_ context.Context, callerID, projectID string, amount int64, donorCountry string) (*domain.Donation, error) {
	f.gotCaller = callerID
	f.gotProject = projectID
	f.gotAmount = amount
	f.gotCountry = donorCountry
	if f.err != nil {
		return nil, f.err
	}
	return f.donation, nil
}

func TestDonationsCreate(t *testing.T) {
	svc := &fakeDonationService{donation: &domain.Donation{
		ID:        "donation-1",
		DonorID:   "donor-1",
		ProjectID: "project-1",
		Amount:    400,
		CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}}
	app := &App{Donations: svc, Logger: zerolog.Nop()}

	req := httptest.NewRequest("POST", "/v1/donations", strings.NewReader(`{"projectId":"project-1","amount":400}`))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "donor-1"))
	rr := httptest.NewRecorder()

	app.DonationsCreate(rr, req)

	if rr.Code != 201 {
		t.Fatalf("unexpected status: got %d, want 201 (body %s)", rr.Code, rr.Body.String())
	}
	if svc.gotCaller != "donor-1" || svc.gotProject != "project-1" || svc.gotAmount != 400 {
		t.Fatalf("service called with %q %q %d", svc.gotCaller, svc.gotProject, svc.gotAmount)
	}

	var payload struct {
		Success  bool `json:"success"`
		Donation struct {
			ID     string `json:"id"`
			Amount int64  `json:"amount"`
		} `json:"donation"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || payload.Donation.ID != "donation-1" || payload.Donation.Amount != 400 {
		t.Fatalf("unexpected payload: %+v", payload)
	}
}

func TestDonationsCreatePassesCountryFromContext(t *testing.T) {
	svc := &fakeDonationService{donation: &domain.Donation{ID: "donation-1"}}
	app := &App{Donations: svc, Logger: zerolog.Nop()}

	req := httptest.NewRequest("POST", "/v1/donations", strings.NewReader(`{"projectId":"project-1","amount":50}`))
	ctx := middleware.ContextWithUserID(req.Context(), "donor-1")
	ctx = context.WithValue(ctx, middleware.CountryKey, "DE")
	req = req.WithContext(ctx)
	rr := httptest.NewRecorder()

	app.DonationsCreate(rr, req)

	if rr.Code != 201 {
		t.Fatalf("unexpected status: %d", rr.Code)
	}
	if svc.gotCountry != "DE" {
		t.Fatalf("expected country DE, got %q", svc.gotCountry)
	}
}

func TestDonationsCreateBadPayload(t *testing.T) {
	app := &App{Donations: &fakeDonationService{}, Logger: zerolog.Nop()}

	req := httptest.NewRequest("POST", "/v1/donations", strings.NewReader(`{`))
	rr := httptest.NewRecorder()
	app.DonationsCreate(rr, req)

	if rr.Code != 400 {
		t.Fatalf("unexpected status: got %d, want 400", rr.Code)
	}
}

func TestDonationsCreateErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid amount", domain.ErrInvalidAmount, 400},
		{"unauthenticated", domain.ErrUnauthenticated, 401},
		{"missing profile or project", domain.ErrNotFound, 404},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := &App{Donations: &fakeDonationService{err: tc.err}, Logger: zerolog.Nop()}
			req := httptest.NewRequest("POST", "/v1/donations", strings.NewReader(`{"projectId":"project-1","amount":10}`))
			rr := httptest.NewRecorder()
			app.DonationsCreate(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status %d, want %d", rr.Code, tc.want)
			}
			var body map[string]string
			if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if body["error"] == "" {
				t.Fatal("error responses must carry an error message")
			}
		})
	}
}
