package handlers

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
	"github.com/Arsenepro177/fundflow-transparency/internal/middleware"
	"github.com/Arsenepro177/fundflow-transparency/internal/service"
)

type fakeVoteService struct {
	result *service.VoteResult
	err    error

	gotCaller    string
	gotMilestone string
	gotIsValid   bool
}

func (f *fakeVoteService) CastVote(_ context.Context, callerID, milestoneID string, isValid bool) (*service.VoteResult, error) {
	f.gotCaller = callerID
	f.gotMilestone = milestoneID
	f.gotIsValid = isValid
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestVotesCast(t *testing.T) {
	svc := &fakeVoteService{result: &service.VoteResult{
		Validation: &domain.Validation{
			ID:          "validation-1",
			MilestoneID: "milestone-1",
			ValidatorID: "validator-1",
			IsValid:     true,
		},
		PositiveVotes: 3,
		Completed:     true,
	}}
	app := &App{Votes: svc, Logger: zerolog.Nop()}

	req := httptest.NewRequest("POST", "/v1/votes", strings.NewReader(`{"milestoneId":"milestone-1","isValid":true}`))
	req = req.WithContext(middleware.ContextWithUserID(req.Context(), "validator-1"))
	rr := httptest.NewRecorder()

	app.VotesCast(rr, req)

	if rr.Code != 201 {
		t.Fatalf("unexpected status: got %d, want 201 (body %s)", rr.Code, rr.Body.String())
	}
	if svc.gotCaller != "validator-1" || svc.gotMilestone != "milestone-1" || !svc.gotIsValid {
		t.Fatalf("service called with %q %q %v", svc.gotCaller, svc.gotMilestone, svc.gotIsValid)
	}

	var payload struct {
		Success            bool  `json:"success"`
		PositiveVotes      int64 `json:"positive_votes"`
		MilestoneCompleted bool  `json:"milestone_completed"`
		Validation         struct {
			ID string `json:"id"`
		} `json:"validation"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !payload.Success || payload.PositiveVotes != 3 || !payload.MilestoneCompleted {
		t.Fatalf("unexpected payload: %+v", payload)
	}
	if payload.Validation.ID != "validation-1" {
		t.Fatalf("unexpected validation id %q", payload.Validation.ID)
	}
}

func TestVotesCastRequiresIsValid(t *testing.T) {
	app := &App{Votes: &fakeVoteService{}, Logger: zerolog.Nop()}

	req := httptest.NewRequest("POST", "/v1/votes", strings.NewReader(`{"milestoneId":"milestone-1"}`))
	rr := httptest.NewRecorder()
	app.VotesCast(rr, req)

	if rr.Code != 400 {
		t.Fatalf("unexpected status: got %d, want 400", rr.Code)
	}
}

func TestVotesCastErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"unauthenticated", domain.ErrUnauthenticated, 401},
		{"wrong role", domain.ErrForbidden, 403},
		{"missing milestone", domain.ErrNotFound, 404},
		{"repeat vote", domain.ErrDuplicateVote, 409},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := &App{Votes: &fakeVoteService{err: tc.err}, Logger: zerolog.Nop()}
			req := httptest.NewRequest("POST", "/v1/votes", strings.NewReader(`{"milestoneId":"milestone-1","isValid":false}`))
			rr := httptest.NewRecorder()
			app.VotesCast(rr, req)
			if rr.Code != tc.want {
				t.Fatalf("status %d, want %d", rr.Code, tc.want)
			}
		})
	}
}
