package service

import (
	"context"
	"time"

	"github.com/Arsenepro177/fundflow-transparency/internal/domain"
)

type fakeProfiles struct {
	profiles map[string]*domain.Profile
}

func (f *fakeProfiles) GetByID(_ context.Context, id string) (*domain.Profile, error) {
	if p, ok := f.profiles[id]; ok {
		return p, nil
	}
	return nil, domain.ErrNotFound
}

type fakeProjects struct {
	added   map[string]int64
	addErr  error
	missing bool
}

func (f *fakeProjects) Create(context.Context, *domain.Project) error { return nil }

func (f *fakeProjects) GetByID(context.Context, string) (*domain.Project, error) {
	return nil, domain.ErrNotFound
}

func (f *fakeProjects) List(context.Context, int) ([]domain.Project, error) { return nil, nil }

func (f *fakeProjects) AddFunds(_ context.Context, projectID string, amount int64) error {
	if f.addErr != nil {
		return f.addErr
	}
	if f.missing {
		return domain.ErrNotFound
	}
	if f.added == nil {
		f.added = map[string]int64{}
	}
	f.added[projectID] += amount
	return nil
}

type fakeMilestones struct {
	milestones  map[string]*domain.Milestone
	completeErr error
}

func (f *fakeMilestones) Create(context.Context, *domain.Milestone) error { return nil }

func (f *fakeMilestones) GetByID(_ context.Context, id string) (*domain.Milestone, error) {
	if m, ok := f.milestones[id]; ok {
		return m, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeMilestones) ListByProject(context.Context, string) ([]domain.Milestone, error) {
	return nil, nil
}

func (f *fakeMilestones) Complete(_ context.Context, id string) (bool, error) {
	if f.completeErr != nil {
		return false, f.completeErr
	}
	m, ok := f.milestones[id]
	if !ok || m.IsCompleted() {
		return false, nil
	}
	now := time.Now()
	m.Status = domain.MilestoneCompleted
	m.CompletedAt = &now
	return true, nil
}

type fakeValidations struct {
	votes     []*domain.Validation
	createErr error
	countErr  error
}

func (f *fakeValidations) Create(_ context.Context, v *domain.Validation) error {
	if f.createErr != nil {
		return f.createErr
	}
	for _, existing := range f.votes {
		if existing.MilestoneID == v.MilestoneID && existing.ValidatorID == v.ValidatorID {
			return domain.ErrDuplicateVote
		}
	}
	v.CreatedAt = time.Now()
	f.votes = append(f.votes, v)
	return nil
}

func (f *fakeValidations) CountPositive(_ context.Context, milestoneID string) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	var count int64
	for _, v := range f.votes {
		if v.MilestoneID == milestoneID && v.IsValid {
			count++
		}
	}
	return count, nil
}

type fakeDonations struct {
	created   []*domain.Donation
	createErr error
}

func (f *fakeDonations) Create(_ context.Context, d *domain.Donation) error {
	if f.createErr != nil {
		return f.createErr
	}
	d.CreatedAt = time.Now()
	f.created = append(f.created, d)
	return nil
}

func (f *fakeDonations) ListByProject(context.Context, string, int) ([]domain.Donation, error) {
	return nil, nil
}

type ledgerEvent struct {
	eventType domain.LedgerEventType
	details   any
}

type fakeLedger struct {
	entries   []ledgerEvent
	appendErr error
}

func (f *fakeLedger) Append(_ context.Context, eventType domain.LedgerEventType, details any) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.entries = append(f.entries, ledgerEvent{eventType: eventType, details: details})
	return nil
}

func (f *fakeLedger) ListByProject(context.Context, string, int) ([]domain.LedgerEntry, error) {
	return nil, nil
}

func (f *fakeLedger) releases() []ledgerEvent {
	var out []ledgerEvent
	for _, e := range f.entries {
		if e.eventType == domain.LedgerEventRelease {
			out = append(out, e)
		}
	}
	return out
}
