package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
	"promohub/internal/core/port/mocks"
)

var (
	testStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC)
)

func validCampaignInput() port.CreateCampaignInput {
	return port.CreateCampaignInput{
		Title:     "Spring Launch",
		Budget:    5000,
		StartDate: testStart,
		EndDate:   testEnd,
	}
}

func storedCampaign() *domain.Campaign {
	return &domain.Campaign{
		ID:        1,
		Title:     "Spring Launch",
		Budget:    5000,
		StartDate: testStart,
		EndDate:   testEnd,
		OwnerID:   "u1",
		CreatedAt: testStart,
	}
}

func TestCampaignCreate(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().
		Insert(mock.Anything, mock.AnythingOfType("*domain.Campaign")).
		Run(func(_ context.Context, c *domain.Campaign) {
			if c.OwnerID != "u1" {
				t.Errorf("owner = %q, want u1", c.OwnerID)
			}
			if c.Title != "Spring Launch" || c.Budget != 5000 {
				t.Errorf("unexpected campaign: %+v", c)
			}
		}).
		Return(nil)

	svc := NewCampaignUseCase(repo)
	if err := svc.Create(context.Background(), "u1", validCampaignInput()); err != nil {
		t.Fatalf("Create: %v", err)
	}
}

func TestCampaignCreateSameDayDates(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Insert(mock.Anything, mock.Anything).Return(nil)

	in := validCampaignInput()
	in.EndDate = in.StartDate

	svc := NewCampaignUseCase(repo)
	if err := svc.Create(context.Background(), "u1", in); err != nil {
		t.Fatalf("Create with equal dates: %v", err)
	}
}

func TestCampaignCreateValidation(t *testing.T) {
	longTitle := ""
	for len(longTitle) <= 256 {
		longTitle += "x"
	}

	cases := []struct {
		name   string
		mutate func(*port.CreateCampaignInput)
		field  string
	}{
		{"empty title", func(in *port.CreateCampaignInput) { in.Title = "" }, "title"},
		{"long title", func(in *port.CreateCampaignInput) { in.Title = longTitle }, "title"},
		{"zero budget", func(in *port.CreateCampaignInput) { in.Budget = 0 }, "budget"},
		{"negative budget", func(in *port.CreateCampaignInput) { in.Budget = -100 }, "budget"},
		{"end before start", func(in *port.CreateCampaignInput) { in.EndDate = testStart.AddDate(0, 0, -1) }, "endDate"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCampaignRepository(t)
			svc := NewCampaignUseCase(repo)

			in := validCampaignInput()
			tc.mutate(&in)

			err := svc.Create(context.Background(), "u1", in)
			var verr *port.ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("want ValidationError, got %v", err)
			}
			if verr.Field != tc.field {
				t.Fatalf("field = %q, want %q", verr.Field, tc.field)
			}
		})
	}
}

func TestCampaignGetByID(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(1)).Return(storedCampaign(), nil)
	repo.EXPECT().ListAssigned(mock.Anything, int64(1)).Return([]domain.Influencer{
		{ID: 2, Name: "Ada", FollowerCount: 10000, EngagementRate: "3.50"},
	}, nil)

	svc := NewCampaignUseCase(repo)
	detail, err := svc.GetByID(context.Background(), "u1", 1)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if detail.Campaign.ID != 1 {
		t.Errorf("campaign id = %d, want 1", detail.Campaign.ID)
	}
	if len(detail.Influencers) != 1 || detail.Influencers[0].Name != "Ada" {
		t.Errorf("unexpected influencers: %+v", detail.Influencers)
	}
}

func TestCampaignGetByIDNotOwned(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u2", int64(1)).Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	_, err := svc.GetByID(context.Background(), "u2", 1)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCampaignUpdatePartial(t *testing.T) {
	budget := int64(9000)
	patch := port.CampaignPatch{Budget: &budget}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(1)).Return(storedCampaign(), nil)
	repo.EXPECT().
		UpdatePartial(mock.Anything, "u1", int64(1), mock.AnythingOfType("port.CampaignPatch")).
		Run(func(_ context.Context, _ string, _ int64, p port.CampaignPatch) {
			if p.Budget == nil || *p.Budget != 9000 {
				t.Errorf("budget not carried: %+v", p)
			}
			if p.Title != nil || p.StartDate != nil || p.EndDate != nil || p.Description != nil {
				t.Errorf("absent fields must stay nil: %+v", p)
			}
		}).
		Return(true, nil)

	svc := NewCampaignUseCase(repo)
	if err := svc.Update(context.Background(), "u1", 1, patch); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestCampaignUpdateMergedDateValidation(t *testing.T) {
	// Moving only the end date before the stored start date must fail even
	// though the patch itself carries a single field.
	bad := testStart.AddDate(0, 0, -1)
	patch := port.CampaignPatch{EndDate: &bad}

	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(1)).Return(storedCampaign(), nil)

	svc := NewCampaignUseCase(repo)
	err := svc.Update(context.Background(), "u1", 1, patch)
	var verr *port.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if verr.Field != "endDate" {
		t.Fatalf("field = %q, want endDate", verr.Field)
	}
}

func TestCampaignUpdateNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(42)).Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	title := "New"
	err := svc.Update(context.Background(), "u1", 42, port.CampaignPatch{Title: &title})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCampaignUpdateRowVanished(t *testing.T) {
	budget := int64(100)
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(1)).Return(storedCampaign(), nil)
	repo.EXPECT().UpdatePartial(mock.Anything, "u1", int64(1), mock.Anything).Return(false, nil)

	svc := NewCampaignUseCase(repo)
	err := svc.Update(context.Background(), "u1", 1, port.CampaignPatch{Budget: &budget})
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCampaignDelete(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Delete(mock.Anything, "u1", int64(1)).Return(true, nil)

	svc := NewCampaignUseCase(repo)
	if err := svc.Delete(context.Background(), "u1", 1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}

func TestCampaignDeleteNotFound(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().Delete(mock.Anything, "u1", int64(42)).Return(false, nil)

	svc := NewCampaignUseCase(repo)
	if err := svc.Delete(context.Background(), "u1", 42); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestAssignInfluencer(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(1)).Return(storedCampaign(), nil)
	repo.EXPECT().InsertAssignment(mock.Anything, int64(1), int64(2)).Return(nil)

	svc := NewCampaignUseCase(repo)
	if err := svc.AssignInfluencer(context.Background(), "u1", 1, 2); err != nil {
		t.Fatalf("AssignInfluencer: %v", err)
	}
}

func TestAssignInfluencerNotOwned(t *testing.T) {
	// A foreign campaign reads as missing; the assignment row is never
	// attempted.
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u2", int64(1)).Return(nil, nil)

	svc := NewCampaignUseCase(repo)
	err := svc.AssignInfluencer(context.Background(), "u2", 1, 2)
	if !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestAssignInfluencerDuplicate(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(1)).Return(storedCampaign(), nil)
	repo.EXPECT().InsertAssignment(mock.Anything, int64(1), int64(2)).Return(port.ErrConflict)

	svc := NewCampaignUseCase(repo)
	err := svc.AssignInfluencer(context.Background(), "u1", 1, 2)
	if !errors.Is(err, port.ErrConflict) {
		t.Fatalf("want ErrConflict, got %v", err)
	}
}

func TestRemoveInfluencerIdempotent(t *testing.T) {
	repo := mocks.NewMockCampaignRepository(t)
	repo.EXPECT().FindByID(mock.Anything, "u1", int64(1)).Return(storedCampaign(), nil)
	repo.EXPECT().DeleteAssignment(mock.Anything, int64(1), int64(2)).Return(nil)

	svc := NewCampaignUseCase(repo)
	for i := 0; i < 2; i++ {
		if err := svc.RemoveInfluencer(context.Background(), "u1", 1, 2); err != nil {
			t.Fatalf("RemoveInfluencer #%d: %v", i+1, err)
		}
	}
}
