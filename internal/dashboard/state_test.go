package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

// fakeAPI is an in-memory API that records calls and serves canned
// collections.
type fakeAPI struct {
	campaigns   []domain.Campaign
	influencers []domain.Influencer
	details     map[int64]*port.CampaignDetail

	campaignFetches   int
	influencerFetches int
	detailFetches     int

	campaignPatches   []port.CampaignPatch
	influencerPatches []port.InfluencerPatch
	deletedCampaigns  []int64
	deletedRoster     []int64
	assigned          [][2]int64
	removed           [][2]int64
	created           int

	err error
}

func (f *fakeAPI) Campaigns(context.Context) ([]domain.Campaign, error) {
	f.campaignFetches++
	return f.campaigns, f.err
}

func (f *fakeAPI) Campaign(_ context.Context, id int64) (*port.CampaignDetail, error) {
	f.detailFetches++
	if f.err != nil {
		return nil, f.err
	}
	d, ok := f.details[id]
	if !ok {
		return nil, port.ErrNotFound
	}
	return d, nil
}

func (f *fakeAPI) CreateCampaign(context.Context, port.CreateCampaignInput) error {
	f.created++
	return f.err
}

func (f *fakeAPI) UpdateCampaign(_ context.Context, _ int64, patch port.CampaignPatch) error {
	f.campaignPatches = append(f.campaignPatches, patch)
	return f.err
}

func (f *fakeAPI) DeleteCampaign(_ context.Context, id int64) error {
	f.deletedCampaigns = append(f.deletedCampaigns, id)
	delete(f.details, id)
	return f.err
}

func (f *fakeAPI) AssignInfluencer(_ context.Context, campaignID, influencerID int64) error {
	f.assigned = append(f.assigned, [2]int64{campaignID, influencerID})
	return f.err
}

func (f *fakeAPI) RemoveInfluencer(_ context.Context, campaignID, influencerID int64) error {
	f.removed = append(f.removed, [2]int64{campaignID, influencerID})
	return f.err
}

func (f *fakeAPI) Influencers(context.Context) ([]domain.Influencer, error) {
	f.influencerFetches++
	return f.influencers, f.err
}

func (f *fakeAPI) CreateInfluencer(context.Context, port.CreateInfluencerInput) error {
	f.created++
	return f.err
}

func (f *fakeAPI) UpdateInfluencer(_ context.Context, _ int64, patch port.InfluencerPatch) error {
	f.influencerPatches = append(f.influencerPatches, patch)
	return f.err
}

func (f *fakeAPI) DeleteInfluencer(_ context.Context, id int64) error {
	f.deletedRoster = append(f.deletedRoster, id)
	return f.err
}

var boardStart = time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

func newFakeAPI() *fakeAPI {
	c := domain.Campaign{
		ID:        1,
		Title:     "Spring Launch",
		Budget:    5000,
		StartDate: boardStart,
		EndDate:   boardStart.AddDate(0, 1, 0),
	}
	return &fakeAPI{
		campaigns: []domain.Campaign{c},
		influencers: []domain.Influencer{
			{ID: 2, Name: "Ada", FollowerCount: 10000, EngagementRate: "3.50"},
		},
		details: map[int64]*port.CampaignDetail{
			1: {Campaign: c},
		},
	}
}

func newBoard(t *testing.T, api *fakeAPI) *Board {
	t.Helper()
	b := NewBoard(api)
	if err := b.Refresh(context.Background()); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	return b
}

func TestSubmitSendsOnlyChangedFields(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.EditCampaign(1); err != nil {
		t.Fatalf("EditCampaign: %v", err)
	}
	b.CampaignDraft().Budget = 9000

	if err := b.SubmitCampaignEdit(context.Background()); err != nil {
		t.Fatalf("SubmitCampaignEdit: %v", err)
	}
	if len(api.campaignPatches) != 1 {
		t.Fatalf("patches sent = %d, want 1", len(api.campaignPatches))
	}
	p := api.campaignPatches[0]
	if p.Budget == nil || *p.Budget != 9000 {
		t.Errorf("budget not carried: %+v", p)
	}
	if p.Title != nil || p.StartDate != nil || p.EndDate != nil || p.Description != nil {
		t.Errorf("unchanged fields must stay absent: %+v", p)
	}
	if b.CampaignDraft() != nil {
		t.Error("edit mode must end after submit")
	}
}

func TestSubmitUnchangedDraftSkipsCall(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.EditCampaign(1); err != nil {
		t.Fatalf("EditCampaign: %v", err)
	}
	if err := b.SubmitCampaignEdit(context.Background()); err != nil {
		t.Fatalf("SubmitCampaignEdit: %v", err)
	}
	if len(api.campaignPatches) != 0 {
		t.Fatalf("patches sent = %d, want 0", len(api.campaignPatches))
	}
}

func TestSubmitBadDateRejectedLocally(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.EditCampaign(1); err != nil {
		t.Fatalf("EditCampaign: %v", err)
	}
	b.CampaignDraft().EndDate = "next tuesday"

	err := b.SubmitCampaignEdit(context.Background())
	var verr *port.ValidationError
	if !errors.As(err, &verr) || verr.Field != "endDate" {
		t.Fatalf("want endDate ValidationError, got %v", err)
	}
	if len(api.campaignPatches) != 0 {
		t.Error("nothing may be sent for an unparseable draft")
	}
	if b.CampaignDraft() == nil {
		t.Error("edit mode must survive a failed submit")
	}
}

func TestCancelEditMakesNoCall(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.EditCampaign(1); err != nil {
		t.Fatalf("EditCampaign: %v", err)
	}
	b.CampaignDraft().Title = "Renamed"
	b.CancelCampaignEdit()

	if len(api.campaignPatches) != 0 {
		t.Error("cancel must not reach the service")
	}
	if err := b.SubmitCampaignEdit(context.Background()); !errors.Is(err, ErrNoEdit) {
		t.Fatalf("submit after cancel: want ErrNoEdit, got %v", err)
	}
}

func TestSubmitWithoutEdit(t *testing.T) {
	b := newBoard(t, newFakeAPI())
	if err := b.SubmitCampaignEdit(context.Background()); !errors.Is(err, ErrNoEdit) {
		t.Fatalf("want ErrNoEdit, got %v", err)
	}
	if err := b.SubmitInfluencerEdit(context.Background()); !errors.Is(err, ErrNoEdit) {
		t.Fatalf("want ErrNoEdit, got %v", err)
	}
}

func TestInfluencerEditDiff(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.EditInfluencer(2); err != nil {
		t.Fatalf("EditInfluencer: %v", err)
	}
	b.InfluencerDraft().EngagementRate = "4.1"

	if err := b.SubmitInfluencerEdit(context.Background()); err != nil {
		t.Fatalf("SubmitInfluencerEdit: %v", err)
	}
	if len(api.influencerPatches) != 1 {
		t.Fatalf("patches sent = %d, want 1", len(api.influencerPatches))
	}
	p := api.influencerPatches[0]
	if p.EngagementRate == nil || *p.EngagementRate != "4.1" {
		t.Errorf("rate not carried: %+v", p)
	}
	if p.Name != nil || p.FollowerCount != nil {
		t.Errorf("unchanged fields must stay absent: %+v", p)
	}
}

func TestConfirmWithoutRequest(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.Confirm(context.Background()); !errors.Is(err, ErrNoPendingAction) {
		t.Fatalf("want ErrNoPendingAction, got %v", err)
	}
	if len(api.deletedCampaigns)+len(api.deletedRoster)+len(api.removed) != 0 {
		t.Error("confirm without request must not reach the service")
	}
}

func TestDismissDisarmsAction(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	b.RequestCampaignDelete(1)
	b.Dismiss()

	if err := b.Confirm(context.Background()); !errors.Is(err, ErrNoPendingAction) {
		t.Fatalf("confirm after dismiss: want ErrNoPendingAction, got %v", err)
	}
	if len(api.deletedCampaigns) != 0 {
		t.Error("dismissed action must not reach the service")
	}
}

func TestConfirmCampaignDelete(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.SelectCampaign(context.Background(), 1); err != nil {
		t.Fatalf("SelectCampaign: %v", err)
	}

	fetches := api.campaignFetches
	b.RequestCampaignDelete(1)
	if err := b.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if len(api.deletedCampaigns) != 1 || api.deletedCampaigns[0] != 1 {
		t.Fatalf("deleted = %v, want [1]", api.deletedCampaigns)
	}
	if api.campaignFetches != fetches+1 {
		t.Errorf("campaign list must be re-fetched once, got %d extra", api.campaignFetches-fetches)
	}
	if b.Selected() != nil {
		t.Error("selection of the deleted campaign must clear")
	}
}

func TestUnassignRefreshesDetailOnly(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.SelectCampaign(context.Background(), 1); err != nil {
		t.Fatalf("SelectCampaign: %v", err)
	}

	campaignFetches, rosterFetches, detailFetches := api.campaignFetches, api.influencerFetches, api.detailFetches
	b.RequestUnassign(2)
	if err := b.Confirm(context.Background()); err != nil {
		t.Fatalf("Confirm: %v", err)
	}
	if len(api.removed) != 1 || api.removed[0] != [2]int64{1, 2} {
		t.Fatalf("removed = %v, want [[1 2]]", api.removed)
	}
	if api.campaignFetches != campaignFetches || api.influencerFetches != rosterFetches {
		t.Error("unassign must not invalidate the list collections")
	}
	if api.detailFetches != detailFetches+1 {
		t.Errorf("detail must be re-fetched once, got %d extra", api.detailFetches-detailFetches)
	}
}

func TestAssignRequiresSelection(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.AssignInfluencer(context.Background(), 2); !errors.Is(err, ErrNoSelection) {
		t.Fatalf("want ErrNoSelection, got %v", err)
	}
	if len(api.assigned) != 0 {
		t.Error("no assignment may be sent without a selection")
	}
}

func TestCreateCampaignRefreshesList(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	fetches := api.campaignFetches
	in := port.CreateCampaignInput{Title: "Summer", Budget: 100, StartDate: boardStart, EndDate: boardStart}
	if err := b.CreateCampaign(context.Background(), in); err != nil {
		t.Fatalf("CreateCampaign: %v", err)
	}
	if api.created != 1 {
		t.Fatalf("creates = %d, want 1", api.created)
	}
	if api.campaignFetches != fetches+1 {
		t.Errorf("campaign list must be re-fetched once, got %d extra", api.campaignFetches-fetches)
	}
}

func TestRefreshClearsVanishedSelection(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.SelectCampaign(context.Background(), 1); err != nil {
		t.Fatalf("SelectCampaign: %v", err)
	}
	delete(api.details, 1)

	if err := b.Refresh(context.Background(), CampaignDetail); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if b.Selected() != nil {
		t.Error("vanished selection must clear, not fail")
	}
}

func TestFailedSubmitKeepsEditMode(t *testing.T) {
	api := newFakeAPI()
	b := newBoard(t, api)

	if err := b.EditCampaign(1); err != nil {
		t.Fatalf("EditCampaign: %v", err)
	}
	b.CampaignDraft().Budget = 9000

	api.err = port.ErrNotFound
	if err := b.SubmitCampaignEdit(context.Background()); !errors.Is(err, port.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
	if b.CampaignDraft() == nil {
		t.Error("edit mode must survive a failed submit")
	}
}
