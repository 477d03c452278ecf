package dashboard

import (
	"context"
	"errors"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

// Collection names a server-side collection the board re-fetches after a
// mutation. Every mutation declares the collections it affects; nothing
// is invalidated implicitly.
type Collection string

const (
	Campaigns      Collection = "campaigns"
	Influencers    Collection = "influencers"
	CampaignDetail Collection = "campaign_detail"
)

// ErrNoPendingAction is returned by Confirm when no destructive action
// has been requested first.
var ErrNoPendingAction = errors.New("no pending confirmation")

// ErrNoEdit is returned when submitting without an edit in progress.
var ErrNoEdit = errors.New("no edit in progress")

// ErrNoSelection is returned by assignment operations without a selected
// campaign.
var ErrNoSelection = errors.New("no campaign selected")

type pendingKind int

const (
	pendingNone pendingKind = iota
	pendingCampaignDelete
	pendingInfluencerDelete
	pendingUnassign
)

// CampaignDraft holds per-field edit state snapshotted from the campaign
// being edited. The dashboard mutates it field by field.
type CampaignDraft struct {
	Title       string
	Description string
	Budget      int64
	StartDate   string // RFC3339 date text, as typed in the form
	EndDate     string
}

// InfluencerDraft holds per-field edit state for an influencer.
type InfluencerDraft struct {
	Name           string
	FollowerCount  int64
	EngagementRate string
}

// Board reconciles the dashboard's server-fetched collections with local
// edit state. Entering edit mode snapshots the target's fields into a
// draft; submitting sends a patch of changed fields only and re-fetches
// the affected collections; cancelling discards the draft without a
// service call. Destructive operations are modal-gated: a Request arms
// the action and only Confirm issues the call. Board is not safe for
// concurrent use; the dashboard drives it from a single goroutine.
type Board struct {
	api API

	campaigns   []domain.Campaign
	influencers []domain.Influencer
	selected    *port.CampaignDetail

	editingCampaign    *int64
	campaignDraft      CampaignDraft
	campaignSnapshot   CampaignDraft
	editingInfluencer  *int64
	influencerDraft    InfluencerDraft
	influencerSnapshot InfluencerDraft

	pending   pendingKind
	pendingID int64
}

// NewBoard creates a board over the given API. Call Refresh before
// rendering.
func NewBoard(api API) *Board {
	return &Board{api: api}
}

// Refresh re-fetches the named collections, or every collection when none
// are named. A selected campaign that disappeared server-side clears the
// selection instead of failing.
func (b *Board) Refresh(ctx context.Context, cols ...Collection) error {
	if len(cols) == 0 {
		cols = []Collection{Campaigns, Influencers, CampaignDetail}
	}
	for _, col := range cols {
		switch col {
		case Campaigns:
			items, err := b.api.Campaigns(ctx)
			if err != nil {
				return err
			}
			b.campaigns = items
		case Influencers:
			items, err := b.api.Influencers(ctx)
			if err != nil {
				return err
			}
			b.influencers = items
		case CampaignDetail:
			if b.selected == nil {
				continue
			}
			detail, err := b.api.Campaign(ctx, b.selected.Campaign.ID)
			if errors.Is(err, port.ErrNotFound) {
				b.selected = nil
				continue
			}
			if err != nil {
				return err
			}
			b.selected = detail
		}
	}
	return nil
}

// Campaigns returns the last fetched campaign list.
func (b *Board) Campaigns() []domain.Campaign { return b.campaigns }

// Influencers returns the last fetched influencer list.
func (b *Board) Influencers() []domain.Influencer { return b.influencers }

// Selected returns the currently selected campaign detail, if any.
func (b *Board) Selected() *port.CampaignDetail { return b.selected }

// SelectCampaign fetches and pins a campaign's detail view.
func (b *Board) SelectCampaign(ctx context.Context, id int64) error {
	detail, err := b.api.Campaign(ctx, id)
	if err != nil {
		return err
	}
	b.selected = detail
	return nil
}

// ClearSelection drops the detail view.
func (b *Board) ClearSelection() { b.selected = nil }

// CreateCampaign issues the create call and re-fetches the campaign list.
func (b *Board) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) error {
	if err := b.api.CreateCampaign(ctx, in); err != nil {
		return err
	}
	return b.Refresh(ctx, Campaigns)
}

// EditCampaign enters edit mode for id, snapshotting its fields into the
// draft.
func (b *Board) EditCampaign(id int64) error {
	for i := range b.campaigns {
		if b.campaigns[i].ID != id {
			continue
		}
		c := b.campaigns[i]
		desc := ""
		if c.Description != nil {
			desc = *c.Description
		}
		draft := CampaignDraft{
			Title:       c.Title,
			Description: desc,
			Budget:      c.Budget,
			StartDate:   c.StartDate.Format(dateFormat),
			EndDate:     c.EndDate.Format(dateFormat),
		}
		b.campaignDraft = draft
		b.campaignSnapshot = draft
		b.editingCampaign = &c.ID
		return nil
	}
	return port.ErrNotFound
}

// CampaignDraft exposes the mutable draft, or nil when no campaign edit
// is in progress.
func (b *Board) CampaignDraft() *CampaignDraft {
	if b.editingCampaign == nil {
		return nil
	}
	return &b.campaignDraft
}

// SubmitCampaignEdit diffs the draft against its snapshot, sends only the
// changed fields and, on success, leaves edit mode and re-fetches the
// affected collections. On failure edit mode stays so the user can fix
// the draft or cancel.
func (b *Board) SubmitCampaignEdit(ctx context.Context) error {
	if b.editingCampaign == nil {
		return ErrNoEdit
	}
	patch, err := diffCampaign(b.campaignSnapshot, b.campaignDraft)
	if err != nil {
		return err
	}
	if !patch.IsZero() {
		if err := b.api.UpdateCampaign(ctx, *b.editingCampaign, patch); err != nil {
			return err
		}
	}
	b.editingCampaign = nil
	return b.Refresh(ctx, Campaigns, CampaignDetail)
}

// CancelCampaignEdit discards the draft without a service call.
func (b *Board) CancelCampaignEdit() { b.editingCampaign = nil }

// AssignInfluencer links an influencer to the selected campaign and
// re-fetches the detail view.
func (b *Board) AssignInfluencer(ctx context.Context, influencerID int64) error {
	if b.selected == nil {
		return ErrNoSelection
	}
	if err := b.api.AssignInfluencer(ctx, b.selected.Campaign.ID, influencerID); err != nil {
		return err
	}
	return b.Refresh(ctx, CampaignDetail)
}

// CreateInfluencer issues the create call and re-fetches the roster.
func (b *Board) CreateInfluencer(ctx context.Context, in port.CreateInfluencerInput) error {
	if err := b.api.CreateInfluencer(ctx, in); err != nil {
		return err
	}
	return b.Refresh(ctx, Influencers)
}

// EditInfluencer enters edit mode for id, snapshotting its fields.
func (b *Board) EditInfluencer(id int64) error {
	for i := range b.influencers {
		if b.influencers[i].ID != id {
			continue
		}
		inf := b.influencers[i]
		draft := InfluencerDraft{
			Name:           inf.Name,
			FollowerCount:  inf.FollowerCount,
			EngagementRate: inf.EngagementRate,
		}
		b.influencerDraft = draft
		b.influencerSnapshot = draft
		b.editingInfluencer = &inf.ID
		return nil
	}
	return port.ErrNotFound
}

// InfluencerDraft exposes the mutable draft, or nil when no influencer
// edit is in progress.
func (b *Board) InfluencerDraft() *InfluencerDraft {
	if b.editingInfluencer == nil {
		return nil
	}
	return &b.influencerDraft
}

// SubmitInfluencerEdit mirrors SubmitCampaignEdit for the roster.
func (b *Board) SubmitInfluencerEdit(ctx context.Context) error {
	if b.editingInfluencer == nil {
		return ErrNoEdit
	}
	patch := diffInfluencer(b.influencerSnapshot, b.influencerDraft)
	if !patch.IsZero() {
		if err := b.api.UpdateInfluencer(ctx, *b.editingInfluencer, patch); err != nil {
			return err
		}
	}
	b.editingInfluencer = nil
	return b.Refresh(ctx, Influencers, CampaignDetail)
}

// CancelInfluencerEdit discards the draft without a service call.
func (b *Board) CancelInfluencerEdit() { b.editingInfluencer = nil }

// RequestCampaignDelete arms deletion of a campaign. Any previously armed
// action is replaced; only one confirmation modal exists at a time.
func (b *Board) RequestCampaignDelete(id int64) {
	b.pending = pendingCampaignDelete
	b.pendingID = id
}

// RequestInfluencerDelete arms deletion of an influencer.
func (b *Board) RequestInfluencerDelete(id int64) {
	b.pending = pendingInfluencerDelete
	b.pendingID = id
}

// RequestUnassign arms removal of an influencer from the selected
// campaign.
func (b *Board) RequestUnassign(influencerID int64) {
	b.pending = pendingUnassign
	b.pendingID = influencerID
}

// Dismiss drops the armed action without calling the service.
func (b *Board) Dismiss() { b.pending = pendingNone }

// Confirm executes the armed destructive action and re-fetches the
// collections it affects. Confirm without a prior Request never reaches
// the service.
func (b *Board) Confirm(ctx context.Context) error {
	kind, id := b.pending, b.pendingID
	b.pending = pendingNone
	switch kind {
	case pendingCampaignDelete:
		if err := b.api.DeleteCampaign(ctx, id); err != nil {
			return err
		}
		return b.Refresh(ctx, Campaigns, CampaignDetail)
	case pendingInfluencerDelete:
		if err := b.api.DeleteInfluencer(ctx, id); err != nil {
			return err
		}
		return b.Refresh(ctx, Influencers, CampaignDetail)
	case pendingUnassign:
		if b.selected == nil {
			return ErrNoSelection
		}
		if err := b.api.RemoveInfluencer(ctx, b.selected.Campaign.ID, id); err != nil {
			return err
		}
		return b.Refresh(ctx, CampaignDetail)
	default:
		return ErrNoPendingAction
	}
}
