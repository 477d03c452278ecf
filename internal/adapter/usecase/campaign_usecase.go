package usecase

import (
	"context"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
	"promohub/internal/validation"
)

// CampaignUseCase implements owner-scoped campaign management. It owns
// the validation and ownership rules so they apply to every transport.
type CampaignUseCase struct {
	repo     port.CampaignRepository
	validate *validation.Validator
}

// NewCampaignUseCase creates a new usecase with the provided repository.
func NewCampaignUseCase(repo port.CampaignRepository) *CampaignUseCase {
	return &CampaignUseCase{repo: repo, validate: validation.New()}
}

// Create validates the input and stores a new campaign owned by the
// caller. Date ordering (endDate >= startDate) is enforced here for every
// caller, not just well-behaved clients.
func (u *CampaignUseCase) Create(ctx context.Context, ownerID string, in port.CreateCampaignInput) error {
	if err := u.validate.Validate(in); err != nil {
		return err
	}
	c := &domain.Campaign{
		Title:       in.Title,
		Description: in.Description,
		Budget:      in.Budget,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
		OwnerID:     ownerID,
	}
	return u.repo.Insert(ctx, c)
}

// GetAll returns the caller's campaigns, newest created first.
func (u *CampaignUseCase) GetAll(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	return u.repo.ListByOwner(ctx, ownerID)
}

// GetByID returns a campaign with its assigned influencers. A campaign
// owned by someone else yields ErrNotFound, indistinguishable from a
// missing id.
func (u *CampaignUseCase) GetByID(ctx context.Context, ownerID string, id int64) (*port.CampaignDetail, error) {
	c, err := u.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, port.ErrNotFound
	}
	infs, err := u.repo.ListAssigned(ctx, id)
	if err != nil {
		return nil, err
	}
	return &port.CampaignDetail{Campaign: *c, Influencers: infs}, nil
}

// Update merges the patch over the stored row and validates the merged
// result, so a one-sided date change still honours endDate >= startDate.
// Only the present patch fields reach the database.
func (u *CampaignUseCase) Update(ctx context.Context, ownerID string, id int64, patch port.CampaignPatch) error {
	current, err := u.repo.FindByID(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if current == nil {
		return port.ErrNotFound
	}
	merged := port.CreateCampaignInput{
		Title:       current.Title,
		Description: current.Description,
		Budget:      current.Budget,
		StartDate:   current.StartDate,
		EndDate:     current.EndDate,
	}
	if patch.Title != nil {
		merged.Title = *patch.Title
	}
	if patch.Description != nil {
		merged.Description = patch.Description
	}
	if patch.Budget != nil {
		merged.Budget = *patch.Budget
	}
	if patch.StartDate != nil {
		merged.StartDate = *patch.StartDate
	}
	if patch.EndDate != nil {
		merged.EndDate = *patch.EndDate
	}
	if err = u.validate.Validate(merged); err != nil {
		return err
	}
	found, err := u.repo.UpdatePartial(ctx, ownerID, id, patch)
	if err != nil {
		return err
	}
	if !found {
		// row vanished between the read and the write
		return port.ErrNotFound
	}
	return nil
}

// Delete removes the campaign; assignment rows cascade in the database.
func (u *CampaignUseCase) Delete(ctx context.Context, ownerID string, id int64) error {
	found, err := u.repo.Delete(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !found {
		return port.ErrNotFound
	}
	return nil
}

// AssignInfluencer links an influencer to a campaign the caller owns.
// Ownership is verified here rather than trusted to the client; a
// duplicate pair yields ErrConflict.
func (u *CampaignUseCase) AssignInfluencer(ctx context.Context, ownerID string, campaignID, influencerID int64) error {
	if err := u.requireOwnership(ctx, ownerID, campaignID); err != nil {
		return err
	}
	return u.repo.InsertAssignment(ctx, campaignID, influencerID)
}

// RemoveInfluencer unlinks the pair. Removing an absent pair is an
// idempotent no-op.
func (u *CampaignUseCase) RemoveInfluencer(ctx context.Context, ownerID string, campaignID, influencerID int64) error {
	if err := u.requireOwnership(ctx, ownerID, campaignID); err != nil {
		return err
	}
	return u.repo.DeleteAssignment(ctx, campaignID, influencerID)
}

// requireOwnership hides ownership mismatches behind ErrNotFound, the
// same shape GetByID uses.
func (u *CampaignUseCase) requireOwnership(ctx context.Context, ownerID string, campaignID int64) error {
	c, err := u.repo.FindByID(ctx, ownerID, campaignID)
	if err != nil {
		return err
	}
	if c == nil {
		return port.ErrNotFound
	}
	return nil
}
