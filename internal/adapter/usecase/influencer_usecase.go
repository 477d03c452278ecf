package usecase

import (
	"context"
	"fmt"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
	"promohub/internal/validation"
)

// InfluencerUseCase manages the global influencer roster.
type InfluencerUseCase struct {
	repo     port.InfluencerRepository
	validate *validation.Validator
}

// NewInfluencerUseCase creates a new usecase with the provided repository.
func NewInfluencerUseCase(repo port.InfluencerRepository) *InfluencerUseCase {
	return &InfluencerUseCase{repo: repo, validate: validation.New()}
}

// Create validates the input, normalizes the engagement rate to two
// fraction digits and stores the influencer.
func (u *InfluencerUseCase) Create(ctx context.Context, in port.CreateInfluencerInput) error {
	if err := u.validate.Validate(in); err != nil {
		return err
	}
	rate, err := domain.NormalizeEngagementRate(in.EngagementRate)
	if err != nil {
		return &port.ValidationError{Field: "engagementRate", Message: err.Error()}
	}
	inf := &domain.Influencer{
		Name:           in.Name,
		FollowerCount:  in.FollowerCount,
		EngagementRate: rate,
	}
	return u.repo.Insert(ctx, inf)
}

// GetAll returns all influencers ordered by name.
func (u *InfluencerUseCase) GetAll(ctx context.Context) ([]domain.Influencer, error) {
	return u.repo.List(ctx)
}

// Update applies only the present patch fields. Present fields are
// validated individually; there are no cross-field rules here.
func (u *InfluencerUseCase) Update(ctx context.Context, id int64, patch port.InfluencerPatch) error {
	if patch.Name != nil {
		if *patch.Name == "" {
			return &port.ValidationError{Field: "name", Message: "is required"}
		}
		if len(*patch.Name) > 256 {
			return &port.ValidationError{Field: "name", Message: "must not exceed 256 characters"}
		}
	}
	if patch.FollowerCount != nil && *patch.FollowerCount <= 0 {
		return &port.ValidationError{Field: "followerCount", Message: "must be greater than 0"}
	}
	if patch.EngagementRate != nil {
		rate, err := domain.NormalizeEngagementRate(*patch.EngagementRate)
		if err != nil {
			return &port.ValidationError{Field: "engagementRate", Message: err.Error()}
		}
		patch.EngagementRate = &rate
	}
	found, err := u.repo.UpdatePartial(ctx, id, patch)
	if err != nil {
		return err
	}
	if !found {
		return port.ErrNotFound
	}
	return nil
}

// Delete removes the influencer; assignment rows cascade in the database.
func (u *InfluencerUseCase) Delete(ctx context.Context, id int64) error {
	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		return fmt.Errorf("delete influencer %d: %w", id, err)
	}
	if !found {
		return port.ErrNotFound
	}
	return nil
}
