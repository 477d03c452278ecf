package port

import (
	"context"

	"promohub/internal/core/domain"
)

// InfluencerUseCase manages the global influencer roster. Influencers are
// visible to and editable by every authenticated user; there is no owner
// scoping.
type InfluencerUseCase interface {
	Create(ctx context.Context, in CreateInfluencerInput) error
	// GetAll returns all influencers ordered by name ascending.
	GetAll(ctx context.Context) ([]domain.Influencer, error)
	// Update applies only the present patch fields. A missing id yields
	// ErrNotFound.
	Update(ctx context.Context, id int64, patch InfluencerPatch) error
	// Delete removes the influencer; its assignment rows cascade.
	Delete(ctx context.Context, id int64) error
}

// CreateInfluencerInput carries the fields for a new influencer.
// EngagementRate is decimal text and is normalized to two fraction digits
// before storage.
type CreateInfluencerInput struct {
	Name           string `json:"name" validate:"required,max=256"`
	FollowerCount  int64  `json:"followerCount" validate:"gt=0"`
	EngagementRate string `json:"engagementRate" validate:"required"`
}

// InfluencerPatch applies partial updates with the same pointer presence
// semantics as CampaignPatch.
type InfluencerPatch struct {
	Name           *string `json:"name"`
	FollowerCount  *int64  `json:"followerCount"`
	EngagementRate *string `json:"engagementRate"`
}

// IsZero reports whether the patch carries no fields.
func (p InfluencerPatch) IsZero() bool {
	return p.Name == nil && p.FollowerCount == nil && p.EngagementRate == nil
}

// InfluencerRepository is the outbound persistence port for influencers.
type InfluencerRepository interface {
	// Insert stores the influencer and fills in the generated ID.
	Insert(ctx context.Context, inf *domain.Influencer) error
	// List returns all influencers, name ascending.
	List(ctx context.Context) ([]domain.Influencer, error)
	// UpdatePartial applies the present patch fields and reports whether a
	// row matched.
	UpdatePartial(ctx context.Context, id int64, patch InfluencerPatch) (bool, error)
	// Delete reports whether a row matched; assignment rows cascade.
	Delete(ctx context.Context, id int64) (bool, error)
}
