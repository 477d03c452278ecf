package port

import (
	"context"
	"time"

	"promohub/internal/core/domain"
)

// CampaignUseCase is the primary port for owner-scoped campaign
// management. Every operation takes the caller identity explicitly so the
// rules hold regardless of transport. Mock implementations are generated
// from this interface for testing.
type CampaignUseCase interface {
	// Create stores a new campaign owned by the caller. Title, budget and
	// date ordering are validated; violations yield a ValidationError.
	Create(ctx context.Context, ownerID string, in CreateCampaignInput) error
	// GetAll returns the caller's campaigns, newest created first, without
	// assignment data.
	GetAll(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	// GetByID returns a campaign with its assigned influencers. A campaign
	// owned by someone else yields ErrNotFound, identical to a missing id.
	GetByID(ctx context.Context, ownerID string, id int64) (*CampaignDetail, error)
	// Update applies only the present patch fields and re-validates the
	// merged result. Missing or not-owned ids yield ErrNotFound.
	Update(ctx context.Context, ownerID string, id int64, patch CampaignPatch) error
	// Delete removes the campaign; assignment rows cascade.
	Delete(ctx context.Context, ownerID string, id int64) error
	// AssignInfluencer links an influencer to a campaign the caller owns.
	// A duplicate pair yields ErrConflict.
	AssignInfluencer(ctx context.Context, ownerID string, campaignID, influencerID int64) error
	// RemoveInfluencer unlinks the pair; removing an absent pair is an
	// idempotent no-op.
	RemoveInfluencer(ctx context.Context, ownerID string, campaignID, influencerID int64) error
}

// CreateCampaignInput carries the fields for a new campaign. Validator
// tags express the field rules; the endDate >= startDate invariant is
// enforced here uniformly rather than left to individual clients.
type CreateCampaignInput struct {
	Title       string    `json:"title" validate:"required,max=256"`
	Description *string   `json:"description"`
	Budget      int64     `json:"budget" validate:"gt=0"`
	StartDate   time.Time `json:"startDate" validate:"required"`
	EndDate     time.Time `json:"endDate" validate:"required,gtefield=StartDate"`
}

// CampaignPatch applies partial updates. A nil field is absent and leaves
// the stored value untouched; a present field replaces it. The pointer is
// the presence marker, so an empty string is a present (and invalid)
// title rather than an omitted one.
type CampaignPatch struct {
	Title       *string    `json:"title"`
	Description *string    `json:"description"`
	Budget      *int64     `json:"budget"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

// IsZero reports whether the patch carries no fields.
func (p CampaignPatch) IsZero() bool {
	return p.Title == nil && p.Description == nil && p.Budget == nil &&
		p.StartDate == nil && p.EndDate == nil
}

// CampaignDetail is a campaign together with its assigned influencers,
// name ascending.
type CampaignDetail struct {
	Campaign    domain.Campaign
	Influencers []domain.Influencer
}

// CampaignRepository is the outbound persistence port for campaigns and
// their assignment rows. Each method is a single unit of work.
type CampaignRepository interface {
	// Insert stores the campaign and fills in the generated ID and
	// CreatedAt.
	Insert(ctx context.Context, c *domain.Campaign) error
	// ListByOwner returns the owner's campaigns, created_at descending.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error)
	// FindByID returns nil when the id does not exist or belongs to
	// another owner.
	FindByID(ctx context.Context, ownerID string, id int64) (*domain.Campaign, error)
	// ListAssigned returns the influencers assigned to a campaign, name
	// ascending.
	ListAssigned(ctx context.Context, campaignID int64) ([]domain.Influencer, error)
	// UpdatePartial applies the present patch fields and reports whether a
	// row matched.
	UpdatePartial(ctx context.Context, ownerID string, id int64, patch CampaignPatch) (bool, error)
	// Delete removes the campaign and reports whether a row matched.
	Delete(ctx context.Context, ownerID string, id int64) (bool, error)
	// InsertAssignment returns ErrConflict for a duplicate pair and
	// ErrNotFound when either side of the pair is missing.
	InsertAssignment(ctx context.Context, campaignID, influencerID int64) error
	// DeleteAssignment is a no-op when the pair does not exist.
	DeleteAssignment(ctx context.Context, campaignID, influencerID int64) error
}
