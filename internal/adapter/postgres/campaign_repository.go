package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

// Postgres error codes mapped onto the service taxonomy.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// CampaignRepository implements port.CampaignRepository using pgxpool.
type CampaignRepository struct {
	pool *pgxpool.Pool
}

// NewCampaignRepository returns a new repository instance.
func NewCampaignRepository(pool *pgxpool.Pool) *CampaignRepository {
	return &CampaignRepository{pool: pool}
}

// Insert stores a new campaign and fills in the generated id and
// created_at.
func (r *CampaignRepository) Insert(ctx context.Context, c *domain.Campaign) error {
	return r.pool.QueryRow(ctx, `INSERT INTO campaign (title, description, budget, start_date, end_date, user_id)
VALUES ($1,$2,$3,$4,$5,$6) RETURNING id, created_at`,
		c.Title, c.Description, c.Budget, c.StartDate, c.EndDate, c.OwnerID).
		Scan(&c.ID, &c.CreatedAt)
}

// ListByOwner returns the owner's campaigns, newest created first. The id
// tiebreak keeps the order stable for rows created in the same instant.
func (r *CampaignRepository) ListByOwner(ctx context.Context, ownerID string) ([]domain.Campaign, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, title, description, budget, start_date, end_date, user_id, created_at
FROM campaign WHERE user_id = $1 ORDER BY created_at DESC, id DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCampaign)
}

// FindByID returns nil when the id does not exist or is owned by someone
// else; the two cases are indistinguishable on purpose.
func (r *CampaignRepository) FindByID(ctx context.Context, ownerID string, id int64) (*domain.Campaign, error) {
	var c domain.Campaign
	err := r.pool.QueryRow(ctx, `SELECT id, title, description, budget, start_date, end_date, user_id, created_at
FROM campaign WHERE id = $1 AND user_id = $2`, id, ownerID).
		Scan(&c.ID, &c.Title, &c.Description, &c.Budget, &c.StartDate, &c.EndDate, &c.OwnerID, &c.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListAssigned returns the influencers assigned to a campaign, name
// ascending.
func (r *CampaignRepository) ListAssigned(ctx context.Context, campaignID int64) ([]domain.Influencer, error) {
	rows, err := r.pool.Query(ctx, `SELECT i.id, i.name, i.follower_count, i.engagement_rate::text
FROM influencer i
JOIN campaigns_to_influencers ci ON ci.influencer_id = i.id
WHERE ci.campaign_id = $1 ORDER BY i.name ASC, i.id ASC`, campaignID)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanInfluencer)
}

// UpdatePartial applies the present patch fields in one statement and
// reports whether a row matched. An empty patch degenerates to an
// existence check so callers still learn about missing rows.
func (r *CampaignRepository) UpdatePartial(ctx context.Context, ownerID string, id int64, patch port.CampaignPatch) (bool, error) {
	sets := make([]string, 0, 5)
	args := make([]any, 0, 7)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Budget != nil {
		add("budget", *patch.Budget)
	}
	if patch.StartDate != nil {
		add("start_date", *patch.StartDate)
	}
	if patch.EndDate != nil {
		add("end_date", *patch.EndDate)
	}
	if len(sets) == 0 {
		var one int
		err := r.pool.QueryRow(ctx, `SELECT 1 FROM campaign WHERE id = $1 AND user_id = $2`, id, ownerID).Scan(&one)
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return err == nil, err
	}
	args = append(args, id, ownerID)
	query := fmt.Sprintf(`UPDATE campaign SET %s WHERE id = $%d AND user_id = $%d`,
		strings.Join(sets, ", "), len(args)-1, len(args))
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the campaign; assignment rows cascade via the junction
// foreign key.
func (r *CampaignRepository) Delete(ctx context.Context, ownerID string, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM campaign WHERE id = $1 AND user_id = $2`, id, ownerID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// InsertAssignment links an influencer to a campaign. The junction's
// composite primary key rejects duplicates; its foreign keys reject
// missing sides.
func (r *CampaignRepository) InsertAssignment(ctx context.Context, campaignID, influencerID int64) error {
	_, err := r.pool.Exec(ctx, `INSERT INTO campaigns_to_influencers (campaign_id, influencer_id) VALUES ($1,$2)`,
		campaignID, influencerID)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return port.ErrConflict
		case codeForeignKeyViolation:
			return port.ErrNotFound
		}
	}
	return err
}

// DeleteAssignment removes the pair; deleting an absent pair affects zero
// rows and is not an error.
func (r *CampaignRepository) DeleteAssignment(ctx context.Context, campaignID, influencerID int64) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM campaigns_to_influencers WHERE campaign_id = $1 AND influencer_id = $2`,
		campaignID, influencerID)
	return err
}

func scanCampaign(row pgx.CollectableRow) (domain.Campaign, error) {
	var c domain.Campaign
	err := row.Scan(&c.ID, &c.Title, &c.Description, &c.Budget, &c.StartDate, &c.EndDate, &c.OwnerID, &c.CreatedAt)
	return c, err
}
