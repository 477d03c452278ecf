package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

// InfluencerRepository implements port.InfluencerRepository using pgxpool.
// The engagement_rate column is numeric(5,2); it is read back as text so
// the decimal never passes through a float.
type InfluencerRepository struct {
	pool *pgxpool.Pool
}

// NewInfluencerRepository returns a new repository instance.
func NewInfluencerRepository(pool *pgxpool.Pool) *InfluencerRepository {
	return &InfluencerRepository{pool: pool}
}

// Insert stores a new influencer and fills in the generated id.
func (r *InfluencerRepository) Insert(ctx context.Context, inf *domain.Influencer) error {
	return r.pool.QueryRow(ctx, `INSERT INTO influencer (name, follower_count, engagement_rate)
VALUES ($1,$2,$3::numeric) RETURNING id`,
		inf.Name, inf.FollowerCount, inf.EngagementRate).Scan(&inf.ID)
}

// List returns all influencers ordered by name ascending.
func (r *InfluencerRepository) List(ctx context.Context) ([]domain.Influencer, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, follower_count, engagement_rate::text
FROM influencer ORDER BY name ASC, id ASC`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanInfluencer)
}

// UpdatePartial applies the present patch fields and reports whether a
// row matched.
func (r *InfluencerRepository) UpdatePartial(ctx context.Context, id int64, patch port.InfluencerPatch) (bool, error) {
	sets := make([]string, 0, 3)
	args := make([]any, 0, 4)
	add := func(col string, v any) {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(args)))
	}
	if patch.Name != nil {
		add("name", *patch.Name)
	}
	if patch.FollowerCount != nil {
		add("follower_count", *patch.FollowerCount)
	}
	if patch.EngagementRate != nil {
		add("engagement_rate", *patch.EngagementRate)
	}
	if len(sets) == 0 {
		var one int
		err := r.pool.QueryRow(ctx, `SELECT 1 FROM influencer WHERE id = $1`, id).Scan(&one)
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return err == nil, err
	}
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE influencer SET %s WHERE id = $%d`, strings.Join(sets, ", "), len(args))
	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes the influencer; its assignment rows cascade.
func (r *InfluencerRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM influencer WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func scanInfluencer(row pgx.CollectableRow) (domain.Influencer, error) {
	var inf domain.Influencer
	err := row.Scan(&inf.ID, &inf.Name, &inf.FollowerCount, &inf.EngagementRate)
	return inf, err
}
