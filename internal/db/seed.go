package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DemoSessionToken authenticates the primary demo user. Local clients can
// send it as a bearer token without going through a browser sign-in.
const DemoSessionToken = "demo-session-token"

// Seed inserts demo dashboard data: two users with sessions, a handful of
// campaigns and influencers and a few assignments. Inserts use fixed ids
// with ON CONFLICT DO NOTHING so reseeding is harmless.
func Seed(ctx context.Context, pool *pgxpool.Pool) error {
	users := []struct {
		id, name, email, token string
	}{
		{"demo-user", "Demo User", "demo@example.com", DemoSessionToken},
		{"demo-user-2", "Second User", "second@example.com", uuid.NewString()},
	}
	for _, u := range users {
		_, err := pool.Exec(ctx, `INSERT INTO "user" (id, name, email) VALUES ($1,$2,$3) ON CONFLICT DO NOTHING`,
			u.id, u.name, u.email)
		if err != nil {
			return err
		}
		_, err = pool.Exec(ctx, `INSERT INTO "session" ("sessionToken", "userId", expires)
VALUES ($1,$2,$3) ON CONFLICT ("sessionToken") DO UPDATE SET expires = excluded.expires`,
			u.token, u.id, time.Now().AddDate(1, 0, 0))
		if err != nil {
			return err
		}
	}

	campaigns := []struct {
		id     int
		title  string
		budget int64
		owner  string
	}{
		{1, "Spring Launch", 10000, "demo-user"},
		{2, "Summer Push", 25000, "demo-user"},
		{3, "Rival Promo", 5000, "demo-user-2"},
	}
	for _, c := range campaigns {
		start := time.Now().AddDate(0, 0, -7)
		end := time.Now().AddDate(0, 1, 0)
		_, err := pool.Exec(ctx, `INSERT INTO campaign (id, title, description, budget, start_date, end_date, user_id)
VALUES ($1,$2,$3,$4,$5,$6,$7) ON CONFLICT DO NOTHING`,
			c.id, c.title, "Seeded demo campaign", c.budget, start, end, c.owner)
		if err != nil {
			return err
		}
	}

	influencers := []struct {
		id        int
		name      string
		followers int64
		rate      string
	}{
		{1, "Ada", 10000, "3.50"},
		{2, "Grace", 52000, "1.25"},
		{3, "Linus", 180000, "0.80"},
		{4, "Margaret", 7400, "6.10"},
	}
	for _, inf := range influencers {
		_, err := pool.Exec(ctx, `INSERT INTO influencer (id, name, follower_count, engagement_rate)
VALUES ($1,$2,$3,$4::numeric) ON CONFLICT DO NOTHING`,
			inf.id, inf.name, inf.followers, inf.rate)
		if err != nil {
			return err
		}
	}

	assignments := [][2]int{{1, 1}, {1, 2}, {2, 3}}
	for _, a := range assignments {
		_, err := pool.Exec(ctx, `INSERT INTO campaigns_to_influencers (campaign_id, influencer_id)
VALUES ($1,$2) ON CONFLICT DO NOTHING`, a[0], a[1])
		if err != nil {
			return err
		}
	}

	// keep the serial sequences ahead of the fixed ids
	if _, err := pool.Exec(ctx, `SELECT setval(pg_get_serial_sequence('campaign','id'), (SELECT COALESCE(MAX(id),1) FROM campaign))`); err != nil {
		return err
	}
	_, err := pool.Exec(ctx, `SELECT setval(pg_get_serial_sequence('influencer','id'), (SELECT COALESCE(MAX(id),1) FROM influencer))`)
	return err
}
