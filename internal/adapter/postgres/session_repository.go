package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"promohub/internal/core/domain"
)

// SessionRepository reads the auth collaborator's session and user tables
// to resolve a caller identity. It never writes them.
type SessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository returns a new repository instance.
func NewSessionRepository(pool *pgxpool.Pool) *SessionRepository {
	return &SessionRepository{pool: pool}
}

// FindUserByToken resolves a session token to its user. Expiry is checked
// in SQL so clock handling stays with the database. Unknown and expired
// tokens both return nil.
func (r *SessionRepository) FindUserByToken(ctx context.Context, token string) (*domain.User, error) {
	var u domain.User
	err := r.pool.QueryRow(ctx, `SELECT u.id, COALESCE(u.name, ''), u.email
FROM "session" s
JOIN "user" u ON u.id = s."userId"
WHERE s."sessionToken" = $1 AND s.expires > now()`, token).
		Scan(&u.ID, &u.Name, &u.Email)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}
