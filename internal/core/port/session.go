package port

import (
	"context"

	"promohub/internal/core/domain"
)

// SessionRepository resolves session tokens issued by the auth
// collaborator. The session and user tables are externally owned; this
// port only reads them.
type SessionRepository interface {
	// FindUserByToken returns nil for an unknown or expired token.
	FindUserByToken(ctx context.Context, token string) (*domain.User, error)
}
