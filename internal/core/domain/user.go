package domain

import "context"

// User is the caller identity issued by the auth collaborator. This core
// never creates or mutates users; it only resolves them from sessions.
type User struct {
	ID    string
	Name  string
	Email string
}

type userKey struct{}

// WithUser attaches the authenticated caller to the request context. The
// identity is resolved once per request by the session middleware; there
// is no ambient global session state.
func WithUser(ctx context.Context, u User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFrom returns the authenticated caller, if any.
func UserFrom(ctx context.Context) (User, bool) {
	u, ok := ctx.Value(userKey{}).(User)
	return u, ok
}
