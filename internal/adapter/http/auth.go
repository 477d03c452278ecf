package httpadapter

import (
	"log/slog"
	"net/http"
	"strings"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

const sessionCookie = "session_token"

// withSession resolves the caller identity once per request and injects
// it into the context. Requests without a live session never reach
// service logic. The token comes from the Authorization header or, for
// browser callers, the session cookie.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if c, err := r.Cookie(sessionCookie); err == nil {
				token = c.Value
			}
		}
		if token == "" {
			h.writeError(w, port.ErrUnauthenticated)
			return
		}
		user, err := h.sessions.FindUserByToken(r.Context(), token)
		if err != nil {
			h.logger.Error("session lookup error", slog.Any("error", err))
			h.writeError(w, err)
			return
		}
		if user == nil {
			h.writeError(w, port.ErrUnauthenticated)
			return
		}
		next.ServeHTTP(w, r.WithContext(domain.WithUser(r.Context(), *user)))
	})
}

func bearerToken(r *http.Request) string {
	if v, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer "); ok {
		return v
	}
	return ""
}

// caller returns the authenticated user or writes a 401. The middleware
// guarantees presence on the normal path; this covers direct handler use
// in tests.
func (h *Handler) caller(w http.ResponseWriter, r *http.Request) (domain.User, bool) {
	u, ok := domain.UserFrom(r.Context())
	if !ok {
		h.writeError(w, port.ErrUnauthenticated)
	}
	return u, ok
}
