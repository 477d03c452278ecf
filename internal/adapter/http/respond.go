package httpadapter

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"promohub/internal/core/port"
)

// errorBody is the JSON error envelope shared with the dashboard client.
// Field is set for validation failures only.
type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps the service taxonomy onto HTTP statuses. Anything
// outside the taxonomy surfaces as a generic 500 so internals never leak.
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	var verr *port.ValidationError
	switch {
	case errors.As(err, &verr):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, port.ErrUnauthenticated):
		h.writeJSON(w, http.StatusUnauthorized, errorBody{Error: "unauthenticated"})
	case errors.Is(err, port.ErrNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "not found"})
	case errors.Is(err, port.ErrConflict):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: "already assigned"})
	default:
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}

// fail logs errors outside the client-facing taxonomy before writing the
// response.
func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	var verr *port.ValidationError
	if !errors.As(err, &verr) &&
		!errors.Is(err, port.ErrNotFound) &&
		!errors.Is(err, port.ErrConflict) &&
		!errors.Is(err, port.ErrUnauthenticated) {
		h.logger.Error(op+" error", slog.Any("error", err))
	}
	h.writeError(w, err)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid JSON"})
		return false
	}
	return true
}
