package httpadapter

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"promohub/internal/core/port"
)

// Handler is the inbound HTTP adapter. It exposes the RPC surface under
// /api/v1 with entity.method paths, mirroring the dashboard's typed
// client: queries are GET, mutations are POST with a JSON body.
type Handler struct {
	campaigns   port.CampaignUseCase
	influencers port.InfluencerUseCase
	sessions    port.SessionRepository
	logger      *slog.Logger
	router      chi.Router
}

// NewHandler creates a handler with all routes configured. Every route
// sits behind the session middleware; CORS admits the configured
// dashboard origins with credentials so the session cookie travels.
func NewHandler(campaigns port.CampaignUseCase, influencers port.InfluencerUseCase, sessions port.SessionRepository, logger *slog.Logger, origins []string) *Handler {
	h := &Handler{campaigns: campaigns, influencers: influencers, sessions: sessions, logger: logger}
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.withSession)

		r.Post("/campaign.create", h.handleCampaignCreate)
		r.Get("/campaign.getAll", h.handleCampaignGetAll)
		r.Get("/campaign.getById", h.handleCampaignGetByID)
		r.Post("/campaign.update", h.handleCampaignUpdate)
		r.Post("/campaign.delete", h.handleCampaignDelete)
		r.Post("/campaign.assignInfluencer", h.handleAssignInfluencer)
		r.Post("/campaign.removeInfluencer", h.handleRemoveInfluencer)

		r.Post("/influencer.create", h.handleInfluencerCreate)
		r.Get("/influencer.getAll", h.handleInfluencerGetAll)
		r.Post("/influencer.update", h.handleInfluencerUpdate)
		r.Post("/influencer.delete", h.handleInfluencerDelete)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
