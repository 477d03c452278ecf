package httpadapter

import (
	"net/http"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

type influencerJSON struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	FollowerCount  int64  `json:"followerCount"`
	EngagementRate string `json:"engagementRate"`
}

type influencerUpdateRequest struct {
	ID int64 `json:"id"`
	port.InfluencerPatch
}

func toInfluencerJSON(inf domain.Influencer) influencerJSON {
	return influencerJSON{
		ID:             inf.ID,
		Name:           inf.Name,
		FollowerCount:  inf.FollowerCount,
		EngagementRate: inf.EngagementRate,
	}
}

func (h *Handler) handleInfluencerCreate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.caller(w, r); !ok {
		return
	}
	var in port.CreateInfluencerInput
	if !h.decodeBody(w, r, &in) {
		return
	}
	if err := h.influencers.Create(r.Context(), in); err != nil {
		h.fail(w, "influencer.create", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleInfluencerGetAll(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.caller(w, r); !ok {
		return
	}
	items, err := h.influencers.GetAll(r.Context())
	if err != nil {
		h.fail(w, "influencer.getAll", err)
		return
	}
	out := make([]influencerJSON, 0, len(items))
	for _, inf := range items {
		out = append(out, toInfluencerJSON(inf))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleInfluencerUpdate(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.caller(w, r); !ok {
		return
	}
	var req influencerUpdateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.influencers.Update(r.Context(), req.ID, req.InfluencerPatch); err != nil {
		h.fail(w, "influencer.update", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleInfluencerDelete(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.caller(w, r); !ok {
		return
	}
	var req idRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.influencers.Delete(r.Context(), req.ID); err != nil {
		h.fail(w, "influencer.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
