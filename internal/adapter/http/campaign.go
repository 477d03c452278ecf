package httpadapter

import (
	"net/http"
	"strconv"
	"time"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

// Wire shapes for the campaign endpoints. Dates are RFC3339; the decimal
// engagement rate travels as text.
type campaignJSON struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	Budget      int64     `json:"budget"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

type campaignDetailJSON struct {
	campaignJSON
	Influencers []influencerJSON `json:"influencers"`
}

type campaignUpdateRequest struct {
	ID int64 `json:"id"`
	port.CampaignPatch
}

type idRequest struct {
	ID int64 `json:"id"`
}

type assignmentRequest struct {
	CampaignID   int64 `json:"campaignId"`
	InfluencerID int64 `json:"influencerId"`
}

func toCampaignJSON(c domain.Campaign) campaignJSON {
	return campaignJSON{
		ID:          c.ID,
		Title:       c.Title,
		Description: c.Description,
		Budget:      c.Budget,
		StartDate:   c.StartDate,
		EndDate:     c.EndDate,
		CreatedAt:   c.CreatedAt,
	}
}

func (h *Handler) handleCampaignCreate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	var in port.CreateCampaignInput
	if !h.decodeBody(w, r, &in) {
		return
	}
	if err := h.campaigns.Create(r.Context(), user.ID, in); err != nil {
		h.fail(w, "campaign.create", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCampaignGetAll(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	items, err := h.campaigns.GetAll(r.Context(), user.ID)
	if err != nil {
		h.fail(w, "campaign.getAll", err)
		return
	}
	out := make([]campaignJSON, 0, len(items))
	for _, c := range items {
		out = append(out, toCampaignJSON(c))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCampaignGetByID(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: "invalid id", Field: "id"})
		return
	}
	detail, err := h.campaigns.GetByID(r.Context(), user.ID, id)
	if err != nil {
		h.fail(w, "campaign.getById", err)
		return
	}
	out := campaignDetailJSON{
		campaignJSON: toCampaignJSON(detail.Campaign),
		Influencers:  make([]influencerJSON, 0, len(detail.Influencers)),
	}
	for _, inf := range detail.Influencers {
		out.Influencers = append(out.Influencers, toInfluencerJSON(inf))
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleCampaignUpdate(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req campaignUpdateRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.campaigns.Update(r.Context(), user.ID, req.ID, req.CampaignPatch); err != nil {
		h.fail(w, "campaign.update", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleCampaignDelete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req idRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.campaigns.Delete(r.Context(), user.ID, req.ID); err != nil {
		h.fail(w, "campaign.delete", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleAssignInfluencer(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req assignmentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.campaigns.AssignInfluencer(r.Context(), user.ID, req.CampaignID, req.InfluencerID); err != nil {
		h.fail(w, "campaign.assignInfluencer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handleRemoveInfluencer(w http.ResponseWriter, r *http.Request) {
	user, ok := h.caller(w, r)
	if !ok {
		return
	}
	var req assignmentRequest
	if !h.decodeBody(w, r, &req) {
		return
	}
	if err := h.campaigns.RemoveInfluencer(r.Context(), user.ID, req.CampaignID, req.InfluencerID); err != nil {
		h.fail(w, "campaign.removeInfluencer", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
