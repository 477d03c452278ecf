// Package dashboard holds the client core of the campaign dashboard: a
// typed RPC client over the /api/v1 surface and the board state that
// reconciles local edits with server collections.
package dashboard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"promohub/internal/core/domain"
	"promohub/internal/core/port"
)

// API is the slice of the RPC surface the boards consume. *Client
// implements it; tests substitute a fake.
type API interface {
	Campaigns(ctx context.Context) ([]domain.Campaign, error)
	Campaign(ctx context.Context, id int64) (*port.CampaignDetail, error)
	CreateCampaign(ctx context.Context, in port.CreateCampaignInput) error
	UpdateCampaign(ctx context.Context, id int64, patch port.CampaignPatch) error
	DeleteCampaign(ctx context.Context, id int64) error
	AssignInfluencer(ctx context.Context, campaignID, influencerID int64) error
	RemoveInfluencer(ctx context.Context, campaignID, influencerID int64) error

	Influencers(ctx context.Context) ([]domain.Influencer, error)
	CreateInfluencer(ctx context.Context, in port.CreateInfluencerInput) error
	UpdateInfluencer(ctx context.Context, id int64, patch port.InfluencerPatch) error
	DeleteInfluencer(ctx context.Context, id int64) error
}

// Client is a typed RPC client for the dashboard API. Errors decode back
// into the port taxonomy, so callers use errors.Is/As exactly as they
// would against the use cases.
type Client struct {
	base  string
	token string
	http  *http.Client
}

// NewClient creates a client for the API rooted at base (e.g.
// "http://localhost:8080"). The token authenticates every request as a
// bearer credential.
func NewClient(base, token string) *Client {
	return &Client{
		base:  base,
		token: token,
		http:  &http.Client{Timeout: 15 * time.Second},
	}
}

// Wire shapes mirror the server's JSON. The decimal engagement rate stays
// text end to end.
type campaignWire struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description *string   `json:"description"`
	Budget      int64     `json:"budget"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

type influencerWire struct {
	ID             int64  `json:"id"`
	Name           string `json:"name"`
	FollowerCount  int64  `json:"followerCount"`
	EngagementRate string `json:"engagementRate"`
}

type campaignDetailWire struct {
	campaignWire
	Influencers []influencerWire `json:"influencers"`
}

type errorWire struct {
	Error string `json:"error"`
	Field string `json:"field"`
}

func (w campaignWire) domain() domain.Campaign {
	return domain.Campaign{
		ID:          w.ID,
		Title:       w.Title,
		Description: w.Description,
		Budget:      w.Budget,
		StartDate:   w.StartDate,
		EndDate:     w.EndDate,
		CreatedAt:   w.CreatedAt,
	}
}

func (w influencerWire) domain() domain.Influencer {
	return domain.Influencer{
		ID:             w.ID,
		Name:           w.Name,
		FollowerCount:  w.FollowerCount,
		EngagementRate: w.EngagementRate,
	}
}

func (c *Client) Campaigns(ctx context.Context) ([]domain.Campaign, error) {
	var wire []campaignWire
	if err := c.get(ctx, "/api/v1/campaign.getAll", nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Campaign, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.domain())
	}
	return out, nil
}

func (c *Client) Campaign(ctx context.Context, id int64) (*port.CampaignDetail, error) {
	var wire campaignDetailWire
	q := url.Values{"id": []string{strconv.FormatInt(id, 10)}}
	if err := c.get(ctx, "/api/v1/campaign.getById", q, &wire); err != nil {
		return nil, err
	}
	detail := &port.CampaignDetail{
		Campaign:    wire.campaignWire.domain(),
		Influencers: make([]domain.Influencer, 0, len(wire.Influencers)),
	}
	for _, w := range wire.Influencers {
		detail.Influencers = append(detail.Influencers, w.domain())
	}
	return detail, nil
}

func (c *Client) CreateCampaign(ctx context.Context, in port.CreateCampaignInput) error {
	return c.post(ctx, "/api/v1/campaign.create", in)
}

func (c *Client) UpdateCampaign(ctx context.Context, id int64, patch port.CampaignPatch) error {
	return c.post(ctx, "/api/v1/campaign.update", struct {
		ID int64 `json:"id"`
		port.CampaignPatch
	}{ID: id, CampaignPatch: patch})
}

func (c *Client) DeleteCampaign(ctx context.Context, id int64) error {
	return c.post(ctx, "/api/v1/campaign.delete", map[string]int64{"id": id})
}

func (c *Client) AssignInfluencer(ctx context.Context, campaignID, influencerID int64) error {
	return c.post(ctx, "/api/v1/campaign.assignInfluencer",
		map[string]int64{"campaignId": campaignID, "influencerId": influencerID})
}

func (c *Client) RemoveInfluencer(ctx context.Context, campaignID, influencerID int64) error {
	return c.post(ctx, "/api/v1/campaign.removeInfluencer",
		map[string]int64{"campaignId": campaignID, "influencerId": influencerID})
}

func (c *Client) Influencers(ctx context.Context) ([]domain.Influencer, error) {
	var wire []influencerWire
	if err := c.get(ctx, "/api/v1/influencer.getAll", nil, &wire); err != nil {
		return nil, err
	}
	out := make([]domain.Influencer, 0, len(wire))
	for _, w := range wire {
		out = append(out, w.domain())
	}
	return out, nil
}

func (c *Client) CreateInfluencer(ctx context.Context, in port.CreateInfluencerInput) error {
	return c.post(ctx, "/api/v1/influencer.create", in)
}

func (c *Client) UpdateInfluencer(ctx context.Context, id int64, patch port.InfluencerPatch) error {
	return c.post(ctx, "/api/v1/influencer.update", struct {
		ID int64 `json:"id"`
		port.InfluencerPatch
	}{ID: id, InfluencerPatch: patch})
}

func (c *Client) DeleteInfluencer(ctx context.Context, id int64) error {
	return c.post(ctx, "/api/v1/influencer.delete", map[string]int64{"id": id})
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	u := c.base + path
	if len(q) > 0 {
		u += "?" + q.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, body any) error {
	buf, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+path, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, nil)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.token)
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}
	if out == nil || resp.StatusCode == http.StatusNoContent {
		io.Copy(io.Discard, resp.Body)
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

// decodeError maps the server's error envelope back into the port
// taxonomy.
func decodeError(resp *http.Response) error {
	var body errorWire
	_ = json.NewDecoder(resp.Body).Decode(&body)
	switch resp.StatusCode {
	case http.StatusBadRequest:
		msg := body.Error
		if msg == "" {
			msg = "is invalid"
		}
		return &port.ValidationError{Field: body.Field, Message: msg}
	case http.StatusUnauthorized:
		return port.ErrUnauthenticated
	case http.StatusNotFound:
		return port.ErrNotFound
	case http.StatusConflict:
		return port.ErrConflict
	default:
		return fmt.Errorf("server error: status %d", resp.StatusCode)
	}
}
