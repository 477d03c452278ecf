package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"promohub/internal/core/port"
)

func TestClientSendsBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte("[]"))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if _, err := c.Campaigns(context.Background()); err != nil {
		t.Fatalf("Campaigns: %v", err)
	}
	if gotAuth != "Bearer tok" {
		t.Fatalf("Authorization = %q, want Bearer tok", gotAuth)
	}
}

func TestClientDecodesCampaigns(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/campaign.getAll" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":1,"title":"Spring Launch","budget":5000,"startDate":"2026-03-01T00:00:00Z","endDate":"2026-04-01T00:00:00Z","createdAt":"2026-02-01T00:00:00Z"}]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	items, err := c.Campaigns(context.Background())
	if err != nil {
		t.Fatalf("Campaigns: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Spring Launch" || items[0].Budget != 5000 {
		t.Fatalf("unexpected items: %+v", items)
	}
}

func TestClientErrorTaxonomy(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		check  func(t *testing.T, err error)
	}{
		{
			"validation", http.StatusBadRequest, `{"error":"is required","field":"title"}`,
			func(t *testing.T, err error) {
				var verr *port.ValidationError
				if !errors.As(err, &verr) {
					t.Fatalf("want ValidationError, got %v", err)
				}
				if verr.Field != "title" || verr.Message != "is required" {
					t.Fatalf("unexpected ValidationError: %+v", verr)
				}
			},
		},
		{
			"unauthenticated", http.StatusUnauthorized, `{"error":"unauthenticated"}`,
			func(t *testing.T, err error) {
				if !errors.Is(err, port.ErrUnauthenticated) {
					t.Fatalf("want ErrUnauthenticated, got %v", err)
				}
			},
		},
		{
			"not found", http.StatusNotFound, `{"error":"not found"}`,
			func(t *testing.T, err error) {
				if !errors.Is(err, port.ErrNotFound) {
					t.Fatalf("want ErrNotFound, got %v", err)
				}
			},
		},
		{
			"conflict", http.StatusConflict, `{"error":"already assigned"}`,
			func(t *testing.T, err error) {
				if !errors.Is(err, port.ErrConflict) {
					t.Fatalf("want ErrConflict, got %v", err)
				}
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "tok")
			tc.check(t, c.AssignInfluencer(context.Background(), 1, 2))
		})
	}
}

func TestClientNoContentMutation(t *testing.T) {
	var gotBody map[string]int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "tok")
	if err := c.DeleteCampaign(context.Background(), 7); err != nil {
		t.Fatalf("DeleteCampaign: %v", err)
	}
	if gotBody["id"] != 7 {
		t.Fatalf("body = %v, want id 7", gotBody)
	}
}
