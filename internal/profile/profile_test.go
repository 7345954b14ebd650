package profile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_GetProfile(t *testing.T) {
	t.Run("successful fetch", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path != "/v1/users/u1/profile" {
				t.Errorf("path = %q", r.URL.Path)
			}
			if got := r.Header.Get("Authorization"); got != "Bearer secret" {
				t.Errorf("Authorization = %q", got)
			}
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"plan":"pro","remaining_tokens":42000}`))
		}))
		defer server.Close()

		client, err := NewClient(Config{URL: server.URL, AccessToken: "secret"})
		if err != nil {
			t.Fatal(err)
		}

		p, err := client.GetProfile(context.Background(), "u1")
		if err != nil {
			t.Fatalf("GetProfile: %v", err)
		}
		if p.Plan != "pro" || p.RemainingTokens != 42000 {
			t.Errorf("profile = %+v", p)
		}
	})

	t.Run("non-200 status", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "not found", http.StatusNotFound)
		}))
		defer server.Close()

		client, err := NewClient(Config{URL: server.URL})
		if err != nil {
			t.Fatal(err)
		}
		if _, err := client.GetProfile(context.Background(), "missing"); err == nil {
			t.Error("expected error for 404 response")
		}
	})

	t.Run("requires URL", func(t *testing.T) {
		if _, err := NewClient(Config{}); err == nil {
			t.Error("expected config validation error")
		}
	})
}

func TestStatic(t *testing.T) {
	s := Static{}
	s.Profile.Plan = "free"
	p, err := s.GetProfile(context.Background(), "anyone")
	if err != nil {
		t.Fatal(err)
	}
	if p.Plan != "free" {
		t.Errorf("Plan = %q", p.Plan)
	}
}
