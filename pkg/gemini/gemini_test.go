package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestConfigValidate(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		cfg := Config{}
		if err := cfg.Validate(); err == nil {
			t.Error("expected error for missing API key")
		}
	})

	t.Run("defaults filled", func(t *testing.T) {
		cfg := Config{APIKey: "test-key"}
		if err := cfg.Validate(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Model != DefaultModel {
			t.Errorf("expected default model %s, got %s", DefaultModel, cfg.Model)
		}
		if cfg.APIURL != DefaultAPIURL {
			t.Errorf("expected default URL %s, got %s", DefaultAPIURL, cfg.APIURL)
		}
		if cfg.HTTPClient == nil {
			t.Error("expected default HTTP client")
		}
	})
}

func TestGenerateContent(t *testing.T) {
	t.Run("function call response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !strings.Contains(r.URL.Path, "generateContent") {
				t.Errorf("unexpected path: %s", r.URL.Path)
			}
			var req geminiRequest
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode request: %v", err)
			}
			if len(req.Tools) != 1 || len(req.Tools[0].FunctionDeclarations) != 1 {
				t.Errorf("expected one tool declaration, got %+v", req.Tools)
			}

			json.NewEncoder(w).Encode(geminiResponse{
				Candidates: []geminiCandidate{{
					Content: geminiContent{
						Role: "model",
						Parts: []geminiPart{{
							FunctionCall: &geminiFunctionCall{
								Name: "flashcard",
								Args: map[string]interface{}{"note_id": "42"},
							},
						}},
					},
				}},
				UsageMetadata: &geminiUsageMetadata{
					PromptTokenCount:     120,
					CandidatesTokenCount: 15,
					TotalTokenCount:      135,
				},
			})
		}))
		defer server.Close()

		client, err := New(Config{APIKey: "k", APIURL: server.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "make flashcards"}}}},
			Tools:    []Tool{{Name: "flashcard", Description: "d", Parameters: map[string]interface{}{"type": "object"}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(resp.Content.Parts) != 1 || resp.Content.Parts[0].FunctionCall == nil {
			t.Fatalf("expected function call part, got %+v", resp.Content)
		}
		if resp.Content.Parts[0].FunctionCall.Name != "flashcard" {
			t.Errorf("unexpected function name: %s", resp.Content.Parts[0].FunctionCall.Name)
		}
		if resp.Usage.TotalTokens != 135 {
			t.Errorf("expected usage 135, got %d", resp.Usage.TotalTokens)
		}
	})

	t.Run("API error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error": "quota exceeded"}`))
		}))
		defer server.Close()

		client, _ := New(Config{APIKey: "k", APIURL: server.URL})
		_, err := client.GenerateContent(context.Background(), &Request{
			Messages: []Content{{Role: "user", Parts: []Part{{Text: "hi"}}}},
		})
		if err == nil {
			t.Fatal("expected error from non-200 status")
		}
		if !strings.Contains(err.Error(), "429") {
			t.Errorf("error should carry status code, got %v", err)
		}
	})
}
