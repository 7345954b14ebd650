package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"study-copilot/config"
	"study-copilot/internal/capability"
	"study-copilot/internal/intent"
	"study-copilot/internal/metering"
	"study-copilot/internal/snapshot"
	"study-copilot/pkg/llmprovider"
	"study-copilot/pkg/log"
)

type stubProfileSource struct{}

func (stubProfileSource) GetProfile(ctx context.Context, userID string) (snapshot.Profile, error) {
	return snapshot.Profile{Plan: "free", RemainingTokens: 9000}, nil
}

type stubOracle struct {
	result intent.OracleResult
}

func (s stubOracle) Select(ctx context.Context, prompt string, tools []llmprovider.Tool) (intent.OracleResult, error) {
	return s.result, nil
}

func newTestServer(t *testing.T, oracle intent.Oracle) *HTTPServer {
	t.Helper()

	registry, err := capability.DefaultRegistry()
	if err != nil {
		t.Fatal(err)
	}
	ledger := metering.NewLedger(metering.LedgerConfig{DefaultLimit: 100000})
	recorder := metering.NewRecorder(log.NewNop(), ledger, 8)
	t.Cleanup(recorder.Close)

	srv, err := New(log.NewNop(), Config{
		Port:        8080,
		Mode:        gin.TestMode,
		Environment: "development",
		Registry:    registry,
		Builder:     snapshot.NewBuilder(log.NewNop(), stubProfileSource{}, snapshot.BuilderConfig{}),
		Budget:      ledger,
		Oracle:      oracle,
		Recorder:    recorder,
		Usage:       config.UsageConfig{EstimateTokens: 1500},
	})
	if err != nil {
		t.Fatal(err)
	}
	return srv
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestServer(t, stubOracle{result: intent.OracleResult{Kind: intent.OracleNone}})

	for _, path := range []string{"/health", "/ready", "/live"} {
		w := httptest.NewRecorder()
		srv.gin.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		if w.Code != http.StatusOK {
			t.Errorf("GET %s = %d, want 200", path, w.Code)
		}
		if !strings.Contains(w.Body.String(), ServiceName) {
			t.Errorf("GET %s body missing service name: %s", path, w.Body.String())
		}
	}
}

func TestClassifyEndToEnd(t *testing.T) {
	srv := newTestServer(t, stubOracle{result: intent.OracleResult{
		Kind: intent.OracleSelection,
		Selection: &intent.Selection{
			CapabilityID: "flashcard",
			Args:         map[string]interface{}{"count": float64(10)},
		},
		Cost: 120,
	}})

	body := `{
		"message": "turn @Biology into flashcards",
		"mentions": [{"id": "42", "display_name": "Biology"}]
	}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intent/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-User-ID", "u1")
	srv.gin.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data["intent"] != "flashcard" {
		t.Errorf("intent = %v", resp.Data["intent"])
	}
	if resp.Data["note_id"] != "42" {
		t.Errorf("note_id = %v, want 42", resp.Data["note_id"])
	}
	if resp.Data["count"] != "10" {
		t.Errorf("count = %v, want 10", resp.Data["count"])
	}
}

func TestRun_FlushesRecorderOnListenFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	defer ln.Close()
	port := ln.Addr().(*net.TCPAddr).Port

	registry, err := capability.DefaultRegistry()
	if err != nil {
		t.Fatal(err)
	}
	ledger := metering.NewLedger(metering.LedgerConfig{DefaultLimit: 100000})
	recorder := metering.NewRecorder(log.NewNop(), ledger, 8)

	srv, err := New(log.NewNop(), Config{
		Port:        port,
		Mode:        gin.TestMode,
		Environment: "development",
		Registry:    registry,
		Builder:     snapshot.NewBuilder(log.NewNop(), stubProfileSource{}, snapshot.BuilderConfig{}),
		Budget:      ledger,
		Oracle:      stubOracle{result: intent.OracleResult{Kind: intent.OracleNone}},
		Recorder:    recorder,
		Usage:       config.UsageConfig{EstimateTokens: 1500},
	})
	if err != nil {
		t.Fatal(err)
	}

	recorder.Record(context.Background(), "u1", 500)

	if err := srv.Run(context.Background()); err == nil {
		t.Fatal("expected listen error on occupied port")
	}

	// Run must have flushed the recorder on its way out.
	decision, err := ledger.CheckBudget(context.Background(), "u1", 0)
	if err != nil {
		t.Fatal(err)
	}
	if decision.Remaining != 99500 {
		t.Errorf("remaining = %d, want 99500 (queued cost flushed)", decision.Remaining)
	}
}

func TestNew_Validation(t *testing.T) {
	_, err := New(log.NewNop(), Config{
		Port: 8080,
		Mode: gin.TestMode,
	})
	if err == nil {
		t.Fatal("expected validation error for missing domain dependencies")
	}
}
