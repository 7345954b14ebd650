package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"

	"study-copilot/config"
	"study-copilot/internal/intent"
	"study-copilot/internal/middleware"
	"study-copilot/internal/model"
	"study-copilot/pkg/log"
)

type stubUseCase struct {
	result intent.Result
	err    error
	gotSC  model.Scope
	input  intent.ClassifyInput
}

func (s *stubUseCase) Classify(ctx context.Context, sc model.Scope, input intent.ClassifyInput) (intent.Result, error) {
	s.gotSC = sc
	s.input = input
	if s.err != nil {
		return intent.Result{}, s.err
	}
	return s.result, nil
}

func newTestRouter(uc intent.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), config.RateLimitConfig{})
	RegisterRoutes(r.Group("/api/v1"), New(log.NewNop(), uc), mw)
	return r
}

func postClassify(r *gin.Engine, userID, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/intent/classify", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}
	r.ServeHTTP(w, req)
	return w
}

func TestClassifyHandler(t *testing.T) {
	t.Run("flattens parameters into the response", func(t *testing.T) {
		uc := &stubUseCase{result: intent.Result{
			Intent:     "flashcard",
			Confidence: 90,
			Reasoning:  "model selected flashcard",
			Parameters: map[string]string{"note_id": "42", "count": "20"},
		}}
		r := newTestRouter(uc)

		w := postClassify(r, "u1", `{
			"message": "turn @ref into flashcards",
			"mentions": [{"id": "42", "display_name": "Chapter 3"}],
			"page_context": {"current_view": "note", "view_item_id": "n7"}
		}`)

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
			t.Errorf("note_id = %v, want flattened 42", resp.Data["note_id"])
		}
		if resp.Data["confidence"] != float64(90) {
			t.Errorf("confidence = %v", resp.Data["confidence"])
		}

		if uc.gotSC.UserID != "u1" {
			t.Errorf("scope user = %q", uc.gotSC.UserID)
		}
		if len(uc.input.Mentions) != 1 || uc.input.Mentions[0].ID != "42" {
			t.Errorf("mentions = %+v", uc.input.Mentions)
		}
		if uc.input.Page.CurrentView != "note" {
			t.Errorf("page = %+v", uc.input.Page)
		}
	})

	t.Run("empty message is a valid request", func(t *testing.T) {
		uc := &stubUseCase{result: intent.Result{Intent: intent.IntentNone}}
		r := newTestRouter(uc)

		w := postClassify(r, "u1", `{"message": ""}`)
		if w.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200 for empty message", w.Code)
		}
	})

	t.Run("missing user id is rejected", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newTestRouter(uc)

		w := postClassify(r, "", `{"message": "hi"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})

	t.Run("budget exhaustion maps to 402", func(t *testing.T) {
		uc := &stubUseCase{err: intent.ErrBudgetExceeded}
		r := newTestRouter(uc)

		w := postClassify(r, "u1", `{"message": "make flashcards"}`)
		if w.Code != http.StatusPaymentRequired {
			t.Fatalf("status = %d, want 402", w.Code)
		}
	})

	t.Run("mention without id is rejected", func(t *testing.T) {
		uc := &stubUseCase{}
		r := newTestRouter(uc)

		w := postClassify(r, "u1", `{"message": "hi", "mentions": [{"display_name": "orphan"}]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d, want 400", w.Code)
		}
	})
}
