package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"study-copilot/config"
	"study-copilot/pkg/log"
)

func newTestRouter(mw Middleware) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw.RequestID(), mw.RateLimit())
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	return r
}

func TestRequestID(t *testing.T) {
	mw := New(log.NewNop(), config.RateLimitConfig{})
	r := newTestRouter(mw)

	t.Run("assigns an id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		r.ServeHTTP(w, req)

		if w.Header().Get("X-Request-ID") == "" {
			t.Error("no X-Request-ID assigned")
		}
	})

	t.Run("keeps the caller's id", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.Header.Set("X-Request-ID", "caller-id-1")
		r.ServeHTTP(w, req)

		if got := w.Header().Get("X-Request-ID"); got != "caller-id-1" {
			t.Errorf("X-Request-ID = %q, want caller-id-1", got)
		}
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("throttles a burst from one caller", func(t *testing.T) {
		mw := New(log.NewNop(), config.RateLimitConfig{PerMinute: 60, Burst: 2})
		r := newTestRouter(mw)

		codes := make([]int, 0, 3)
		for i := 0; i < 3; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-User-ID", "u1")
			r.ServeHTTP(w, req)
			codes = append(codes, w.Code)
		}

		if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
			t.Errorf("first two codes = %v, want 200s", codes[:2])
		}
		if codes[2] != http.StatusTooManyRequests {
			t.Errorf("third code = %d, want 429", codes[2])
		}
	})

	t.Run("callers are throttled independently", func(t *testing.T) {
		mw := New(log.NewNop(), config.RateLimitConfig{PerMinute: 60, Burst: 1})
		r := newTestRouter(mw)

		for _, user := range []string{"u1", "u2"} {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-User-ID", user)
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Errorf("user %s got %d, want 200", user, w.Code)
			}
		}
	})

	t.Run("disabled when unconfigured", func(t *testing.T) {
		mw := New(log.NewNop(), config.RateLimitConfig{})
		r := newTestRouter(mw)

		for i := 0; i < 10; i++ {
			w := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodGet, "/ping", nil)
			req.Header.Set("X-User-ID", "u1")
			r.ServeHTTP(w, req)
			if w.Code != http.StatusOK {
				t.Fatalf("request %d got %d, want 200", i, w.Code)
			}
		}
	})
}
