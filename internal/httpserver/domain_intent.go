package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	intentHTTP "study-copilot/internal/intent/delivery/http"
	intentUC "study-copilot/internal/intent/usecase"
	"study-copilot/internal/middleware"
)

// setupIntentDomain initializes the intent domain and registers its routes.
func (srv *HTTPServer) setupIntentDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	uc := intentUC.New(
		srv.l,
		srv.registry,
		srv.builder,
		srv.budget,
		srv.oracle,
		srv.recorder,
		srv.usage.EstimateTokens,
	)

	h := intentHTTP.New(srv.l, uc)

	// Registers POST /api/v1/intent/classify
	intentHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Intent domain registered")
	return nil
}
