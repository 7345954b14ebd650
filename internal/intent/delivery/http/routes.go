package http

import (
	"github.com/gin-gonic/gin"

	"study-copilot/internal/middleware"
)

// RegisterRoutes maps the intent endpoints under the given group.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/intent")
	{
		g.POST("/classify", mw.RateLimit(), h.Classify)
	}
}
