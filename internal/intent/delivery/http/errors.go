package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"study-copilot/internal/intent"
	"study-copilot/pkg/response"
)

// respondError translates use-case errors into HTTP responses. Budget
// exhaustion is the one domain error the caller must tell apart.
func (h *handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, intent.ErrBudgetExceeded) {
		response.ErrorWithStatus(c, http.StatusPaymentRequired, "monthly token budget exceeded")
		return
	}
	response.InternalError(c)
}
