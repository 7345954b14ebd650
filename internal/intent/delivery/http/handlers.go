package http

import (
	"github.com/gin-gonic/gin"

	"study-copilot/internal/model"
	"study-copilot/pkg/response"
)

// Classify godoc
// @Summary     Classify a message into a capability
// @Description Maps a free-form user message onto exactly one capability (flashcard, test, course_search, career_path) or the sentinel "none", with extracted arguments flattened into the response.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-User-ID header string      true "Caller user id"
// @Param       body      body   classifyReq true "Message, explicit mentions and page context"
// @Success     200 {object} map[string]interface{}
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     402 {object} response.Resp "Token budget exceeded"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intent/classify [POST]
func (h *handler) Classify(c *gin.Context) {
	ctx := c.Request.Context()

	req, userID, err := h.processClassifyReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.uc.Classify(ctx, model.Scope{UserID: userID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newClassifyResp(result))
}
