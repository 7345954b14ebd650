package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

var errMissingUserID = errors.New("X-User-ID header is required")

// processClassifyReq binds the classify request body and resolves the caller
// identity from the X-User-ID header set by the API gateway.
func (h *handler) processClassifyReq(c *gin.Context) (classifyReq, string, error) {
	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		return classifyReq{}, "", errMissingUserID
	}

	var req classifyReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, "", err
	}
	return req, userID, req.validate()
}
