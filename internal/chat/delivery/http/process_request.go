package http

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

// processMessageReq binds and validates the post message body + URI param.
func (h *handler) processMessageReq(c *gin.Context) (messageReq, error) {
	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.SessionID = c.Param("id")
	if req.SessionID == "" {
		return req, fmt.Errorf("session id is required")
	}
	return req, req.validate()
}
