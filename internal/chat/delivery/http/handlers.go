package http

import (
	"github.com/gin-gonic/gin"

	"campus-assistant/internal/model"
	pkgErrors "campus-assistant/pkg/errors"
	"campus-assistant/pkg/response"
)

// CreateSession godoc
// @Summary     Start a conversation
// @Description Creates a new chat session owned by the general assistant.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} createSessionResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions [POST]
func (h *handler) CreateSession(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.CreateSession(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateSessionResp(output))
}

// PostMessage godoc
// @Summary     Send a message
// @Description Routes one user message through the active agent. The reply is either a follow-up question for a missing detail or the agent's final formatted answer.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id   path string     true "Session ID"
// @Param       body body messageReq true "Message with optional base64 image attachments"
// @Success     200 {object} turnResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/messages [POST]
func (h *handler) PostMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processMessageReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.ProcessTurn(ctx, model.Scope{SessionID: req.SessionID}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ProcessTurn: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTurnResp(output))
}

// Transcript godoc
// @Summary     Get the transcript
// @Description Returns the session's conversation history and active agent.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} transcriptResp
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id}/transcript [GET]
func (h *handler) Transcript(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "session id is required"), nil)
		return
	}

	output, err := h.uc.Transcript(ctx, model.Scope{SessionID: id})
	if err != nil {
		h.l.Errorf(ctx, "uc.Transcript: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTranscriptResp(output))
}

// EndSession godoc
// @Summary     End a conversation
// @Description Destroys the session state.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       id path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Session Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/sessions/{id} [DELETE]
func (h *handler) EndSession(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		response.Error(c, pkgErrors.NewHTTPError(400, "session id is required"), nil)
		return
	}

	if err := h.uc.EndSession(ctx, model.Scope{SessionID: id}); err != nil {
		h.l.Errorf(ctx, "uc.EndSession: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
