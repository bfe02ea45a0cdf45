package http

import (
	"github.com/gin-gonic/gin"

	"campus-assistant/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
// Message posting is rate limited per client; the limiter is a no-op when
// disabled in config.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	sessions := rg.Group("/chat/sessions")
	{
		sessions.POST("", h.CreateSession)
		sessions.POST("/:id/messages", mw.RateLimit(), h.PostMessage)
		sessions.GET("/:id/transcript", h.Transcript)
		sessions.DELETE("/:id", h.EndSession)
	}
}
