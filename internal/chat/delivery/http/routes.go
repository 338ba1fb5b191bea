package http

import (
	"github.com/gin-gonic/gin"

	"aether/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	channels := rg.Group("/channels")
	{
		channels.POST("", mw.Auth(), h.CreateChannel)
		channels.GET("", mw.Auth(), h.ListChannels)
		channels.POST("/:id/messages", mw.Auth(), h.SendMessage)
		channels.GET("/:id/messages", mw.Auth(), h.ListMessages)
	}
}
