package http

import (
	"github.com/gin-gonic/gin"

	"aether/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	leads := rg.Group("/leads")
	{
		leads.POST("", mw.Auth(), h.Create)
		leads.GET("", mw.Auth(), h.List)
		leads.GET("/:id", mw.Auth(), h.Detail)
		leads.PUT("/:id", mw.Auth(), h.Update)
		leads.DELETE("/:id", mw.Auth(), h.Delete)
		leads.POST("/:id/sync", mw.Auth(), h.Sync)
	}
}
