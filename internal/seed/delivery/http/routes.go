package http

import (
	"github.com/gin-gonic/gin"

	"aether/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	demo := rg.Group("/seed")
	{
		demo.POST("", mw.Auth(), h.Seed)
		demo.DELETE("", mw.Auth(), h.Remove)
		demo.GET("/status", mw.Auth(), h.Status)
	}
}
