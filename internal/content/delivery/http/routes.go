package http

import (
	"github.com/gin-gonic/gin"

	"aether/internal/middleware"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	ai := rg.Group("/ai")
	{
		ai.POST("/social-post", mw.Auth(), h.GenerateSocialPost)
		ai.POST("/website-audit", mw.Auth(), h.GenerateWebsiteAudit)
		ai.POST("/meeting-summary", mw.Auth(), h.SummarizeMeetingNotes)
	}

	posts := rg.Group("/posts")
	{
		posts.GET("", mw.Auth(), h.ListPosts)
		posts.POST("/:id/schedule", mw.Auth(), h.SchedulePost)
	}
}
