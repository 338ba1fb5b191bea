package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "aether/internal/chat/delivery/http"
	contentHTTP "aether/internal/content/delivery/http"
	leadHTTP "aether/internal/lead/delivery/http"
	projectHTTP "aether/internal/project/delivery/http"
	seedHTTP "aether/internal/seed/delivery/http"
	taskHTTP "aether/internal/task/delivery/http"
	validateHTTP "aether/internal/validate/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())
	srv.gin.Use(srv.mw.RequestLogger())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), srv.mw)
	projectHTTP.RegisterRoutes(api, projectHTTP.New(srv.l, srv.projectUC), srv.mw)
	leadHTTP.RegisterRoutes(api, leadHTTP.New(srv.l, srv.leadUC), srv.mw)
	chatHTTP.RegisterRoutes(api, chatHTTP.New(srv.l, srv.chatUC), srv.mw)
	contentHTTP.RegisterRoutes(api, contentHTTP.New(srv.l, srv.contentUC), srv.mw)
	seedHTTP.RegisterRoutes(api, seedHTTP.New(srv.l, srv.seedUC), srv.mw)
	validateHTTP.RegisterRoutes(api, validateHTTP.New(srv.l, srv.validateUC), srv.mw)

	// Slack events webhook sits outside /api/v1: Slack signs the raw
	// request, no workspace auth headers apply.
	if srv.webhookHandler != nil {
		srv.gin.POST("/webhooks/slack/events", srv.webhookHandler.HandleSlackEvents)
		srv.l.Infof(ctx, "Slack events route registered at POST /webhooks/slack/events")
	} else {
		srv.l.Infof(ctx, "Slack not configured, skipping events route")
	}

	return nil
}
