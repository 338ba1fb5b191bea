package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"aether/internal/chat"
	"aether/internal/content"
	"aether/internal/lead"
	"aether/internal/middleware"
	"aether/internal/project"
	"aether/internal/seed"
	"aether/internal/task"
	"aether/internal/validate"
	"aether/internal/webhook"
	"aether/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domain use cases
	taskUC     task.UseCase
	projectUC  project.UseCase
	leadUC     lead.UseCase
	chatUC     chat.UseCase
	contentUC  content.UseCase
	seedUC     seed.UseCase
	validateUC validate.UseCase

	// Slack events webhook (optional)
	webhookHandler *webhook.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	Middleware  middleware.Middleware

	TaskUC     task.UseCase
	ProjectUC  project.UseCase
	LeadUC     lead.UseCase
	ChatUC     chat.UseCase
	ContentUC  content.UseCase
	SeedUC     seed.UseCase
	ValidateUC validate.UseCase

	// WebhookHandler is nil when Slack is not configured; the events
	// route is then not registered.
	WebhookHandler *webhook.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,

		taskUC:     cfg.TaskUC,
		projectUC:  cfg.ProjectUC,
		leadUC:     cfg.LeadUC,
		chatUC:     cfg.ChatUC,
		contentUC:  cfg.ContentUC,
		seedUC:     cfg.SeedUC,
		validateUC: cfg.ValidateUC,

		webhookHandler: cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil || srv.projectUC == nil || srv.leadUC == nil ||
		srv.chatUC == nil || srv.contentUC == nil || srv.seedUC == nil ||
		srv.validateUC == nil {
		return errors.New("all domain use cases are required")
	}
	return nil
}
