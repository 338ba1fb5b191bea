package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"aether/config"
	_ "aether/docs" // Swagger docs
	chatRepoDocstore "aether/internal/chat/repository/docstore"
	chatUC "aether/internal/chat/usecase"
	contentRepoDocstore "aether/internal/content/repository/docstore"
	contentUC "aether/internal/content/usecase"
	"aether/internal/httpserver"
	leadRepoDocstore "aether/internal/lead/repository/docstore"
	leadUC "aether/internal/lead/usecase"
	"aether/internal/middleware"
	projectRepoDocstore "aether/internal/project/repository/docstore"
	projectUC "aether/internal/project/usecase"
	seedUC "aether/internal/seed/usecase"
	taskRepoDocstore "aether/internal/task/repository/docstore"
	taskUC "aether/internal/task/usecase"
	validateUC "aether/internal/validate/usecase"
	"aether/internal/webhook"
	"aether/pkg/dateguard"
	"aether/pkg/datemath"
	"aether/pkg/docstore"
	"aether/pkg/gcalendar"
	"aether/pkg/hubspot"
	"aether/pkg/llmprovider"
	"aether/pkg/log"
	"aether/pkg/slack"
)

// @title       Aether API
// @description Small-business workspace: projects, tasks, CRM, chat and AI content, guarded by the smart date engine.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Aether...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Document store
	store := docstore.NewClient(cfg.DocStore.URL, cfg.DocStore.AccessToken)

	// 4. Date engine and relative-date parser
	validator := dateguard.New()

	timezone := cfg.Workspace.Timezone
	if timezone == "" {
		timezone = "UTC"
	}
	dateParser, dtErr := datemath.NewParser(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		dateParser, _ = datemath.NewParser("UTC")
	}

	// 5. Optional integrations
	var slackClient *slack.Client
	if cfg.Slack.BotToken != "" {
		slackClient = slack.NewClient(cfg.Slack.BotToken)
		logger.Info(ctx, "Slack client initialized")
	} else {
		logger.Warn(ctx, "SLACK_BOT_TOKEN missing, chat mirroring disabled")
	}

	var hubspotClient *hubspot.Client
	if cfg.HubSpot.AccessToken != "" {
		hubspotClient = hubspot.NewClient(cfg.HubSpot.AccessToken)
		logger.Info(ctx, "HubSpot client initialized")
	} else {
		logger.Warn(ctx, "HUBSPOT_ACCESS_TOKEN missing, CRM sync disabled")
	}

	var calendarClient *gcalendar.Client
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, err = gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
		if err != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", err)
			calendarClient = nil
		} else {
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 6. LLM provider manager
	providers, err := llmprovider.InitializeProviders(&cfg.LLM)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize LLM providers: %v", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.LLM.FallbackEnabled,
		RetryAttempts:   cfg.LLM.RetryAttempts,
		RetryDelay:      parseDuration(cfg.LLM.RetryDelay, 2*time.Second),
		MaxTotalTimeout: parseDuration(cfg.LLM.MaxTotalTimeout, 2*time.Minute),
	}, logger)
	logger.Infof(ctx, "LLM manager initialized with %d provider(s)", len(providers))

	// 7. Repositories
	taskRepo := taskRepoDocstore.New(store, logger)
	projectRepo := projectRepoDocstore.New(store, logger)
	leadRepo := leadRepoDocstore.New(store, logger)
	chatRepo := chatRepoDocstore.New(store, logger)
	postRepo := contentRepoDocstore.New(store, logger)

	// 8. Use cases
	projects := projectUC.New(projectRepo, validator, logger)
	tasks := taskUC.New(taskRepo, projectRepo, validator, logger)
	chats := chatUC.New(chatRepo, slackOrNil(slackClient), logger)
	leads := leadUC.New(leadRepo, hubspotOrNil(hubspotClient), logger)
	content := contentUC.New(postRepo, manager, calendarOrNil(calendarClient), dateParser, validator, logger)
	seeder := seedUC.New(projectRepo, taskRepo, leadRepo, chatRepo, postRepo, logger)
	validation := validateUC.New(validator, logger)

	// 9. Slack events webhook
	var webhookHandler *webhook.Handler
	if cfg.Webhook.Enabled && cfg.Slack.SigningSecret != "" {
		webhookHandler = webhook.NewHandler(chats, webhook.SecurityConfig{
			SigningSecret:   cfg.Slack.SigningSecret,
			AllowedIPs:      cfg.Webhook.AllowedIPs,
			RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
		}, logger)
	} else {
		logger.Warn(ctx, "Slack events webhook disabled")
	}

	// 10. HTTP server
	mw := middleware.New(logger, cfg.Workspace.DefaultID)
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,

		TaskUC:     tasks,
		ProjectUC:  projects,
		LeadUC:     leads,
		ChatUC:     chats,
		ContentUC:  content,
		SeedUC:     seeder,
		ValidateUC: validation,

		WebhookHandler: webhookHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 11. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
