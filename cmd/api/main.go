package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"itodo/config"
	_ "itodo/docs" // Swagger docs
	agentHTTP "itodo/internal/agent/delivery/http"
	"itodo/internal/agent/tools"
	"itodo/internal/httpserver"
	"itodo/internal/middleware"
	"itodo/internal/model"
	todoHTTP "itodo/internal/todo/delivery/http"
	"itodo/internal/todo/delivery/web"
	"itodo/internal/todo/repository/memory"
	"itodo/internal/todo/usecase"
	"itodo/pkg/log"
)

// @title       iTodo API
// @description Todo list with a form UI and an assistant that edits the same list through named actions.
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

	logger.Info(ctx, "Starting iTodo...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Todo domain
	sessionRepo := memory.New(memory.Config{
		MaxSessions: cfg.Session.MaxSessions,
		TTL:         cfg.Session.TTL,
	}, logger)
	todoUC := usecase.New(sessionRepo, logger)

	// 4. Assistant: the action registry always works, chat needs an LLM provider
	registry := tools.NewRegistry(todoUC, logger)

	var (
		chatAssistant agentHTTP.Assistant
		pageAssistant web.Assistant
	)
	if cfg.Assistant.Enabled && len(cfg.LLM.Providers) > 0 {
		orch, orchErr := newOrchestrator(ctx, cfg, registry, todoUC, logger)
		if orchErr != nil {
			logger.Warnf(ctx, "Assistant chat disabled: %v", orchErr)
		} else {
			defer orch.Close()
			chatAssistant = orch
			pageAssistant = orch
			logger.Info(ctx, "Assistant chat initialized")
		}
	} else {
		logger.Warn(ctx, "Assistant chat skipped: no LLM provider configured")
	}

	mw := middleware.New(logger, middleware.Config{
		CookieName:      cfg.Session.CookieName,
		CookieMaxAge:    cfg.Session.TTL,
		SecureCookie:    cfg.Environment.Name == string(model.EnvironmentProduction),
		RateLimitPerMin: cfg.Assistant.RateLimitPerMin,
	})

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		Middleware:  mw,
		TodoHandler: todoHTTP.New(logger, todoUC),
		Sessions:    sessionRepo,
		WebHandler: web.New(logger, todoUC, pageAssistant, web.Config{
			AssistantTitle:   cfg.Assistant.Title,
			AssistantInitial: cfg.Assistant.Initial,
		}),
		AssistantHandler: agentHTTP.New(logger, registry, chatAssistant),
		ChatEnabled:      chatAssistant != nil,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
