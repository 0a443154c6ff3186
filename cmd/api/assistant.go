package main

import (
	"context"
	"errors"

	"itodo/config"
	"itodo/internal/agent"
	"itodo/internal/agent/orchestrator"
	"itodo/internal/todo"
	"itodo/pkg/llmprovider"
	"itodo/pkg/log"
)

// newOrchestrator wires the configured LLM providers into the chat loop.
func newOrchestrator(ctx context.Context, cfg *config.Config, registry *agent.ToolRegistry, uc todo.UseCase, l log.Logger) (*orchestrator.Orchestrator, error) {
	providers, err := llmprovider.InitializeProviders(ctx, &cfg.LLM, l)
	if err != nil {
		return nil, err
	}
	if len(providers) == 0 {
		return nil, errors.New("no enabled LLM provider could be initialized")
	}

	managerCfg, err := llmprovider.NewManagerConfig(&cfg.LLM)
	if err != nil {
		return nil, err
	}
	manager := llmprovider.NewManager(providers, managerCfg, l)

	return orchestrator.New(manager, registry, uc, l, orchestrator.Config{
		Instructions: cfg.Assistant.Instructions,
		MaxSteps:     cfg.Assistant.MaxSteps,
		HistoryTTL:   cfg.Assistant.HistoryTTL,
	}), nil
}
