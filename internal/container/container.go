package container

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/go-viberoute/config"
	generativeAI "github.com/FACorreiaa/go-viberoute/internal/api/generative_ai"
	"github.com/FACorreiaa/go-viberoute/internal/api/explorer"
	"github.com/FACorreiaa/go-viberoute/internal/api/guide"
	"github.com/FACorreiaa/go-viberoute/internal/api/status"
	"github.com/FACorreiaa/go-viberoute/internal/router"
)

// Container holds all application dependencies
type Container struct {
	Config          *config.Config
	Logger          *slog.Logger
	AIClient        *generativeAI.AIClient
	GuideService    guide.Service
	ExplorerStore   *explorer.Store
	GuideHandler    *guide.HandlerImpl
	ExplorerHandler *explorer.HandlerImpl
	StatusHandler   *status.HandlerImpl
}

// NewContainer initializes and returns a new dependency container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.LLM.APIKey, cfg.LLM.Model, logger)
	if err != nil {
		logger.Error("Failed to initialize generative AI client", slog.Any("error", err))
		return nil, err
	}

	guideService := guide.NewServiceImpl(aiClient, guide.Options{
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		WebSearch:   cfg.LLM.WebSearch,
	}, logger)
	guideHandler := guide.NewHandlerImpl(guideService, logger)

	explorerStore := explorer.NewStore(guideService, explorer.Options{
		FetchTimeout: cfg.LLM.Timeout,
		SessionTTL:   cfg.Explorer.SessionTTL,
	}, logger)
	explorerHandler := explorer.NewHandlerImpl(explorerStore, logger)

	return &Container{
		Config:          cfg,
		Logger:          logger,
		AIClient:        aiClient,
		GuideService:    guideService,
		ExplorerStore:   explorerStore,
		GuideHandler:    guideHandler,
		ExplorerHandler: explorerHandler,
		StatusHandler:   status.NewHandlerImpl(logger),
	}, nil
}

// RouterConfig collects the handlers for router.SetupRouter.
func (c *Container) RouterConfig() *router.Config {
	return &router.Config{
		GuideHandler:    c.GuideHandler,
		ExplorerHandler: c.ExplorerHandler,
		StatusHandler:   c.StatusHandler,
		AllowedOrigins:  c.Config.Server.AllowedOrigins,
	}
}
