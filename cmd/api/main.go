package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"campus-assistant/config"
	_ "campus-assistant/docs" // Swagger docs
	"campus-assistant/internal/agent"
	chatUC "campus-assistant/internal/chat/usecase"
	"campus-assistant/internal/classifier"
	"campus-assistant/internal/httpserver"
	"campus-assistant/internal/middleware"
	"campus-assistant/internal/retriever"
	"campus-assistant/internal/router"
	"campus-assistant/pkg/llmprovider"
	"campus-assistant/pkg/log"
	pkgQdrant "campus-assistant/pkg/qdrant"
	"campus-assistant/pkg/voyage"
)

// @title       Campus Assistant API
// @description Natural-language router that dispatches student messages to specialized conversational agents backed by an OpenAI-compatible inference service.
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

	logger.Info(ctx, "Starting Campus Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Inference providers
	providers, err := llmprovider.InitializeProviders(&cfg.Inference)
	if err != nil {
		logger.Errorf(ctx, "Failed to initialize inference providers: %v", err)
		return
	}
	manager := llmprovider.NewManager(providers, &llmprovider.Config{
		FallbackEnabled: cfg.Inference.FallbackEnabled,
		RetryAttempts:   cfg.Inference.RetryAttempts,
		RetryDelay:      cfg.Inference.RetryDelay,
		MaxTotalTimeout: cfg.Inference.MaxTotalTimeout,
	}, logger)
	logger.Infof(ctx, "Inference manager ready with %d provider(s)", len(providers))

	// 4. Classifier and router over the static agent registry
	clf := classifier.New(agent.Profiles())
	rt := router.New(clf, logger)
	store := router.NewStore(cfg.Session.Capacity, cfg.Session.TTL)

	// 5. Context retriever (optional)
	var retr retriever.IRetriever
	if cfg.Retriever.Enabled && cfg.Voyage.APIKey != "" {
		embedder, vErr := voyage.New(cfg.Voyage.APIKey)
		if vErr != nil {
			logger.Warnf(ctx, "Retriever disabled, voyage client: %v", vErr)
		} else {
			if cfg.Voyage.Model != "" {
				embedder = embedder.WithModel(cfg.Voyage.Model)
			}
			qdrantClient := pkgQdrant.NewClient(cfg.Qdrant.URL)
			retr = retriever.New(embedder, qdrantClient, retriever.Config{
				Collection: cfg.Qdrant.CollectionName,
				TopK:       cfg.Retriever.TopK,
				MinScore:   cfg.Retriever.MinScore,
			}, logger)
			logger.Infof(ctx, "Retriever enabled against collection %q", cfg.Qdrant.CollectionName)
		}
	} else {
		logger.Info(ctx, "Retriever disabled")
	}

	// 6. Chat UseCase
	uc := chatUC.New(logger, store, rt, manager, retr, chatUC.GenerationConfig{})

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ChatUC:      uc,
		RateLimit: middleware.RateLimitConfig{
			RequestsPerMin: cfg.RateLimit.RequestsPerMin,
			MaxClients:     cfg.RateLimit.MaxClients,
			TTL:            cfg.RateLimit.TTL,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
