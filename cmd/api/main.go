package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/turiniq/agent-platform/internal/agent"
	"github.com/turiniq/agent-platform/internal/api/router"
	"github.com/turiniq/agent-platform/internal/config"
	"github.com/turiniq/agent-platform/internal/llm"
	"github.com/turiniq/agent-platform/internal/observability/metrics"
	"github.com/turiniq/agent-platform/internal/onboarding"
	"github.com/turiniq/agent-platform/internal/records"
	"github.com/turiniq/agent-platform/internal/store"
	"github.com/turiniq/agent-platform/internal/webchat"
	"github.com/turiniq/agent-platform/pkg/logging"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting agent-platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Persistence
	var dataStore store.Store
	if cfg.UseMemoryStore {
		logger.Info("using in-memory store")
		dataStore = store.NewMemory()
	} else {
		mongoStore, err := store.NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase, logger)
		if err != nil {
			logger.Error("failed to connect to mongodb", "error", err)
			os.Exit(1)
		}
		defer mongoStore.Close(context.Background())
		dataStore = mongoStore
	}

	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
		defer redisClient.Close()
		dataStore = store.NewCached(dataStore, redisClient, cfg.CacheTTL, logger)
		logger.Info("business data cache enabled", "addr", cfg.RedisAddr)
	}

	// Gateway
	gateway, err := llm.NewGeminiClient(ctx, cfg.GeminiAPIKey, cfg.GeminiModelID, cfg.LLMTimeout)
	if err != nil {
		logger.Error("failed to create gemini client", "error", err)
		os.Exit(1)
	}
	defer gateway.Close()

	// Metrics
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	agentMetrics := metrics.NewAgentMetrics(registry)

	instrumented := llm.Func(func(ctx context.Context, prompt string) (string, error) {
		text, err := gateway.Generate(ctx, prompt)
		if err != nil {
			agentMetrics.ObserveLLMCall("error")
			return "", err
		}
		agentMetrics.ObserveLLMCall("ok")
		return text, nil
	})

	retryPolicy := llm.RetryPolicy{
		MaxAttempts: cfg.LLMRetryMaxAttempts,
		BaseDelay:   cfg.LLMRetryBaseDelay,
	}

	// Handlers
	builder := onboarding.NewContextBuilder(instrumented, dataStore, onboarding.NewScraper(), cfg.KnowledgeBaseLimit, logger)
	onboardingHandler := onboarding.NewHandler(builder, logger)
	recordsHandler := records.NewHandler(dataStore, logger)
	webchatHandler := webchat.NewHandler(func(businessID string) webchat.Runner {
		return agent.NewSession(agent.SessionConfig{
			BusinessID:         businessID,
			Client:             instrumented,
			Store:              dataStore,
			Logger:             logger,
			Metrics:            agentMetrics,
			RetryPolicy:        retryPolicy,
			KnowledgeBaseLimit: cfg.KnowledgeBaseLimit,
		})
	}, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		OnboardingHandler:  onboardingHandler,
		RecordsHandler:     recordsHandler,
		WebchatHandler:     webchatHandler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:        ":" + cfg.Port,
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// No WriteTimeout: WebSocket sessions stay open indefinitely.
		IdleTimeout: 60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}
