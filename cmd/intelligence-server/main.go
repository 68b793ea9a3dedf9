// cmd/intelligence-server/main.go
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"swayam-intelligence/internal/aiproxy"
	"swayam-intelligence/internal/api"
	"swayam-intelligence/internal/common/aws"
	"swayam-intelligence/internal/common/config"
	"swayam-intelligence/internal/common/database"
	"swayam-intelligence/internal/common/logger"
	"swayam-intelligence/internal/common/metrics"
	"swayam-intelligence/internal/common/observability"
	"swayam-intelligence/internal/history"
	"swayam-intelligence/internal/intelligence/catalog"
	"swayam-intelligence/internal/intelligence/conversation"
	"swayam-intelligence/internal/intelligence/entity"
	"swayam-intelligence/internal/intelligence/episodes"
	"swayam-intelligence/internal/intelligence/gamification"
	"swayam-intelligence/internal/intelligence/intent"
	"swayam-intelligence/internal/intelligence/planner"
	"swayam-intelligence/internal/notify"
	"swayam-intelligence/internal/tools"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2 // Exponential backoff
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	defer zapLog.Sync()
	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting intelligence server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Session store ---
	var store conversation.SessionStore
	switch cfg.Sessions.Backend {
	case "redis":
		var redis *database.RedisClient
		err = retryWithBackoff(func() error {
			var err error
			redis, err = database.NewRedis(cfg.Database.Redis)
			if err != nil {
				return err
			}
			return redis.Ping(ctx)
		}, 10, 2*time.Second, zapLog, "Redis connection")
		if err != nil {
			zapLog.Fatal("redis failed after retries", zap.Error(err))
		}
		defer redis.Close()
		store = conversation.NewRedisStore(redis, time.Duration(cfg.Sessions.TTL)*time.Second)
		zapLog.Info("Redis session store connected")
	default:
		store = conversation.NewMemoryStore(time.Duration(cfg.Sessions.TTL) * time.Second)
	}
	metrics.SessionsActive.WithLabelValues(cfg.Sessions.Backend).Set(0)

	// --- Plan history (Postgres) ---
	var histStore *history.Store
	if cfg.History.Enabled {
		var pg *database.PostgresClient
		err = retryWithBackoff(func() error {
			var err error
			pg, err = database.NewPostgres(cfg.Database.Postgres)
			if err != nil {
				return err
			}
			return pg.Ping(ctx)
		}, 15, 2*time.Second, zapLog, "PostgreSQL connection")
		if err != nil {
			zapLog.Fatal("postgres failed after retries", zap.Error(err))
		}
		defer pg.Close()

		histStore = history.NewStore(pg, log)
		if err := histStore.EnsureSchema(ctx); err != nil {
			zapLog.Fatal("plan history schema setup failed", zap.Error(err))
		}
		zapLog.Info("PostgreSQL plan history connected")
	}

	// --- Episode recorder (Elasticsearch) ---
	var recorder *episodes.Recorder
	if cfg.Episodes.Enabled {
		var esClient *database.ElasticsearchClient
		err = retryWithBackoff(func() error {
			var err error
			esClient, err = database.NewElasticsearch(cfg.Database.Elasticsearch)
			if err != nil {
				return err
			}
			return esClient.Ping()
		}, 15, 2*time.Second, zapLog, "Elasticsearch connection")
		if err != nil {
			zapLog.Fatal("elasticsearch failed after retries", zap.Error(err))
		}

		recorder = episodes.NewRecorder(esClient, episodes.Config{
			Index:         cfg.Episodes.Index,
			FlushSize:     cfg.Episodes.FlushSize,
			FlushInterval: config.GetDuration(cfg.Episodes.FlushInterval),
		}, log)
		defer recorder.Close(ctx)
		zapLog.Info("Episode recorder started", zap.String("index", cfg.Episodes.Index))
	}

	// --- Core engine ---
	ai := aiproxy.NewClient(cfg.AIProxy, log)
	cat := catalog.New()
	broadcaster := conversation.NewBroadcaster(log)

	orchestrator := conversation.NewOrchestrator(
		intent.NewClassifier(ai, log),
		entity.NewExtractor(ai, log),
		planner.NewPlanner(ai, log),
		cat,
		store,
		broadcaster,
		obs,
		log,
	)

	rewards := gamification.NewEngine(log)

	// --- Plan completion notifications (SNS) ---
	if cfg.Notifications.SNS.Enabled {
		snsClient, err := aws.NewSNSClient(ctx, cfg.Notifications.AWS.Region)
		if err != nil {
			zapLog.Fatal("sns client failed", zap.Error(err))
		}
		notifier := notify.NewNotifier(snsClient, cfg.Notifications.SNS.TopicARN, log)
		broadcaster.Subscribe(notifier.HandleProgress)
		zapLog.Info("SNS notifier subscribed", zap.String("topic", cfg.Notifications.SNS.TopicARN))
	}

	executor := tools.NewGatewayExecutor(
		cfg.ToolGateway.BaseURL,
		cfg.ToolGateway.APIKey,
		config.GetDuration(cfg.ToolGateway.Timeout),
		log,
	)

	server := api.NewServer(api.Dependencies{
		Orchestrator: orchestrator,
		Executor:     executor,
		Catalog:      cat,
		Rewards:      rewards,
		History:      histStore,
		Recorder:     recorder,
		Logger:       log,
		Version:      cfg.App.Version,
	})

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      server.Router(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful shutdown ---
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	zapLog.Info("Shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http shutdown failed", zap.Error(err))
	}
	zapLog.Info("Server stopped")
}
