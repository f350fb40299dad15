package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/educonnect/educonnect-api/internal/ai"
	"github.com/educonnect/educonnect-api/internal/handler"
	"github.com/educonnect/educonnect-api/internal/middleware"
	"github.com/educonnect/educonnect-api/internal/repository"
	"github.com/educonnect/educonnect-api/internal/seed"
	"github.com/educonnect/educonnect-api/internal/service"
	"github.com/educonnect/educonnect-api/internal/session"
	"github.com/educonnect/educonnect-api/internal/store"
	"github.com/educonnect/educonnect-api/pkg/cache"
	"github.com/educonnect/educonnect-api/pkg/config"
	"github.com/educonnect/educonnect-api/pkg/jobs"
	"github.com/educonnect/educonnect-api/pkg/logger"
	corsmiddleware "github.com/educonnect/educonnect-api/pkg/middleware/cors"
	reqidmiddleware "github.com/educonnect/educonnect-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Shared collections, seeded with the launch dataset.
	board := store.NewBoard(seed.Jobs())
	ledger := store.NewLedger()
	directory := store.NewDirectory(seed.Schools())

	// Theme preferences live in Redis when available, memory otherwise.
	var prefRepo repository.PreferenceRepository
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("failed to connect redis", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
		prefRepo = repository.NewRedisPreferenceRepository(redisClient, logr)
	} else {
		prefRepo = repository.NewMemoryPreferenceRepository()
	}
	prefs := service.NewPreferenceService(prefRepo, logr)

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	aiClient, err := ai.FromConfig(cfg.AI, logr)
	if err != nil {
		logr.Sugar().Fatalw("failed to build ai client", "error", err)
	}
	aiClient = service.InstrumentClient(aiClient, metrics)

	queue := jobs.NewQueue("ai", session.TaskHandler, jobs.QueueConfig{
		Workers:    cfg.Matching.Workers,
		BufferSize: cfg.Matching.BufferSize,
		Logger:     logr,
	})
	queue.Start(context.Background())
	defer queue.Stop()

	manager := session.NewManager(session.Deps{
		AI:        aiClient,
		Board:     board,
		Ledger:    ledger,
		Directory: directory,
		Runner:    session.NewQueueRunner(queue),
		Prefs:     prefs,
		Logger:    logr,
	})

	directorySvc := service.NewDirectoryService(directory, board, logr)
	exportSvc := service.NewExportService(ledger, logr)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	if metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	if metrics != nil {
		r.GET("/metrics", gin.WrapH(metrics.Handler()))
	}

	api := r.Group(cfg.APIPrefix)
	handler.NewSessionHandler(manager).Register(api)
	handler.NewProfileHandler(manager).Register(api)
	handler.NewJobHandler(manager, board).Register(api)
	handler.NewAdmissionHandler(manager, ledger).Register(api)
	handler.NewDirectoryHandler(directorySvc).Register(api)
	handler.NewExportHandler(manager, exportSvc).Register(api)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "ai_provider", cfg.AI.Provider)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
