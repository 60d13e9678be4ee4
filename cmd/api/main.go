package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Skbaji74/scan-nourish-ai/internal/config"
	"github.com/Skbaji74/scan-nourish-ai/internal/db"
	apihttp "github.com/Skbaji74/scan-nourish-ai/internal/http"
	"github.com/Skbaji74/scan-nourish-ai/internal/llm"
	"github.com/Skbaji74/scan-nourish-ai/internal/repository"
	"github.com/Skbaji74/scan-nourish-ai/internal/service"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.LLMAPIKey == "" {
		logger.Warn("llm api key not configured; analysis requests will fail with 500")
	}

	var (
		profileRepo repository.HealthProfileRepository
		scanRepo    repository.ScanRepository
	)
	if cfg.DatabaseURL != "" {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal("db connect", zap.Error(err))
		}
		defer pool.Close()
		profileRepo = repository.NewPgHealthProfileRepository(pool)
		scanRepo = repository.NewPgScanRepository(pool)
	} else {
		logger.Info("no database configured; running stateless")
	}

	var limiter service.ScanRateLimiter
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed; scan rate limiting disabled", zap.Error(err))
		} else {
			limiter = service.NewRedisScanRateLimiter(
				redisClient,
				time.Duration(cfg.ScanRateWindowSeconds)*time.Second,
				cfg.ScanRateMax,
			)
		}
		cancel()
	}

	llmLog := zap.NewStdLog(logger)
	visionClient := llm.NewHTTPVisionClient(cfg.LLMBaseURL, cfg.LLMAPIKey, cfg.LLMVisionModel, llmLog)
	chatClient := llm.NewGeminiHTTPClient(cfg.GeminiBaseURL, cfg.ChatAPIKey(), cfg.GeminiModel, llmLog)

	scanSvc := service.NewScanService(visionClient, scanRepo, logger, cfg.LLMAPIKey)
	chatSvc := service.NewChatService(chatClient, logger, cfg.ChatAPIKey())

	scanHandler := apihttp.NewScanHandler(logger, scanSvc, limiter)
	chatHandler := apihttp.NewChatHandler(logger, chatSvc)
	profileHandler := apihttp.NewProfileHandler(logger, profileRepo, scanRepo)

	router := apihttp.NewRouter(logger, scanHandler, chatHandler, profileHandler)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
