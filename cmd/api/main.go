package main

// @title GeoNav Assistant API
// @version 1.0.0
// @description Сервис интеллектуального геопоиска. Превращает запросы на естественном языке ("найди 3 отеля возле метро") в структурированный геопоиск, ищет места в справочнике, обогащает их ближайшими станциями метро, ранжирует и строит маршруты.

// @contact.name API Support

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/geonav-service/docs"
	"github.com/geonav-service/internal/config"
	httpDelivery "github.com/geonav-service/internal/delivery/http"
	"github.com/geonav-service/internal/delivery/http/handler"
	"github.com/geonav-service/internal/infrastructure/amap"
	"github.com/geonav-service/internal/infrastructure/llm"
	"github.com/geonav-service/internal/pkg/logger"
	"github.com/geonav-service/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting GeoNav Assistant")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.Int("llm_backends", len(cfg.LLM.Backends)),
	)

	if cfg.Amap.APIKey == "" {
		log.Fatal("AMAP_API_KEY is required")
	}

	// 3. Initialize provider client
	amapClient := amap.NewClient(&cfg.Amap, log)
	log.Info("Amap client initialized")

	// 4. Build query strategy chain in configured priority order;
	// the rule strategy is appended by the interpret use case itself
	var strategies []usecase.QueryStrategy
	for _, backend := range cfg.LLM.Backends {
		strategy, err := llm.NewStrategy(backend, cfg.LLM.RequestTimeout, log)
		if err != nil {
			log.Warn("Skipping LLM backend",
				zap.String("backend", backend.Name),
				zap.Error(err))
			continue
		}
		strategies = append(strategies, strategy)
		log.Info("LLM backend registered", zap.String("backend", backend.Name))
	}

	// 5. Initialize Use Cases
	interpretUC := usecase.NewInterpretUseCase(strategies, amapClient, log)
	rankingUC := usecase.NewRankingUseCase(amapClient, log)
	searchUC := usecase.NewSearchUseCase(amapClient, rankingUC, log)
	routeUC := usecase.NewRouteUseCase(amapClient, log)

	log.Info("Use cases initialized")

	// 6. Initialize HTTP Handlers
	parseHandler := handler.NewParseHandler(interpretUC, log)
	searchHandler := handler.NewSearchHandler(searchUC, log)
	routeHandler := handler.NewRouteHandler(routeUC, log)

	// 7. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		parseHandler,
		searchHandler,
		routeHandler,
	)

	// 8. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 9. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
