package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mleon1997/habitalibre-backend-sub000/internal/application/usecase"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/port"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/domain/service"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/infrastructure/config"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/infrastructure/messaging"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/observability"
	grpcPresentation "github.com/mleon1997/habitalibre-backend-sub000/internal/presentation/grpc"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/presentation/rest"
	"github.com/mleon1997/habitalibre-backend-sub000/internal/rules"
)

func main() {
	cfg := config.Load()
	logger := observability.InitLogger(observability.LogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	logger.Info("starting affordability service",
		"grpc_port", cfg.GRPCPort,
		"http_port", cfg.HTTPPort,
	)

	// --- Rulebook -----------------------------------------------------------
	products, err := rules.LoadFile(cfg.RulesFile)
	if err != nil {
		logger.Error("failed to load product rulebook", "error", err)
		os.Exit(1)
	}
	logger.Info("product rulebook loaded", "products", len(products), "source", rulesSource(cfg))

	engine := service.NewEngine(products)

	// --- Metrics ------------------------------------------------------------
	_, metricsHandler, err := observability.InitMetrics()
	if err != nil {
		logger.Error("failed to init metrics", "error", err)
		os.Exit(1)
	}

	// --- Event publisher ----------------------------------------------------
	var publisher port.EventPublisher
	if cfg.KafkaEnabled() {
		kafkaPublisher := messaging.NewKafkaEventPublisher(cfg.KafkaBrokers, cfg.KafkaTopic, logger)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("kafka event publication enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Info("kafka not configured, events disabled")
	}

	// --- Use cases ----------------------------------------------------------
	evaluateUC := usecase.NewEvaluateAffordabilityUseCase(engine, publisher, logger)
	affinityUC := usecase.NewBankAffinityUseCase(engine, publisher, logger)

	// --- gRPC server --------------------------------------------------------
	handler := grpcPresentation.NewAffordabilityHandler(evaluateUC, affinityUC)
	grpcServer := grpcPresentation.NewServer(handler, logger)

	go func() {
		if err := grpcServer.Serve(cfg.GRPCAddr()); err != nil {
			logger.Error("gRPC server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- HTTP server --------------------------------------------------------
	mux := http.NewServeMux()
	rest.NewHealthHandler(logger).RegisterRoutes(mux)
	rest.NewAffordabilityHandler(evaluateUC, affinityUC, logger).RegisterRoutes(mux)
	mux.Handle("GET /metrics", metricsHandler)

	httpServer := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: mux,
	}

	go func() {
		logger.Info("HTTP server listening", "addr", cfg.HTTPAddr())
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// --- Graceful shutdown --------------------------------------------------
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	logger.Info("received shutdown signal", "signal", sig.String())

	grpcServer.GracefulStop()
	if err := httpServer.Shutdown(context.Background()); err != nil {
		logger.Error("HTTP server shutdown error", "error", err)
	}

	logger.Info("affordability service stopped")
}

func rulesSource(cfg config.Config) string {
	if cfg.RulesFile == "" {
		return "embedded"
	}
	return cfg.RulesFile
}
