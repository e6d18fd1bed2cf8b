package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectologger"
	"github.com/Gobusters/ectologger/zapadapter"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/john-carroll-sw/supply-chain-reasoning-engine/config"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/internal/handlers"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/events"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/health"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/httpclient"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/middleware"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/reasoning"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/redis"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/seed"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/store"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing"
	"github.com/john-carroll-sw/supply-chain-reasoning-engine/pkg/tracing/exporters"
)

var version = "dev"

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, zapLogger, err := newLogger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer zapLogger.Sync() // nolint: errcheck

	ctx := context.Background()

	tp, err := setupTracing(ctx, cfg)
	if err != nil {
		logger.WithError(err).Error("Failed to set up tracing")
		os.Exit(1)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Warn("Failed to shut down tracer provider")
		}
	}()

	st := store.New(seed.State(), logger)

	var producer *events.Producer
	if cfg.KafkaEnabled {
		producer = events.NewProducer(events.ProducerConfig{
			Brokers: cfg.KafkaBrokers,
			Topic:   cfg.KafkaEventsTopic,
		}, logger)
		defer producer.Close() // nolint: errcheck
		logger.WithField("brokers", cfg.KafkaBrokers).Info("Kafka audit events enabled")
	}
	emitter := events.NewEmitter(producer, logger)

	var cache *reasoning.Cache
	var redisClient *redis.Client
	if cfg.CacheEnabled {
		redisClient, err = redis.NewClient(redis.Config{
			Host:     cfg.RedisHost,
			Port:     cfg.RedisPort,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		}, logger)
		if err != nil {
			logger.WithError(err).Error("Failed to connect to Redis")
			os.Exit(1)
		}
		defer redisClient.Close() // nolint: errcheck
		cache = reasoning.NewCache(redisClient, cfg.CacheTTL, logger)
	}

	providerConfigured := cfg.AzureOpenAIEndpoint != "" && cfg.AzureOpenAIAPIKey != ""
	if !providerConfigured {
		logger.Warn("Reasoning provider is not configured; /api/reason will return errors")
	}

	chatClient := reasoning.NewChatClient(reasoning.ChatClientConfig{
		Endpoint:            cfg.AzureOpenAIEndpoint,
		APIKey:              cfg.AzureOpenAIAPIKey,
		Deployment:          cfg.AzureOpenAIDeployment,
		Model:               cfg.AzureOpenAIModel,
		APIVersion:          cfg.AzureOpenAIAPIVersion,
		MaxCompletionTokens: cfg.ReasoningMaxCompletionTokens,
		StructuredOutput:    cfg.ReasoningStructuredOutput,
	}, httpclient.NewClient(httpclient.Config{Timeout: cfg.ReasoningTimeout}, logger), logger)

	reasoningService := reasoning.NewService(chatClient, cache, logger)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second

	e.HTTPErrorHandler = middleware.Error(logger)
	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(echomw.Recover())

	checker := health.NewChecker(redisClient, providerConfigured, version)
	checker.RegisterRoutes(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := e.Group("/api")
	handlers.NewSupplyChainHandler(st, emitter, logger).Register(api)
	handlers.NewReasoningHandler(st, reasoningService, logger).Register(api)

	go func() {
		checker.SetReady(true)
		logger.WithField("port", cfg.Port).Info("Server listening")
		if err := e.Start(fmt.Sprintf(":%d", cfg.Port)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Error("Server stopped unexpectedly")
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	checker.SetReady(false)
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Graceful shutdown failed")
	}
}

func newLogger(cfg config.Config) (ectologger.Logger, *zap.Logger, error) {
	var zapLogger *zap.Logger
	var err error
	if cfg.PrettyLogs {
		zapLogger, err = zap.NewDevelopment()
	} else {
		zapLogger, err = zap.NewProduction()
	}
	if err != nil {
		return nil, nil, err
	}
	return zapadapter.NewZapEctoLogger(zapLogger, nil), zapLogger, nil
}

func setupTracing(ctx context.Context, cfg config.Config) (*sdktrace.TracerProvider, error) {
	var exporter sdktrace.SpanExporter = &exporters.ConsoleExporter{}
	if cfg.OTLPEnabled {
		otlpExporter, err := exporters.NewOTLPExporter(ctx, exporters.OTLPConfig{
			Endpoint: cfg.OTLPEndpoint,
			Protocol: cfg.OTLPProtocol,
			Insecure: cfg.OTLPInsecure,
		})
		if err != nil {
			return nil, err
		}
		exporter = otlpExporter
	}

	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	tracing.SetTracer(tp.Tracer(cfg.AppName))
	return tp, nil
}
