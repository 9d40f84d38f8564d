package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/janhq/saos-mcp-server/internal/infrastructure/config"
	"github.com/janhq/saos-mcp-server/internal/infrastructure/logger"
	_ "github.com/janhq/saos-mcp-server/internal/infrastructure/metrics" // Register Prometheus metrics
	"github.com/janhq/saos-mcp-server/internal/infrastructure/observability"
	"github.com/janhq/saos-mcp-server/internal/interfaces/httpserver"
	"github.com/janhq/saos-mcp-server/internal/interfaces/httpserver/routes/mcp"
)

const serviceName = "saos-mcp-server"

type Application struct {
	config     *config.Config
	mcpRoute   *mcp.MCPRoute
	httpServer *httpserver.HTTPServer
}

func init() {
	// Initialize logger with default settings
	logger.Init("info", "json")
}

// @title SAOS MCP Server
// @version 1.0
// @description Model Context Protocol (MCP) server exposing search and retrieval of Polish court judgments from SAOS.
// @BasePath /
func (app *Application) Start(ctx context.Context) error {
	if app.config.Transport == config.TransportHTTP {
		return app.httpServer.Run(ctx)
	}

	log.Info().Msg("Serving MCP over stdio")
	return app.mcpRoute.ServeStdio(ctx)
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load config")
	}

	// Re-initialize logger with config settings
	logger.Init(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("transport", cfg.Transport).
		Str("api_base_url", cfg.APIBaseURL).
		Str("log_level", cfg.LogLevel).
		Msg("Starting SAOS MCP server...")

	obsCfg := observability.DefaultConfig(serviceName)
	obsCfg.Environment = cfg.Environment
	obsCfg.TracingEnabled = cfg.TracingEnabled
	obsCfg.OTLPEndpoint = cfg.OTLPEndpoint
	provider, err := observability.Init(ctx, obsCfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize observability")
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Failed to shut down observability")
		}
	}()

	// Create application with dependency injection
	application, err := CreateApplication()
	if err != nil {
		log.Error().Err(err).Msg("Failed to create application")
		return
	}

	// Start application
	if err := application.Start(ctx); err != nil && ctx.Err() == nil {
		log.Error().Err(err).Msg("Server stopped with error")
		return
	}
	log.Info().Msg("SAOS MCP server stopped")
}
