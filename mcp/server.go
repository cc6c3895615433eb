// Package mcp runs the MCP server that exposes the Apollo.io client
// operations as agent tools.
package mcp

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"

	"github.com/mertdeveci5/apollo-tools/client"
	"github.com/mertdeveci5/apollo-tools/internal/config"
	"github.com/mertdeveci5/apollo-tools/mcp/internal/handlers"
)

type toolRegisterer interface {
	RegisterTools(s *server.MCPServer) error
}

func registerHandler(s *server.MCPServer, handler toolRegisterer, name string) {
	if err := handler.RegisterTools(s); err != nil {
		log.Fatal().Err(err).Msgf("Failed to register %s tools", name)
	}
}

// Run starts the MCP server. Configuration comes from APOLLO_-prefixed
// environment variables; transport is auto-detected (stdio when launched by
// a host process, Streamable HTTP otherwise).
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	config.InitLogger()
	config.SetLogLevel(config.ParseLogLevel(cfg.LogLevel))

	apolloClient, err := client.New(cfg.APIKey, client.WithHTTPTimeout(cfg.RequestTimeout))
	if err != nil {
		log.Error().Err(err).Msg("Failed to create Apollo client")
		return err
	}
	log.Info().Dur("request_timeout", cfg.RequestTimeout).Msg("Apollo client created")

	s := server.NewMCPServer(
		cfg.ServerName,
		cfg.ServerVersion,
		server.WithToolCapabilities(true),
	)

	registerHandler(s, handlers.NewPeopleHandler(apolloClient), "people")
	registerHandler(s, handlers.NewOrganizationHandler(apolloClient), "organization")
	registerHandler(s, handlers.NewEnrichHandler(apolloClient), "enrich")

	if shouldUseStdio() {
		// Stdio transport (for Claude Desktop, launched processes)
		log.Info().Msg("Starting Apollo MCP server (stdio transport)")
		if err := server.ServeStdio(s); err != nil {
			log.Fatal().Err(err).Msg("Stdio server error")
		}
		return nil
	}

	// HTTP transport (for manual/Docker startup)
	log.Info().Str("addr", cfg.HTTPAddr).Msg("Starting Apollo MCP server (Streamable HTTP)")

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	shutdownComplete := make(chan struct{})

	streamSrv := server.NewStreamableHTTPServer(
		s,
		server.WithEndpointPath("/mcp"),
		server.WithHeartbeatInterval(30*time.Second),
	)

	srv := &http.Server{
		Addr:        cfg.HTTPAddr,
		Handler:     streamSrv,
		ReadTimeout: cfg.HTTPReadTimeout,
		// WriteTimeout stays zero: no deadline, required for SSE streaming.
		IdleTimeout: cfg.HTTPIdleTimeout,
	}

	go func() {
		defer close(shutdownComplete)

		sig := <-sigChan
		log.Info().Str("signal", sig.String()).Msg("Received shutdown signal")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during HTTP server shutdown")
		}
		if err := streamSrv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Error during MCP server shutdown")
		}
	}()

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("HTTP server error")
	}

	<-shutdownComplete
	log.Info().Msg("MCP server shutdown complete")
	return nil
}

// shouldUseStdio determines whether to use stdio transport based on environment
func shouldUseStdio() bool {
	// Force stdio mode with environment variable
	if os.Getenv("MCP_STDIO") == "true" {
		return true
	}

	// Force HTTP mode with environment variable
	if os.Getenv("MCP_HTTP") == "true" {
		return false
	}

	// Auto-detect: use stdio if stdin is not a terminal (launched by another process)
	if fileInfo, err := os.Stdin.Stat(); err == nil {
		return (fileInfo.Mode() & os.ModeCharDevice) == 0
	}

	return false
}
