package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/luciano/vetconnect-go/internal/infrastructure/observability"
	"github.com/luciano/vetconnect-go/internal/mockapi"
	"github.com/luciano/vetconnect-go/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	observability.InitLogger("vetconnect-mockapi", cfg.Log.Environment, cfg.Log.Level)

	addr := listenAddr(cfg.Mock.BaseURL)
	srv := &http.Server{
		Addr:         addr,
		Handler:      mockapi.NewServer().Handler(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Msg("Starting mock endpoint server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed to start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down mock endpoint server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Server forced to shutdown")
	}
}

// listenAddr extracts host:port from the configured mock base URL
func listenAddr(baseURL string) string {
	const scheme = "http://"
	addr := baseURL
	if len(addr) > len(scheme) && addr[:len(scheme)] == scheme {
		addr = addr[len(scheme):]
	}
	if addr == "" {
		addr = "localhost:8090"
	}
	return addr
}
