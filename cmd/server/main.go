package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/auth"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/domain/event"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/infrastructure/gateway"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/observability"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/runtime"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/runtime/workers"
	"github.com/DuongThanhTaii/HCMUE-Forum-sub003/services"
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, manages the server lifecycle, and
// centralizes error reporting, so every defer executes before the
// process exits.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	// 2. Presence core
	registry := runtime.NewRegistry(log)
	events := make(chan event.DomainEvent, config.EventBufferSize)
	service := services.NewMembershipService(log, registry, events)
	stats := observability.NewStatsCollector(log)
	verifier := auth.NewTokenVerifier(config.JWTSecret)
	gw := gateway.NewGateway(log, registry, service, verifier, stats)

	// 3. Supervised workers: fan-out + periodic stats
	fanout := workers.NewEventFanout(log, events, registry, gw, config.SinkTimeout).Add(stats)
	reporter := observability.StatsReporter{Collector: stats, Interval: config.StatsInterval}
	sup := workers.NewSupervisor(log, config.RestartInterval)
	sup.Add(fanout, reporter)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	supDone := make(chan struct{})
	go func() {
		sup.Run(ctx)
		close(supDone)
	}()

	// 4. HTTP surface: websocket gateway + debug stats
	mux := http.NewServeMux()
	mux.Handle("/ws", gw)
	mux.HandleFunc("/debug/stats", gw.StatsHandler())

	server := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", config.Host, config.Port),
		Handler: mux,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.Info("gateway listening", "addr", server.Addr)
		serverErr <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErr:
		return fmt.Errorf("server stopped: %w", err)
	case <-ctx.Done():
	}

	// 5. Graceful shutdown: stop accepting, then stop the workers.
	log.Info("shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), config.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("server shutdown", "error", err)
	}

	sup.Stop()
	<-supDone
	return nil
}
