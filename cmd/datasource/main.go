package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/rickgao/playerdata-source/internal/config"
	"github.com/rickgao/playerdata-source/internal/database"
	"github.com/rickgao/playerdata-source/internal/logger"
	"github.com/rickgao/playerdata-source/internal/metrics"
	"github.com/rickgao/playerdata-source/internal/server"
	"github.com/rickgao/playerdata-source/internal/source"
	"github.com/rickgao/playerdata-source/internal/version"
)

func main() {
	configPath := flag.String("config", "configs/datasource.local.yaml", "path to config file")
	flag.Parse()

	// Load configuration
	cfg, err := config.LoadAndValidate(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(os.Stdout, cfg.Log)
	log.Info("starting datasource", version.Attr(), "config", *configPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("connecting to database",
		"host", cfg.Source.Host,
		"port", cfg.Source.Port,
		"database", cfg.Source.Name,
	)

	connectCtx, connectCancel := context.WithTimeout(ctx, 30*time.Second)
	pool, err := database.Connect(connectCtx, cfg.Source)
	connectCancel()
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	log.Info("database connected", "max_conns", database.MaxConns)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	if err := metrics.RegisterPool(registry, pool.DB(), cfg.Source.Name); err != nil {
		log.Error("failed to register pool metrics", "error", err)
		os.Exit(1)
	}

	sources := source.NewSources(pool,
		source.WithLogger(log),
		source.WithMetrics(metrics.New(registry)),
	)

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.NewHandler(pool, sources, registry, cfg.Server.MetricsPath, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("starting http server", "port", cfg.Server.Port)
		if err := httpServer.ListenAndServe(); err != http.ErrServerClosed {
			log.Error("http server error", "error", err)
			stop()
		}
	}()

	log.Info("datasource running",
		"health_url", fmt.Sprintf("http://localhost:%d/health", cfg.Server.Port),
	)

	// Wait for shutdown
	<-ctx.Done()

	log.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn("http server shutdown", "error", err)
	}

	log.Info("datasource stopped")
}
