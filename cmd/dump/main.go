package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/joho/godotenv/autoload"

	"github.com/rickgao/playerdata-source/internal/config"
	"github.com/rickgao/playerdata-source/internal/database"
	"github.com/rickgao/playerdata-source/internal/logger"
	"github.com/rickgao/playerdata-source/internal/source"
	"github.com/rickgao/playerdata-source/internal/version"
)

const kindAll = "all"

func main() {
	configPath := flag.String("config", "configs/datasource.local.yaml", "path to config file")
	kindFlag := flag.String("kind", kindAll, "record kind to dump: last-quit, break-count, build-count, play-ticks, vote-count or all")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall deadline for the dump")
	flag.Parse()

	if err := run(*configPath, *kindFlag, *timeout); err != nil {
		fmt.Fprintf(os.Stderr, "dump: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath, kindFlag string, timeout time.Duration) error {
	cfg, err := config.LoadAndValidate(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// stdout carries the records
	log := logger.New(os.Stderr, cfg.Log)
	log.Debug("starting dump", version.Attr(), "kind", kindFlag)

	var kind source.Kind
	if kindFlag != kindAll {
		if kind, err = source.ParseKind(kindFlag); err != nil {
			return err
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := database.Connect(ctx, cfg.Source)
	if err != nil {
		return err
	}
	defer pool.Close()

	sources := source.NewSources(pool, source.WithLogger(log))

	var out any
	if kindFlag == kindAll {
		out, err = sources.FetchAll(ctx)
	} else {
		out, err = sources.Fetch(ctx, kind)
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
