package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/tabdeck/tabdeck/internal/client/api"
	"github.com/tabdeck/tabdeck/internal/client/cli"
	"github.com/tabdeck/tabdeck/internal/client/connectivity"
	"github.com/tabdeck/tabdeck/internal/client/engine"
	"github.com/tabdeck/tabdeck/internal/client/queue"
	"github.com/tabdeck/tabdeck/internal/client/storage/boltdb"
	"github.com/tabdeck/tabdeck/internal/client/sync"
	"github.com/tabdeck/tabdeck/internal/config"
	"github.com/tabdeck/tabdeck/internal/models"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	configPath := flag.String("config", "", "Path to YAML config file")
	serverURL := flag.String("server", "", "Server URL, overrides config")
	dbPath := flag.String("db", "", "Path to local database, overrides config")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		cli.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = *loaded
	}
	if *serverURL != "" {
		cfg.Client.ServerURL = *serverURL
	}
	if *dbPath != "" {
		cfg.Client.DBPath = *dbPath
	}

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	boltStorage, err := boltdb.New(ctx, cfg.Client.DBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to open database: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		if err := boltStorage.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	bounds := models.Bounds{
		Columns: cfg.Client.Grid.Columns,
		Rows:    cfg.Client.Grid.Rows,
	}

	online, err := boltStorage.GetOnline(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to read connectivity mode: %v\n", err)
		os.Exit(1)
	}

	apiClient := api.NewClient(cfg.Client.ServerURL)
	mutationQueue := queue.New(boltStorage, cli.NewLayoutProvider(boltStorage, bounds), logger)
	syncService := sync.NewService(mutationQueue, apiClient, logger, sync.Options{
		FanOut:        cfg.Client.Sync.FanOut,
		RecordTimeout: time.Duration(cfg.Client.Sync.RecordTimeoutSeconds) * time.Second,
	})
	monitor := connectivity.New(syncService, mutationQueue, logger, online)
	eng := engine.New(mutationQueue, syncService, monitor, logger)

	app := cli.New(eng, boltStorage, boltStorage, bounds, os.Stdout)

	if err := app.Run(ctx, args[0], args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printVersion() {
	fmt.Printf("TabDeck Client\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
