package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/hackmyway/hackmyway/internal/config"
	"github.com/hackmyway/hackmyway/internal/notify"
	"github.com/hackmyway/hackmyway/internal/scraper"
	"github.com/hackmyway/hackmyway/internal/storage"
)

func main() {
	once := flag.Bool("once", false, "run a single ingestion pass and exit")
	flag.Parse()

	slog.Info("Starting HackMyWay ingestion worker...")

	if err := godotenv.Load(); err == nil {
		slog.Info("Loaded environment from .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Critical error loading configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	store, err := storage.New(ctx, cfg.ProjectID)
	if err != nil {
		slog.Error("Critical error initializing Firestore client", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	sc := scraper.New()
	in := scraper.NewIngestor(store, notify.New(store), cfg.SeedOrganizerID)

	runPass(ctx, sc, in)
	if *once {
		return
	}

	ticker := time.NewTicker(cfg.ScrapeInterval)
	defer ticker.Stop()
	slog.Info("Scheduled periodic ingestion", "interval", cfg.ScrapeInterval)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Ingestion worker stopped.")
			return
		case <-ticker.C:
			runPass(ctx, sc, in)
		}
	}
}

func runPass(ctx context.Context, sc *scraper.Client, in *scraper.Ingestor) {
	start := time.Now()
	listings := sc.ScrapeAll(ctx, scraper.DefaultSources)
	if len(listings) == 0 {
		slog.Warn("Ingestion pass produced no listings")
		return
	}
	created, updated := in.Reconcile(ctx, listings)
	slog.Info("Ingestion pass complete",
		"listings", len(listings),
		"created", created,
		"updated", updated,
		"duration", time.Since(start).Round(time.Millisecond))
}
