// Command prune-archive physically removes archived comments older than the
// configured retention period. It is intended to be invoked by an external
// cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/annothub/annotator-backend/internal/adapter/postgres"
	"github.com/annothub/annotator-backend/internal/adapter/postgres/archive"
	"github.com/annothub/annotator-backend/internal/app"
	"github.com/annothub/annotator-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)
	logger.Info("starting prune-archive", slog.String("version", app.BuildVersion()))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	archiveRepo := archive.New(pool)

	threshold := time.Now().AddDate(0, 0, -cfg.Archive.RetentionDays)

	pruned, err := archiveRepo.PruneOlderThan(ctx, threshold)
	if err != nil {
		logger.Error("prune failed",
			slog.String("error", err.Error()),
			slog.Time("threshold", threshold),
		)
		os.Exit(1)
	}

	logger.Info("prune completed",
		slog.Int64("pruned", pruned),
		slog.Time("threshold", threshold),
	)
}
