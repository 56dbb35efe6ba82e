// cmd/resolve/main.go
// Resolves finished races from the command line.
//
// Usage:
//
//	go run ./cmd/resolve -race BT2526SWRLCP01SWSP,BT2526SWRLCP01SMSP
//	go run ./cmd/resolve -pending 3
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/config"
	bundb "github.com/padraicbc/biathlonpicks/db"
	applog "github.com/padraicbc/biathlonpicks/logger"
	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/resolution"
	"github.com/padraicbc/biathlonpicks/store"
)

type resolver interface {
	Resolve(ctx context.Context, raceID string) (*resolution.Summary, error)
}

type outcome struct {
	raceID  string
	scored  int
	pending bool
	err     error
}

// resolveAll resolves each race with at most limit passes in flight. A race
// without results is reported as pending, not as a failure, and one failing
// race never stops the others.
func resolveAll(ctx context.Context, r resolver, raceIDs []string, limit int, logger *zap.Logger) []outcome {
	out := make([]outcome, len(raceIDs))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, id := range raceIDs {
		i, id := i, id
		g.Go(func() error {
			res := outcome{raceID: id}
			summary, err := r.Resolve(ctx, id)
			switch {
			case errors.Is(err, resolution.ErrNoResults):
				res.pending = true
				logger.Info("no results yet", zap.String("race_id", id))
			case err != nil:
				res.err = err
				logger.Error("resolve failed", zap.String("race_id", id), zap.Error(err))
			default:
				res.scored = summary.Scored
				logger.Info("resolved", zap.String("race_id", id), zap.Int("markets", len(summary.Markets)), zap.Int("scored", summary.Scored))
			}
			mu.Lock()
			out[i] = res
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func main() {
	races := flag.String("race", "", "comma-separated race ids")
	pending := flag.Int("pending", 0, "resolve every match that started at least this many hours ago and is unresolved")
	parallel := flag.Int("parallel", 2, "races resolved at once")
	flag.Parse()

	cfg := config.Load()
	logger, err := applog.New("resolve", cfg.Debug)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	db, err := bundb.Setup(ctx, cfg)
	if err != nil {
		logger.Fatal("database setup failed", zap.Error(err))
	}
	defer db.Close()
	st := store.New(db, logger)

	var ids []string
	for _, id := range strings.Split(*races, ",") {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if *pending > 0 {
		more, err := st.FinishedMatchRaceIDs(ctx, *pending)
		if err != nil {
			logger.Fatal("list pending races", zap.Error(err))
		}
		ids = append(ids, more...)
	}
	if len(ids) == 0 {
		logger.Fatal("nothing to resolve: pass -race or -pending")
	}

	client := biathlon.NewClient(cfg.BiathlonAPIURL, cfg.BiathlonTimeout, cfg.BiathlonRPS, logger)
	r := resolution.New(st, client, markettype.Default(), logger)

	failed := 0
	for _, o := range resolveAll(ctx, r, ids, max(1, *parallel), logger) {
		if o.err != nil {
			failed++
		}
	}
	if failed > 0 {
		logger.Error("some races failed", zap.Int("failed", failed), zap.Int("total", len(ids)))
		os.Exit(1)
	}
}
