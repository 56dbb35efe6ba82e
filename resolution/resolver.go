// Package resolution scores a finished race: it answers every market of the
// match and awards points to every selection.
package resolution

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/models"
)

// Resolver runs resolution passes. It holds no per-pass state and is safe
// for concurrent use.
type Resolver struct {
	store   Store
	fetcher ResultFetcher
	catalog *markettype.Catalog
	logger  *zap.Logger
}

func New(store Store, fetcher ResultFetcher, catalog *markettype.Catalog, logger *zap.Logger) *Resolver {
	if catalog == nil {
		catalog = markettype.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Resolver{store: store, fetcher: fetcher, catalog: catalog, logger: logger}
}

// MarketResult reports how one market was resolved.
type MarketResult struct {
	MarketID     int64  `json:"marketID"`
	MarketTypeID int    `json:"marketTypeID"`
	Result       string `json:"result"`
	Selections   int    `json:"selections"`
}

// Summary reports a finished pass.
type Summary struct {
	RaceID  string         `json:"raceID"`
	MatchID int64          `json:"matchID"`
	Markets []MarketResult `json:"markets"`
	Scored  int            `json:"scored"`
}

type scheduled struct {
	market models.Market
	def    markettype.Definition
}

// Resolve scores every market of the match tied to raceID. Market results are
// written one by one; selection points are written in one batch at the end,
// so a failure part way leaves points untouched.
func (r *Resolver) Resolve(ctx context.Context, raceID string) (*Summary, error) {
	log := r.logger.With(zap.String("race_id", raceID))

	match, err := r.store.MatchByRaceID(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("load match %s: %w", raceID, err)
	}
	markets, err := r.store.MarketsByMatch(ctx, match.ID)
	if err != nil {
		return nil, fmt.Errorf("load markets of match %d: %w", match.ID, err)
	}
	sort.Slice(markets, func(i, j int) bool { return markets[i].ID < markets[j].ID })

	plan := make([]scheduled, 0, len(markets))
	for _, m := range markets {
		def, ok := r.catalog.Lookup(m.MarketTypeID)
		if !ok {
			log.Error("market references unknown market type",
				zap.Int64("market_id", m.ID),
				zap.Int("market_type_id", m.MarketTypeID),
			)
			return nil, fmt.Errorf("%w: market %d has type %d", ErrUnknownMarketType, m.ID, m.MarketTypeID)
		}
		plan = append(plan, scheduled{market: m, def: def})
	}

	primary, err := r.fetcher.Results(ctx, raceID)
	if err != nil {
		return nil, fmt.Errorf("fetch results of %s: %w", raceID, err)
	}
	if primary == nil || len(primary.Results) == 0 {
		log.Warn("provider returned no results")
		return nil, fmt.Errorf("%w: %s", ErrNoResults, raceID)
	}

	discipline := primary.Competition.DisciplineID
	if discipline == "" {
		discipline = match.Discipline
	}
	p := newPass(raceID, discipline, primary.Results, r.fetcher, r.store, log)

	summary := &Summary{RaceID: raceID, MatchID: match.ID, Markets: make([]MarketResult, 0, len(plan))}
	var batch []models.Selection
	for _, s := range plan {
		mlog := log.With(zap.Int64("market_id", s.market.ID), zap.Int("market_type_id", s.def.ID))

		selections, err := r.store.SelectionsByMarket(ctx, s.market.ID)
		if err != nil {
			return nil, fmt.Errorf("load selections of market %d: %w", s.market.ID, err)
		}
		in, err := p.input(ctx, s.def, selections)
		if err != nil {
			return nil, fmt.Errorf("prepare market %d: %w", s.market.ID, err)
		}
		outcome, err := scoreMarket(s.def, in)
		if err != nil {
			mlog.Error("scoring failed", zap.Error(err))
			return nil, fmt.Errorf("score market %d: %w", s.market.ID, err)
		}

		result := outcome.Result()
		if result == markettype.NotAvailable {
			mlog.Warn("market has no answer in the race data")
		}
		if err := r.store.SetMarketResult(ctx, s.market.ID, result); err != nil {
			return nil, fmt.Errorf("store result of market %d: %w", s.market.ID, err)
		}

		for _, sel := range selections {
			pts := outcome.Points[sel.Key()]
			sel.Points = &pts
			batch = append(batch, sel)
		}
		summary.Markets = append(summary.Markets, MarketResult{
			MarketID:     s.market.ID,
			MarketTypeID: s.def.ID,
			Result:       result,
			Selections:   len(selections),
		})
		mlog.Debug("market resolved", zap.String("result", result), zap.Int("selections", len(selections)))
	}

	if len(batch) > 0 {
		if err := r.store.UpsertSelections(ctx, batch); err != nil {
			return nil, fmt.Errorf("store points of match %d: %w", match.ID, err)
		}
	}
	summary.Scored = len(batch)

	log.Info("race resolved",
		zap.Int64("match_id", match.ID),
		zap.Int("markets", len(summary.Markets)),
		zap.Int("selections", summary.Scored),
	)
	return summary, nil
}

// scoreMarket turns a panicking rule into an error so one bad market fails
// the pass instead of the process.
func scoreMarket(def markettype.Definition, in markettype.Input) (out markettype.Outcome, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("%w: market type %d: %v", ErrScoringPanic, def.ID, rec)
		}
	}()
	return def.Rule.Score(in), nil
}
