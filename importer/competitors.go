package importer

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

// RosterReport summarises a competitor import.
type RosterReport struct {
	Events      int   `json:"events"`
	Competitors int64 `json:"competitors"`
	UniqueBios  int   `json:"uniqueBios"`
}

// ImportCompetitors walks every senior race of the season and stores each
// starter with their provider bio. Bios are fetched once per athlete per run.
func (im *Importer) ImportCompetitors(ctx context.Context, seasonID string) (*RosterReport, error) {
	events, err := im.provider.Events(ctx, seasonID)
	if err != nil {
		return nil, fmt.Errorf("list events of season %s: %w", seasonID, err)
	}
	im.logger.Info("importing competitors", zap.String("season", seasonID), zap.Int("events", len(events)))

	bios := newBioCache(im.provider.Competitor)
	var total atomic.Int64
	var done atomic.Int32

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.limits.Events)
	for _, ev := range events {
		ev := ev
		g.Go(func() error {
			if err := im.importEventCompetitors(gctx, ev, bios, &total); err != nil {
				return fmt.Errorf("event %s: %w", ev.EventID, err)
			}
			n := done.Add(1)
			im.logger.Info("event processed",
				zap.String("event_id", ev.EventID),
				zap.Int32("done", n),
				zap.Int("of", len(events)),
			)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &RosterReport{Events: len(events), Competitors: total.Load(), UniqueBios: bios.len()}
	im.logger.Info("competitor import finished",
		zap.Int64("competitors", report.Competitors),
		zap.Int("unique_bios", report.UniqueBios),
	)
	return report, nil
}

func (im *Importer) importEventCompetitors(ctx context.Context, ev biathlon.Event, bios *bioCache, total *atomic.Int64) error {
	competitions, err := im.provider.Competitions(ctx, ev.EventID)
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.limits.Competitions)
	for _, comp := range competitions {
		comp := comp
		if _, senior := gender(comp.CatID); !senior {
			continue
		}
		g.Go(func() error {
			n, err := im.importRaceCompetitors(gctx, comp.RaceID, bios)
			if err != nil {
				return fmt.Errorf("race %s: %w", comp.RaceID, err)
			}
			total.Add(int64(n))
			return nil
		})
	}
	return g.Wait()
}

func (im *Importer) importRaceCompetitors(ctx context.Context, raceID string, bios *bioCache) (int, error) {
	res, err := im.provider.Results(ctx, raceID)
	if err != nil {
		return 0, err
	}
	if res == nil || len(res.Results) == 0 {
		return 0, nil
	}

	competitors := make([]models.Competitor, len(res.Results))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(im.limits.Competitors)
	for i, r := range res.Results {
		i, r := i, r
		g.Go(func() error {
			c := models.Competitor{IBUID: r.IBUID, Name: r.Name, Nat: r.Nat, IsTeam: r.IsTeam}
			if !r.IsTeam && r.IBUID != "" {
				bio, err := bios.get(gctx, r.IBUID)
				if err != nil {
					return fmt.Errorf("bio of %s: %w", r.IBUID, err)
				}
				c.ExtraData = bio
				if bio != nil {
					c.Gender = bio.GenderID
				}
			}
			competitors[i] = c
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	kept := competitors[:0]
	for _, c := range competitors {
		if c.IBUID != "" {
			kept = append(kept, c)
		}
	}
	if err := im.store.UpsertCompetitors(ctx, kept); err != nil {
		return 0, err
	}
	return len(kept), nil
}

// bioCache collapses concurrent and repeated fetches of one athlete's bio
// into a single provider call. It lives for one import run.
type bioCache struct {
	fetch func(ctx context.Context, ibuID string) (*biathlon.CompetitorBio, error)

	mu    sync.Mutex
	calls map[string]*bioCall
}

type bioCall struct {
	done chan struct{}
	bio  *biathlon.CompetitorBio
	err  error
}

func newBioCache(fetch func(ctx context.Context, ibuID string) (*biathlon.CompetitorBio, error)) *bioCache {
	return &bioCache{fetch: fetch, calls: make(map[string]*bioCall)}
}

func (c *bioCache) get(ctx context.Context, ibuID string) (*biathlon.CompetitorBio, error) {
	c.mu.Lock()
	call, ok := c.calls[ibuID]
	if !ok {
		call = &bioCall{done: make(chan struct{})}
		c.calls[ibuID] = call
	}
	c.mu.Unlock()

	if !ok {
		call.bio, call.err = c.fetch(ctx, ibuID)
		close(call.done)
		return call.bio, call.err
	}
	select {
	case <-call.done:
		return call.bio, call.err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *bioCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.calls)
}
