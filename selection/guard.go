// Package selection accepts player picks and keeps podium picks consistent.
package selection

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/models"
)

// Store is the persistence the guard needs.
type Store interface {
	MatchByID(ctx context.Context, matchID int64) (*models.Match, error)
	MarketsByMatch(ctx context.Context, matchID int64) ([]models.Market, error)
	SelectionsForProfiles(ctx context.Context, marketIDs []int64, profileIDs []uuid.UUID) ([]models.Selection, error)
	UpsertSelections(ctx context.Context, selections []models.Selection) error
}

// Guard validates and stores submissions.
type Guard struct {
	store  Store
	logger *zap.Logger
	now    func() time.Time
}

func NewGuard(store Store, logger *zap.Logger) *Guard {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guard{store: store, logger: logger, now: time.Now}
}

// Submit stores a batch of picks for one match. The whole batch is rejected
// if any pick is invalid. Accepted picks are returned with their input kind
// set from the market and points cleared.
func (g *Guard) Submit(ctx context.Context, matchID int64, picks []models.Selection) ([]models.Selection, error) {
	if len(picks) == 0 {
		return nil, ErrEmptySubmission
	}

	match, err := g.store.MatchByID(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load match %d: %w", matchID, err)
	}
	if match.Started(g.now()) {
		return nil, fmt.Errorf("%w: match %d started at %s", ErrMatchStarted, matchID, match.StartTime.Format(time.RFC3339))
	}

	markets, err := g.store.MarketsByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("load markets of match %d: %w", matchID, err)
	}
	typeOf := make(map[int64]int, len(markets))
	kindOf := make(map[int64]models.InputKind, len(markets))
	for _, m := range markets {
		typeOf[m.ID] = m.MarketTypeID
		kindOf[m.ID] = m.InputKind
	}

	accepted := make([]models.Selection, 0, len(picks))
	profiles := make(map[uuid.UUID]bool)
	for _, p := range picks {
		if _, ok := typeOf[p.MarketID]; !ok {
			return nil, fmt.Errorf("%w: market %d, match %d", ErrMarketNotInMatch, p.MarketID, matchID)
		}
		p.ResultKey = strings.TrimSpace(p.ResultKey)
		if p.ResultKey == "" {
			return nil, fmt.Errorf("%w: market %d", ErrEmptyAnswer, p.MarketID)
		}
		p.Type = kindOf[p.MarketID]
		p.Points = nil
		accepted = append(accepted, p)
		profiles[p.ProfileID] = true
	}

	var stored []models.Selection
	if grouped := groupedMarkets(markets); len(grouped) > 0 {
		ids := make([]uuid.UUID, 0, len(profiles))
		for id := range profiles {
			ids = append(ids, id)
		}
		stored, err = g.store.SelectionsForProfiles(ctx, grouped, ids)
		if err != nil {
			return nil, fmt.Errorf("load stored podium picks: %w", err)
		}
	}
	if err := Check(accepted, stored, typeOf); err != nil {
		g.logger.Info("submission rejected", zap.Int64("match_id", matchID), zap.Error(err))
		return nil, err
	}

	if err := g.store.UpsertSelections(ctx, accepted); err != nil {
		return nil, fmt.Errorf("store selections: %w", err)
	}
	g.logger.Debug("selections stored", zap.Int64("match_id", matchID), zap.Int("count", len(accepted)))
	return accepted, nil
}

func groupedMarkets(markets []models.Market) []int64 {
	var ids []int64
	for _, m := range markets {
		if _, ok := markettype.GroupOf(m.MarketTypeID); ok {
			ids = append(ids, m.ID)
		}
	}
	return ids
}
