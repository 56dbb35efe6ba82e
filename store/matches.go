package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/biathlonpicks/models"
)

// UpsertCategory inserts or refreshes a category keyed by its provider event
// id and fills in its database id.
func (s *Store) UpsertCategory(ctx context.Context, c *models.Category) error {
	_, err := s.db.NewInsert().Model(c).
		On("CONFLICT (biathlon_event_id) DO UPDATE").
		Set("name = EXCLUDED.name").
		Set("location = EXCLUDED.location").
		Set("start_time = EXCLUDED.start_time").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert category %s: %w", c.BiathlonEventID, err)
	}
	return nil
}

// UpsertMatch inserts or refreshes a match keyed by its provider race id and
// fills in its database id.
func (s *Store) UpsertMatch(ctx context.Context, m *models.Match) error {
	_, err := s.db.NewInsert().Model(m).
		On("CONFLICT (biathlon_race_id) DO UPDATE").
		Set("category_id = EXCLUDED.category_id").
		Set("name = EXCLUDED.name").
		Set("discipline = EXCLUDED.discipline").
		Set("gender = EXCLUDED.gender").
		Set("is_team = EXCLUDED.is_team").
		Set("start_time = EXCLUDED.start_time").
		Returning("id").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert match %s: %w", m.BiathlonRaceID, err)
	}
	return nil
}

func (s *Store) MatchByID(ctx context.Context, matchID int64) (*models.Match, error) {
	m := new(models.Match)
	if err := s.db.NewSelect().Model(m).Where("mt.id = ?", matchID).Scan(ctx); err != nil {
		return nil, notFound(err, fmt.Sprintf("match %d", matchID))
	}
	return m, nil
}

func (s *Store) MatchByRaceID(ctx context.Context, raceID string) (*models.Match, error) {
	m := new(models.Match)
	if err := s.db.NewSelect().Model(m).Where("mt.biathlon_race_id = ?", raceID).Scan(ctx); err != nil {
		return nil, notFound(err, "match for race "+raceID)
	}
	return m, nil
}

// FinishedMatchRaceIDs lists race ids of matches that started before the
// given number of hours ago and still have unresolved markets.
func (s *Store) FinishedMatchRaceIDs(ctx context.Context, olderThanHours int) ([]string, error) {
	var ids []string
	err := s.db.NewSelect().
		TableExpr("matches AS mt").
		ColumnExpr("DISTINCT mt.biathlon_race_id").
		Join("JOIN markets AS mk ON mk.match_id = mt.id").
		Where("mk.result IS NULL").
		Where("mt.start_time < now() - make_interval(hours => ?)", olderThanHours).
		OrderExpr("mt.biathlon_race_id").
		Scan(ctx, &ids)
	if err != nil {
		return nil, fmt.Errorf("list finished matches: %w", err)
	}
	return ids, nil
}

func (s *Store) MarketsByMatch(ctx context.Context, matchID int64) ([]models.Market, error) {
	var markets []models.Market
	err := s.db.NewSelect().Model(&markets).
		Where("mk.match_id = ?", matchID).
		OrderExpr("mk.id").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("markets of match %d: %w", matchID, err)
	}
	return markets, nil
}

// CreateMarket stores a market created by an admin.
func (s *Store) CreateMarket(ctx context.Context, m *models.Market) error {
	if _, err := s.db.NewInsert().Model(m).Returning("id").Exec(ctx); err != nil {
		return fmt.Errorf("create market: %w", err)
	}
	return nil
}

// EnsureMarkets inserts the markets whose type is not yet present on their
// match. Re-importing a race therefore never duplicates default markets.
func (s *Store) EnsureMarkets(ctx context.Context, matchID int64, markets []models.Market) (int, error) {
	created := 0
	err := s.inTx(ctx, "ensure markets", func(tx bun.Tx) error {
		created = 0
		var existing []int
		err := tx.NewSelect().
			TableExpr("markets").
			ColumnExpr("market_type_id").
			Where("match_id = ?", matchID).
			Scan(ctx, &existing)
		if err != nil {
			return err
		}
		have := make(map[int]bool, len(existing))
		for _, id := range existing {
			have[id] = true
		}

		var missing []models.Market
		for _, m := range markets {
			if !have[m.MarketTypeID] {
				m.MatchID = matchID
				missing = append(missing, m)
				have[m.MarketTypeID] = true
			}
		}
		if len(missing) == 0 {
			return nil
		}
		if _, err := tx.NewInsert().Model(&missing).Exec(ctx); err != nil {
			return err
		}
		created = len(missing)
		return nil
	})
	return created, err
}

func (s *Store) SetMarketResult(ctx context.Context, marketID int64, result string) error {
	res, err := s.db.NewUpdate().
		Model((*models.Market)(nil)).
		Set("result = ?", result).
		Where("id = ?", marketID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set result of market %d: %w", marketID, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: market %d", ErrNotFound, marketID)
	}
	return nil
}
