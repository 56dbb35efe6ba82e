package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/padraicbc/biathlonpicks/models"
)

func (s *Store) SelectionsByMarket(ctx context.Context, marketID int64) ([]models.Selection, error) {
	var sels []models.Selection
	err := s.db.NewSelect().Model(&sels).
		Where("sel.market_id = ?", marketID).
		OrderExpr("sel.profile_id").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("selections of market %d: %w", marketID, err)
	}
	return sels, nil
}

// SelectionsForProfiles returns what the given profiles already picked on
// the given markets.
func (s *Store) SelectionsForProfiles(ctx context.Context, marketIDs []int64, profileIDs []uuid.UUID) ([]models.Selection, error) {
	if len(marketIDs) == 0 || len(profileIDs) == 0 {
		return nil, nil
	}
	var sels []models.Selection
	err := s.db.NewSelect().Model(&sels).
		Where("sel.market_id IN (?)", bun.In(marketIDs)).
		Where("sel.profile_id IN (?)", bun.In(profileIDs)).
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("stored selections: %w", err)
	}
	return sels, nil
}

// UpsertSelections writes selections keyed by (market_id, profile_id) in one
// transaction.
func (s *Store) UpsertSelections(ctx context.Context, selections []models.Selection) error {
	if len(selections) == 0 {
		return nil
	}
	return s.inTx(ctx, "upsert selections", func(tx bun.Tx) error {
		for start := 0; start < len(selections); start += batchSize {
			chunk := selections[start:min(start+batchSize, len(selections))]
			_, err := tx.NewInsert().Model(&chunk).
				On("CONFLICT (market_id, profile_id) DO UPDATE").
				Set("result_key = EXCLUDED.result_key").
				Set("type = EXCLUDED.type").
				Set("points = EXCLUDED.points").
				Set("updated_at = now()").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
