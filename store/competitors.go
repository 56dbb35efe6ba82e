package store

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/padraicbc/biathlonpicks/models"
)

// Competitors loads the whole roster.
func (s *Store) Competitors(ctx context.Context) ([]models.Competitor, error) {
	var out []models.Competitor
	if err := s.db.NewSelect().Model(&out).Scan(ctx); err != nil {
		return nil, fmt.Errorf("load competitors: %w", err)
	}
	return out, nil
}

// UpsertCompetitors writes the roster keyed by IBU id. Later duplicates in
// the input win.
func (s *Store) UpsertCompetitors(ctx context.Context, competitors []models.Competitor) error {
	if len(competitors) == 0 {
		return nil
	}
	index := make(map[string]int, len(competitors))
	unique := make([]models.Competitor, 0, len(competitors))
	for _, c := range competitors {
		if i, ok := index[c.IBUID]; ok {
			unique[i] = c
			continue
		}
		index[c.IBUID] = len(unique)
		unique = append(unique, c)
	}

	return s.inTx(ctx, "upsert competitors", func(tx bun.Tx) error {
		for start := 0; start < len(unique); start += batchSize {
			chunk := unique[start:min(start+batchSize, len(unique))]
			_, err := tx.NewInsert().Model(&chunk).
				On("CONFLICT (ibu_id) DO UPDATE").
				Set("name = EXCLUDED.name").
				Set("nat = EXCLUDED.nat").
				Set("gender = EXCLUDED.gender").
				Set("is_team = EXCLUDED.is_team").
				Set("extra_data = EXCLUDED.extra_data").
				Exec(ctx)
			if err != nil {
				return err
			}
		}
		return nil
	})
}
