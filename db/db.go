package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/config"
	"github.com/padraicbc/biathlonpicks/models"
)

// Setup opens a PostgreSQL connection using the provided config.
func Setup(ctx context.Context, cfg *config.Config) (*bun.DB, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(cfg.PostgresDSN())))
	db := bun.NewDB(sqldb, pgdialect.New())

	if cfg.Debug {
		db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithVerbose(true)))
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	return db, nil
}

// Tables lists every model in dependency order.
func Tables() []interface{} {
	return []interface{}{
		(*models.User)(nil),
		(*models.Category)(nil),
		(*models.Match)(nil),
		(*models.Market)(nil),
		(*models.Selection)(nil),
		(*models.Competitor)(nil),
	}
}

var constraints = []string{
	`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'matches_category_fk') THEN ALTER TABLE matches ADD CONSTRAINT matches_category_fk FOREIGN KEY (category_id) REFERENCES categories (id) ON DELETE CASCADE; END IF; END $$`,
	`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'markets_match_fk') THEN ALTER TABLE markets ADD CONSTRAINT markets_match_fk FOREIGN KEY (match_id) REFERENCES matches (id) ON DELETE CASCADE; END IF; END $$`,
	`DO $$ BEGIN IF NOT EXISTS (SELECT 1 FROM pg_constraint WHERE conname = 'selections_market_fk') THEN ALTER TABLE selections ADD CONSTRAINT selections_market_fk FOREIGN KEY (market_id) REFERENCES markets (id) ON DELETE CASCADE; END IF; END $$`,
}

var indexes = []string{
	`CREATE INDEX IF NOT EXISTS markets_match_idx ON markets (match_id, market_type_id)`,
	`CREATE INDEX IF NOT EXISTS selections_profile_idx ON selections (profile_id)`,
	`CREATE INDEX IF NOT EXISTS matches_start_idx ON matches (start_time)`,
}

// CreateTables creates all tables in dependency order, then adds the foreign
// keys and indexes. Constraint failures are logged and skipped so an older
// schema with hand-made constraints still starts.
func CreateTables(ctx context.Context, db *bun.DB, logger *zap.Logger) error {
	for _, model := range Tables() {
		if _, err := db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("creating table for %T: %w", model, err)
		}
	}

	for _, stmt := range constraints {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			logger.Warn("constraint", zap.Error(err))
		}
	}
	for _, stmt := range indexes {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("creating index: %w", err)
		}
	}

	return nil
}
