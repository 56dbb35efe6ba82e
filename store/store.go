// Package store persists categories, matches, markets, selections and the
// competitor roster in PostgreSQL through bun.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"go.uber.org/zap"
)

// ErrNotFound is returned when a lookup matches no row.
var ErrNotFound = errors.New("store: not found")

const (
	batchSize    = 500
	writeRetries = 5
	retryBackoff = 100 * time.Millisecond
)

// Store implements the persistence interfaces of the resolution, selection
// and importer packages.
type Store struct {
	db     *bun.DB
	logger *zap.Logger
}

func New(db *bun.DB, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{db: db, logger: logger}
}

func notFound(err error, what string) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", ErrNotFound, what)
	}
	return err
}

// inTx runs fn in a transaction and retries the whole transaction a few
// times on failure. Writes issued through fn must be idempotent.
func (s *Store) inTx(ctx context.Context, op string, fn func(tx bun.Tx) error) error {
	var lastErr error
	for attempt := 0; attempt < writeRetries; attempt++ {
		lastErr = func() error {
			tx, err := s.db.BeginTx(ctx, nil)
			if err != nil {
				return err
			}
			committed := false
			defer func() {
				if !committed {
					_ = tx.Rollback()
				}
			}()

			if err := fn(tx); err != nil {
				return err
			}
			if err := tx.Commit(); err != nil {
				return err
			}
			committed = true
			return nil
		}()
		if lastErr == nil {
			return nil
		}
		if ctx.Err() != nil {
			return lastErr
		}
		s.logger.Warn("write failed, retrying",
			zap.String("op", op),
			zap.Int("attempt", attempt+1),
			zap.Error(lastErr),
		)
		select {
		case <-ctx.Done():
			return lastErr
		case <-time.After(retryBackoff):
		}
	}
	return fmt.Errorf("%s: %w", op, lastErr)
}
