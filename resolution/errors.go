package resolution

import "errors"

var (
	// ErrNoResults means the provider has no results for the race yet.
	// Nothing is written; retry once the race is official.
	ErrNoResults = errors.New("resolution: race has no results")

	// ErrUnknownMarketType means a market references an id missing from the
	// catalog, which points at a deployment mismatch.
	ErrUnknownMarketType = errors.New("resolution: unknown market type")

	// ErrScoringPanic wraps a panic raised while scoring a market.
	ErrScoringPanic = errors.New("resolution: scoring panicked")
)
