// Package importer copies the provider's calendar and athlete roster into the
// database.
package importer

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/models"
)

// Provider is the part of the sport API the importer reads.
type Provider interface {
	Events(ctx context.Context, seasonID string) ([]biathlon.Event, error)
	Competitions(ctx context.Context, eventID string) ([]biathlon.Competition, error)
	Results(ctx context.Context, raceID string) (*biathlon.ResultResponse, error)
	Competitor(ctx context.Context, ibuID string) (*biathlon.CompetitorBio, error)
}

// Store is the persistence the importer writes to.
type Store interface {
	UpsertCategory(ctx context.Context, c *models.Category) error
	UpsertMatch(ctx context.Context, m *models.Match) error
	EnsureMarkets(ctx context.Context, matchID int64, markets []models.Market) (int, error)
	UpsertCompetitors(ctx context.Context, competitors []models.Competitor) error
}

// Limits caps concurrent provider work at each level of the fan-out.
type Limits struct {
	Events       int
	Competitions int
	Competitors  int
}

// DefaultLimits keeps the importer well inside the provider's tolerance.
var DefaultLimits = Limits{Events: 2, Competitions: 5, Competitors: 50}

type Importer struct {
	provider Provider
	store    Store
	catalog  *markettype.Catalog
	limits   Limits
	logger   *zap.Logger
}

func New(provider Provider, store Store, catalog *markettype.Catalog, limits Limits, logger *zap.Logger) *Importer {
	if catalog == nil {
		catalog = markettype.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if limits.Events <= 0 {
		limits.Events = DefaultLimits.Events
	}
	if limits.Competitions <= 0 {
		limits.Competitions = DefaultLimits.Competitions
	}
	if limits.Competitors <= 0 {
		limits.Competitors = DefaultLimits.Competitors
	}
	return &Importer{provider: provider, store: store, catalog: catalog, limits: limits, logger: logger}
}

// Only senior categories are offered to players.
var seniorCategories = map[string]string{
	"SW": "W",
	"SM": "M",
	"MX": "X",
}

func gender(catID string) (string, bool) {
	g, ok := seniorCategories[catID]
	return g, ok
}

var timeLayouts = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}

func parseTime(value string) (time.Time, error) {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised time %q", value)
}
