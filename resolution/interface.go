package resolution

import (
	"context"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

// ResultFetcher reads race results from the provider. *biathlon.Client
// satisfies it.
type ResultFetcher interface {
	Results(ctx context.Context, raceID string) (*biathlon.ResultResponse, error)
	AnalyticResults(ctx context.Context, raceID string, analysis biathlon.AnalysisType) (*biathlon.ResultResponse, error)
}

// Store is the persistence the resolver needs. Both writes must be
// idempotent on their keys so a pass can be re-run.
type Store interface {
	MatchByRaceID(ctx context.Context, raceID string) (*models.Match, error)
	MarketsByMatch(ctx context.Context, matchID int64) ([]models.Market, error)
	SelectionsByMarket(ctx context.Context, marketID int64) ([]models.Selection, error)
	Competitors(ctx context.Context) ([]models.Competitor, error)
	SetMarketResult(ctx context.Context, marketID int64, result string) error
	UpsertSelections(ctx context.Context, selections []models.Selection) error
}
