package resolution

import (
	"context"
	"sync"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

// FakeStore is an in-memory Store that records the calls made to it.
type FakeStore struct {
	mu    sync.Mutex
	trace []string

	Match      *models.Match
	Markets    []models.Market
	Selections map[int64][]models.Selection
	Roster     []models.Competitor

	Results  map[int64]string
	Upserted [][]models.Selection

	SetMarketResultFunc  func(ctx context.Context, marketID int64, result string) error
	UpsertSelectionsFunc func(ctx context.Context, selections []models.Selection) error
}

func NewFakeStore(match *models.Match, markets ...models.Market) *FakeStore {
	return &FakeStore{
		Match:      match,
		Markets:    markets,
		Selections: make(map[int64][]models.Selection),
		Results:    make(map[int64]string),
	}
}

func (f *FakeStore) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

// Trace returns the sequence of method calls made to the fake.
func (f *FakeStore) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *FakeStore) count(step string) int {
	n := 0
	for _, s := range f.Trace() {
		if s == step {
			n++
		}
	}
	return n
}

func (f *FakeStore) MatchByRaceID(ctx context.Context, raceID string) (*models.Match, error) {
	f.record("MatchByRaceID")
	return f.Match, nil
}

func (f *FakeStore) MarketsByMatch(ctx context.Context, matchID int64) ([]models.Market, error) {
	f.record("MarketsByMatch")
	return f.Markets, nil
}

func (f *FakeStore) SelectionsByMarket(ctx context.Context, marketID int64) ([]models.Selection, error) {
	f.record("SelectionsByMarket")
	return append([]models.Selection(nil), f.Selections[marketID]...), nil
}

func (f *FakeStore) Competitors(ctx context.Context) ([]models.Competitor, error) {
	f.record("Competitors")
	return f.Roster, nil
}

func (f *FakeStore) SetMarketResult(ctx context.Context, marketID int64, result string) error {
	f.record("SetMarketResult")
	if f.SetMarketResultFunc != nil {
		return f.SetMarketResultFunc(ctx, marketID, result)
	}
	f.mu.Lock()
	f.Results[marketID] = result
	f.mu.Unlock()
	return nil
}

func (f *FakeStore) UpsertSelections(ctx context.Context, selections []models.Selection) error {
	f.record("UpsertSelections")
	if f.UpsertSelectionsFunc != nil {
		return f.UpsertSelectionsFunc(ctx, selections)
	}
	f.mu.Lock()
	f.Upserted = append(f.Upserted, selections)
	f.mu.Unlock()
	return nil
}

var _ Store = (*FakeStore)(nil)

// FakeFetcher serves canned provider responses.
type FakeFetcher struct {
	mu    sync.Mutex
	trace []string

	Primary  *biathlon.ResultResponse
	Analysis map[biathlon.AnalysisType]*biathlon.ResultResponse
	Err      error
}

func (f *FakeFetcher) record(step string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.trace = append(f.trace, step)
}

func (f *FakeFetcher) Trace() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.trace...)
}

func (f *FakeFetcher) Results(ctx context.Context, raceID string) (*biathlon.ResultResponse, error) {
	f.record("Results")
	return f.Primary, f.Err
}

func (f *FakeFetcher) AnalyticResults(ctx context.Context, raceID string, analysis biathlon.AnalysisType) (*biathlon.ResultResponse, error) {
	f.record("AnalyticResults:" + string(analysis))
	return f.Analysis[analysis], f.Err
}

var _ ResultFetcher = (*FakeFetcher)(nil)
