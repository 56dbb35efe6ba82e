package selection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraicbc/biathlonpicks/models"
)

type fakeStore struct {
	trace []string

	match    *models.Match
	markets  []models.Market
	stored   []models.Selection
	upserted []models.Selection

	lastMarketIDs []int64
}

func (f *fakeStore) record(step string) { f.trace = append(f.trace, step) }

func (f *fakeStore) MatchByID(ctx context.Context, matchID int64) (*models.Match, error) {
	f.record("MatchByID")
	return f.match, nil
}

func (f *fakeStore) MarketsByMatch(ctx context.Context, matchID int64) ([]models.Market, error) {
	f.record("MarketsByMatch")
	return f.markets, nil
}

func (f *fakeStore) SelectionsForProfiles(ctx context.Context, marketIDs []int64, profileIDs []uuid.UUID) ([]models.Selection, error) {
	f.record("SelectionsForProfiles")
	f.lastMarketIDs = marketIDs
	return f.stored, nil
}

func (f *fakeStore) UpsertSelections(ctx context.Context, selections []models.Selection) error {
	f.record("UpsertSelections")
	f.upserted = append(f.upserted, selections...)
	return nil
}

var _ Store = (*fakeStore)(nil)

var raceStart = time.Date(2024, 12, 1, 12, 0, 0, 0, time.UTC)

func newGuard(store *fakeStore, now time.Time) *Guard {
	g := NewGuard(store, nil)
	g.now = func() time.Time { return now }
	return g
}

func testStore() *fakeStore {
	return &fakeStore{
		match: &models.Match{ID: 9, StartTime: raceStart},
		markets: []models.Market{
			{ID: 11, MatchID: 9, MarketTypeID: 1, InputKind: models.InputTeam},
			{ID: 12, MatchID: 9, MarketTypeID: 2, InputKind: models.InputTeam},
			{ID: 31, MatchID: 9, MarketTypeID: 5, InputKind: models.InputNumber},
		},
	}
}

func TestSubmitStoresDecoratedPicks(t *testing.T) {
	store := testStore()
	points := 3
	picks := []models.Selection{
		{MarketID: 11, ProfileID: ann, ResultKey: " NORWAY ", Points: &points},
		{MarketID: 31, ProfileID: ann, ResultKey: "4"},
	}

	got, err := newGuard(store, raceStart.Add(-time.Hour)).Submit(context.Background(), 9, picks)
	require.NoError(t, err)

	require.Len(t, got, 2)
	assert.Equal(t, "NORWAY", got[0].ResultKey)
	assert.Equal(t, models.InputTeam, got[0].Type)
	assert.Nil(t, got[0].Points)
	assert.Equal(t, models.InputNumber, got[1].Type)
	assert.Equal(t, got, store.upserted)
	assert.Equal(t, []int64{11, 12}, store.lastMarketIDs)
}

func TestSubmitRejectsConflicts(t *testing.T) {
	store := testStore()
	picks := []models.Selection{
		{MarketID: 11, ProfileID: ann, ResultKey: "ESTONIA"},
		{MarketID: 12, ProfileID: ann, ResultKey: "ESTONIA"},
	}

	_, err := newGuard(store, raceStart.Add(-time.Hour)).Submit(context.Background(), 9, picks)
	require.ErrorIs(t, err, ErrConflictingSelections)
	assert.NotContains(t, store.trace, "UpsertSelections")
}

func TestSubmitRejectsConflictWithStoredPick(t *testing.T) {
	store := testStore()
	store.stored = []models.Selection{{MarketID: 12, ProfileID: ann, ResultKey: "ESTONIA"}}

	_, err := newGuard(store, raceStart.Add(-time.Hour)).Submit(context.Background(), 9,
		[]models.Selection{{MarketID: 11, ProfileID: ann, ResultKey: "ESTONIA"}})
	require.ErrorIs(t, err, ErrConflictingSelections)
}

func TestSubmitAfterStart(t *testing.T) {
	store := testStore()
	_, err := newGuard(store, raceStart).Submit(context.Background(), 9,
		[]models.Selection{{MarketID: 31, ProfileID: ann, ResultKey: "4"}})
	require.ErrorIs(t, err, ErrMatchStarted)
	assert.Equal(t, []string{"MatchByID"}, store.trace)
}

func TestSubmitValidation(t *testing.T) {
	store := testStore()
	g := newGuard(store, raceStart.Add(-time.Minute))

	_, err := g.Submit(context.Background(), 9, nil)
	assert.ErrorIs(t, err, ErrEmptySubmission)

	_, err = g.Submit(context.Background(), 9, []models.Selection{{MarketID: 99, ProfileID: ann, ResultKey: "x"}})
	assert.ErrorIs(t, err, ErrMarketNotInMatch)

	_, err = g.Submit(context.Background(), 9, []models.Selection{{MarketID: 31, ProfileID: ann, ResultKey: "  "}})
	assert.ErrorIs(t, err, ErrEmptyAnswer)

	assert.Empty(t, store.upserted)
}
