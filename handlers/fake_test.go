package handlers

import (
	"context"
	"fmt"

	"github.com/padraicbc/biathlonpicks/importer"
	"github.com/padraicbc/biathlonpicks/models"
	"github.com/padraicbc/biathlonpicks/resolution"
	"github.com/padraicbc/biathlonpicks/store"
)

type fakeStore struct {
	users   map[string]*models.User
	matches map[int64]*models.Match
	markets []models.Market
	nextID  int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   map[string]*models.User{},
		matches: map[int64]*models.Match{},
		nextID:  100,
	}
}

func (f *fakeStore) UserByUsername(_ context.Context, username string) (*models.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, fmt.Errorf("%w: user %s", store.ErrNotFound, username)
	}
	return u, nil
}

func (f *fakeStore) MatchByID(_ context.Context, matchID int64) (*models.Match, error) {
	m, ok := f.matches[matchID]
	if !ok {
		return nil, fmt.Errorf("%w: match %d", store.ErrNotFound, matchID)
	}
	return m, nil
}

func (f *fakeStore) MarketsByMatch(_ context.Context, matchID int64) ([]models.Market, error) {
	var out []models.Market
	for _, m := range f.markets {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeStore) CreateMarket(_ context.Context, m *models.Market) error {
	f.nextID++
	m.ID = f.nextID
	f.markets = append(f.markets, *m)
	return nil
}

type fakeResolver struct {
	ResolveFunc func(ctx context.Context, raceID string) (*resolution.Summary, error)
	calls       []string
}

func (f *fakeResolver) Resolve(ctx context.Context, raceID string) (*resolution.Summary, error) {
	f.calls = append(f.calls, raceID)
	return f.ResolveFunc(ctx, raceID)
}

type fakeSubmitter struct {
	SubmitFunc func(ctx context.Context, matchID int64, picks []models.Selection) ([]models.Selection, error)
	got        []models.Selection
}

func (f *fakeSubmitter) Submit(ctx context.Context, matchID int64, picks []models.Selection) ([]models.Selection, error) {
	f.got = picks
	return f.SubmitFunc(ctx, matchID, picks)
}

type fakeImporter struct {
	seasons []string
}

func (f *fakeImporter) ImportSchedule(_ context.Context, seasonID string) (*importer.ScheduleReport, error) {
	f.seasons = append(f.seasons, seasonID)
	return &importer.ScheduleReport{Categories: 1, Matches: 2, Markets: 6}, nil
}

func (f *fakeImporter) ImportCompetitors(_ context.Context, seasonID string) (*importer.RosterReport, error) {
	f.seasons = append(f.seasons, seasonID)
	return &importer.RosterReport{Events: 1, Competitors: 5, UniqueBios: 2}, nil
}

var (
	_ Store     = (*fakeStore)(nil)
	_ Resolver  = (*fakeResolver)(nil)
	_ Submitter = (*fakeSubmitter)(nil)
	_ Importer  = (*fakeImporter)(nil)
)
