package importer

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

type fakeProvider struct {
	events       []biathlon.Event
	competitions map[string][]biathlon.Competition
	results      map[string][]biathlon.Result

	bioDelay    time.Duration
	bioCalls    sync.Map // ibu id -> *atomic.Int32
	inFlight    atomic.Int32
	maxInFlight atomic.Int32
}

func (f *fakeProvider) Events(ctx context.Context, seasonID string) ([]biathlon.Event, error) {
	return f.events, nil
}

func (f *fakeProvider) Competitions(ctx context.Context, eventID string) ([]biathlon.Competition, error) {
	return f.competitions[eventID], nil
}

func (f *fakeProvider) Results(ctx context.Context, raceID string) (*biathlon.ResultResponse, error) {
	return &biathlon.ResultResponse{RaceID: raceID, Results: f.results[raceID]}, nil
}

func (f *fakeProvider) Competitor(ctx context.Context, ibuID string) (*biathlon.CompetitorBio, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.maxInFlight.Load()
		if n <= peak || f.maxInFlight.CompareAndSwap(peak, n) {
			break
		}
	}
	counter, _ := f.bioCalls.LoadOrStore(ibuID, new(atomic.Int32))
	counter.(*atomic.Int32).Add(1)

	if f.bioDelay > 0 {
		time.Sleep(f.bioDelay)
	}
	return &biathlon.CompetitorBio{
		IBUID:     ibuID,
		GenderID:  "W",
		Equipment: []biathlon.Equipment{{ID: biathlon.EquipmentSkis, Value: "Fischer"}},
	}, nil
}

func (f *fakeProvider) calls(ibuID string) int32 {
	v, ok := f.bioCalls.Load(ibuID)
	if !ok {
		return 0
	}
	return v.(*atomic.Int32).Load()
}

var _ Provider = (*fakeProvider)(nil)

type fakeStore struct {
	mu sync.Mutex

	categories  []models.Category
	matches     []models.Match
	markets     map[int64][]models.Market
	competitors []models.Competitor
	nextID      int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{markets: make(map[int64][]models.Market)}
}

func (f *fakeStore) UpsertCategory(ctx context.Context, c *models.Category) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	f.categories = append(f.categories, *c)
	return nil
}

func (f *fakeStore) UpsertMatch(ctx context.Context, m *models.Match) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.matches {
		if existing.BiathlonRaceID == m.BiathlonRaceID {
			m.ID = existing.ID
			return nil
		}
	}
	f.nextID++
	m.ID = f.nextID
	f.matches = append(f.matches, *m)
	return nil
}

func (f *fakeStore) EnsureMarkets(ctx context.Context, matchID int64, markets []models.Market) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	have := map[int]bool{}
	for _, m := range f.markets[matchID] {
		have[m.MarketTypeID] = true
	}
	created := 0
	for _, m := range markets {
		if have[m.MarketTypeID] {
			continue
		}
		m.MatchID = matchID
		f.markets[matchID] = append(f.markets[matchID], m)
		created++
	}
	return created, nil
}

func (f *fakeStore) UpsertCompetitors(ctx context.Context, competitors []models.Competitor) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.competitors = append(f.competitors, competitors...)
	return nil
}

var _ Store = (*fakeStore)(nil)
