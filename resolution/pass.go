package resolution

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/markettype"
	"github.com/padraicbc/biathlonpicks/models"
)

// pass caches what one resolution run fetches lazily: analysis rankings per
// type and the competitor roster. A new pass starts empty.
type pass struct {
	raceID     string
	discipline string
	primary    []biathlon.Result
	fetcher    ResultFetcher
	store      Store
	logger     *zap.Logger

	analysis map[biathlon.AnalysisType][]biathlon.Result
	roster   []models.Competitor
	rostered bool
}

func newPass(raceID, discipline string, primary []biathlon.Result, fetcher ResultFetcher, store Store, logger *zap.Logger) *pass {
	return &pass{
		raceID:     raceID,
		discipline: discipline,
		primary:    primary,
		fetcher:    fetcher,
		store:      store,
		logger:     logger,
		analysis:   make(map[biathlon.AnalysisType][]biathlon.Result),
	}
}

func (p *pass) input(ctx context.Context, def markettype.Definition, selections []models.Selection) (markettype.Input, error) {
	in := markettype.Input{Results: p.primary, Selections: selections}

	if def.NeedsAnalysis() {
		results, err := p.analysisResults(ctx, def.Analysis)
		if err != nil {
			return in, err
		}
		in.Results = results
	}
	if def.NeedsRoster {
		roster, err := p.competitors(ctx)
		if err != nil {
			return in, err
		}
		in.Roster = roster
	}
	if def.NeedsDiscipline {
		in.Discipline = p.discipline
	}
	return in, nil
}

func (p *pass) analysisResults(ctx context.Context, t biathlon.AnalysisType) ([]biathlon.Result, error) {
	if results, ok := p.analysis[t]; ok {
		return results, nil
	}
	res, err := p.fetcher.AnalyticResults(ctx, p.raceID, t)
	if err != nil {
		return nil, fmt.Errorf("fetch %s ranking: %w", t, err)
	}
	var results []biathlon.Result
	if res != nil {
		results = res.Results
	}
	if len(results) == 0 {
		p.logger.Warn("analysis ranking is empty", zap.String("analysis", string(t)))
	}
	p.analysis[t] = results
	return results, nil
}

func (p *pass) competitors(ctx context.Context) ([]models.Competitor, error) {
	if p.rostered {
		return p.roster, nil
	}
	roster, err := p.store.Competitors(ctx)
	if err != nil {
		return nil, fmt.Errorf("load competitor roster: %w", err)
	}
	p.roster, p.rostered = roster, true
	return roster, nil
}
