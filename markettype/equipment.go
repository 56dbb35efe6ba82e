package markettype

import (
	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
)

// bestOnSkis names the best finisher racing on a ski brand.
type bestOnSkis struct {
	brand string
}

func (b bestOnSkis) Score(in Input) Outcome {
	roster := rosterByIBU(in.Roster)
	row, ok := find(byFinish(in.Results), func(r biathlon.Result) bool {
		return onBrand(roster, r, b.brand)
	})
	if !ok {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, row.Name, 1)
}

// skisOnPodium counts distinct podium athletes racing on a ski brand.
type skisOnPodium struct {
	brand string
}

func (s skisOnPodium) Score(in Input) Outcome {
	roster := rosterByIBU(in.Roster)
	seen := make(map[string]bool)
	for _, r := range in.Results {
		if r.IsTeam || r.ResultOrder < 1 || r.ResultOrder > 3 || seen[r.IBUID] {
			continue
		}
		if onBrand(roster, r, s.brand) {
			seen[r.IBUID] = true
		}
	}
	return countMatch(in.Selections, len(seen))
}

func onBrand(roster map[string]*models.Competitor, r biathlon.Result, brand string) bool {
	c, ok := roster[r.IBUID]
	if !ok {
		return false
	}
	skis, ok := c.SkiBrand()
	return ok && skis == brand
}
