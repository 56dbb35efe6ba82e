package markettype

import (
	"strconv"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/racetime"
)

// placeGuess scores a guessed finishing place of a named entry. Within one
// place always scores 3; within three places scores 3 only for individuals.
type placeGuess struct {
	name string
	team bool
}

func (p placeGuess) Score(in Input) Outcome {
	row, ok := find(in.Results, named(p.name))
	if !ok {
		return notAvailable(in.Selections)
	}
	actual, ok := racetime.Rank(row.Rank)
	if !ok {
		return notAvailable(in.Selections)
	}
	return closeTo(in.Selections, actual, func(diff int) int {
		switch {
		case diff <= 1:
			return 3
		case diff <= 3 && !p.team:
			return 3
		}
		return 0
	})
}

// bestFromCountries picks the fastest entry from a set of nations. With
// place set, players guess its finishing order instead of its name.
type bestFromCountries struct {
	countries []string
	team      bool
	place     bool
}

func (b bestFromCountries) Score(in Input) Outcome {
	nats := set(b.countries...)
	pool := filter(in.Results, func(r biathlon.Result) bool {
		return nats[r.Nat] && r.IsTeam == b.team
	})
	if len(pool) == 0 {
		return notAvailable(in.Selections)
	}
	best := byTime(pool)[0]
	if !b.place {
		return exactMatch(in.Selections, best.Name, 1)
	}
	if best.ResultOrder <= 0 {
		return notAvailable(in.Selections)
	}
	hit := 3
	if b.team {
		hit = 1
	}
	return closeTo(in.Selections, best.ResultOrder, func(diff int) int {
		if diff < 4 {
			return hit
		}
		return 0
	})
}

// bestOutsideCountries names the best finisher not from the excluded nations.
type bestOutsideCountries struct {
	excluded []string
}

func (b bestOutsideCountries) Score(in Input) Outcome {
	skip := set(b.excluded...)
	pool := filter(in.Results, func(r biathlon.Result) bool { return !skip[r.Nat] })
	if len(pool) == 0 {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, byFinish(pool)[0].Name, 1)
}

// placeChange is the finish order minus the start order of a named athlete.
type placeChange struct {
	name string
}

func (p placeChange) Score(in Input) Outcome {
	row, ok := find(in.Results, named(p.name))
	if !ok || row.ResultOrder <= 0 {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, strconv.Itoa(row.ResultOrder-row.StartOrder), 3)
}

// finalRank is the published rank of a named athlete.
type finalRank struct {
	name string
}

func (f finalRank) Score(in Input) Outcome {
	row, ok := find(in.Results, named(f.name))
	if !ok || row.Rank == "" {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, row.Rank, 3)
}

// nthFromCountry finds the nth ranked athlete of a nation.
func nthFromCountry(rows []biathlon.Result, n int, nat string) (biathlon.Result, bool) {
	pool := byRank(filter(rows, fromNat(nat)))
	if n < 1 || n > len(pool) {
		return biathlon.Result{}, false
	}
	return pool[n-1], true
}

type nthFromCountryName struct {
	n   int
	nat string
}

func (x nthFromCountryName) Score(in Input) Outcome {
	row, ok := nthFromCountry(in.Results, x.n, x.nat)
	if !ok {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, row.Name, 1)
}

// nthFromCountryPlace scores a guess of the overall place of a nation's nth
// athlete. Mass starts and relays allow one place of slack, others three.
type nthFromCountryPlace struct {
	n   int
	nat string
}

func (x nthFromCountryPlace) Score(in Input) Outcome {
	row, ok := nthFromCountry(in.Results, x.n, x.nat)
	if !ok || row.ResultOrder <= 0 {
		return notAvailable(in.Selections)
	}
	slack := placeSlack(in.Discipline)
	return closeTo(in.Selections, row.ResultOrder, func(diff int) int {
		if diff <= slack {
			return 3
		}
		return 0
	})
}

func placeSlack(discipline string) int {
	switch discipline {
	case biathlon.DisciplineSingleMixedRelay, biathlon.DisciplineRelay, biathlon.DisciplineMassStart:
		return 1
	}
	return 3
}

// placeVersusBib answers whether a nation finished higher than it started.
type placeVersusBib struct {
	nat string
}

func (p placeVersusBib) Score(in Input) Outcome {
	pool := filter(in.Results, fromNat(p.nat))
	if len(pool) == 0 {
		return notAvailable(in.Selections)
	}
	row := pool[0]
	if team, ok := find(pool, func(r biathlon.Result) bool { return r.IsTeam }); ok {
		row = team
	}
	bib, ok := racetime.LeadingInt(row.Bib)
	if !ok || row.ResultOrder <= 0 {
		return notAvailable(in.Selections)
	}

	answer := AnswerEqual
	switch diff := row.ResultOrder - bib; {
	case diff > 0:
		answer = AnswerNo
	case diff < 0:
		answer = AnswerYes
	}
	return exactMatch(in.Selections, answer, 1)
}

// bestPenaltyLapTeamPlace guesses the place of the best team that had to
// ski at least one penalty loop.
type bestPenaltyLapTeamPlace struct{}

func (bestPenaltyLapTeamPlace) Score(in Input) Outcome {
	pool := filter(in.Results, func(r biathlon.Result) bool {
		return r.IsTeam && r.ShootingTotal != "" && r.ResultOrder > 0 && racetime.Misses(r.ShootingTotal) != 0
	})
	if len(pool) == 0 {
		return notAvailable(in.Selections)
	}
	best := byFinish(pool)[0]
	return closeTo(in.Selections, best.ResultOrder, func(diff int) int {
		if diff <= 1 {
			return 3
		}
		return 0
	})
}
