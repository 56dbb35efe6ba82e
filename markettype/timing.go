package markettype

import (
	"math"
	"strconv"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/racetime"
)

// openingLegWinner names the team whose first leg athlete led at the first
// exchange.
type openingLegWinner struct{}

func (openingLegWinner) Score(in Input) Outcome {
	leader, ok := find(in.Results, func(r biathlon.Result) bool {
		if leg, ok := r.LegNumber(); !ok || leg != 1 || r.Behind == "" {
			return false
		}
		behind, ok := racetime.ParseClockPrecise(r.Behind)
		return ok && behind == 0
	})
	if !ok {
		return notAvailable(in.Selections)
	}
	team, ok := find(in.Results, func(r biathlon.Result) bool {
		return r.IsTeamAggregate() && r.Nat == leader.Nat
	})
	if !ok {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, team.Name, 1)
}

// fastestLeg names the relay athlete with the quickest split. leg 0 means any leg.
type fastestLeg struct {
	leg int
}

func (f fastestLeg) Score(in Input) Outcome {
	best, ok := fastestSplit(racetime.LegSplits(in.Results), f.leg)
	if !ok {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, best.Name, 1)
}

func fastestSplit(splits []racetime.LegSplit, leg int) (racetime.LegSplit, bool) {
	var best racetime.LegSplit
	found := false
	for _, s := range splits {
		if leg != 0 && s.Leg != leg {
			continue
		}
		if !found || s.Seconds < best.Seconds {
			best, found = s, true
		}
	}
	return best, found
}

// behindWinner buckets the gap of a named athlete, or of a nation's best
// finisher when byNat is set, to the winner.
type behindWinner struct {
	value string
	byNat bool
}

func (b behindWinner) Score(in Input) Outcome {
	match := named(b.value)
	if b.byNat {
		match = fromNat(b.value)
	}
	row, ok := find(byFinish(in.Results), match)
	if !ok || row.Behind == "" {
		return notAvailable(in.Selections)
	}
	if _, ok := racetime.ParseClockPrecise(row.Behind); !ok {
		return notAvailable(in.Selections)
	}
	return bucketOutcome(in.Selections, racetime.ParseClock(row.Behind), row.Behind)
}

// openingLegDeficit buckets how far a nation's first leg athlete was behind
// the fastest first leg.
type openingLegDeficit struct {
	nat string
}

func (o openingLegDeficit) Score(in Input) Outcome {
	fastest, ok := fastestSplit(racetime.LegSplits(in.Results), 1)
	if !ok {
		return notAvailable(in.Selections)
	}
	row, ok := find(in.Results, func(r biathlon.Result) bool {
		leg, ok := r.LegNumber()
		return ok && leg == 1 && r.Nat == o.nat
	})
	if !ok {
		return notAvailable(in.Selections)
	}
	own, ok := racetime.ParseClockPrecise(row.TotalTime)
	if !ok {
		return notAvailable(in.Selections)
	}
	behind := math.Round((own-fastest.Seconds)*100) / 100
	return bucketOutcome(in.Selections, int(math.Round(behind)), formatSeconds(behind))
}

// deficitAtPlace buckets the gap of the team finishing at place.
type deficitAtPlace struct {
	place int
}

func (d deficitAtPlace) Score(in Input) Outcome {
	row, ok := find(in.Results, func(r biathlon.Result) bool {
		return r.IsTeamAggregate() && r.ResultOrder == d.place
	})
	if !ok {
		return notAvailable(in.Selections)
	}
	behind, ok := racetime.ParseClockPrecise(row.Behind)
	if !ok {
		return notAvailable(in.Selections)
	}
	return bucketOutcome(in.Selections, int(math.Round(behind)), row.Behind)
}

func formatSeconds(secs float64) string {
	return strconv.FormatFloat(secs, 'f', -1, 64)
}
