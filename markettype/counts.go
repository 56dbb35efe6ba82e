package markettype

import "github.com/padraicbc/biathlonpicks/biathlon"

// lapped counts relay teams or individual athletes pulled from the course.
type lapped struct {
	team bool
}

func (l lapped) Score(in Input) Outcome {
	n := len(filter(in.Results, func(r biathlon.Result) bool {
		if l.team {
			return r.IsTeamAggregate() && r.Result == biathlon.TimeLapped
		}
		return r.Result == biathlon.ResultLap
	}))
	return countMatch(in.Selections, n)
}

// teamsFinished counts relay teams that crossed the finish line.
type teamsFinished struct{}

func (teamsFinished) Score(in Input) Outcome {
	n := len(filter(in.Results, func(r biathlon.Result) bool {
		return r.IsTeamAggregate() && r.TotalTime != "" && r.TotalTime != biathlon.TimeLapped
	}))
	return countMatch(in.Selections, n)
}

// countryInTop counts a nation's athletes among the first n finishers.
type countryInTop struct {
	n   int
	nat string
}

func (c countryInTop) Score(in Input) Outcome {
	n := len(filter(top(byFinish(in.Results), c.n), fromNat(c.nat)))
	return countMatch(in.Selections, n)
}
