package markettype

import (
	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/racetime"
)

// leastPenalties finds who needed the fewest extra shots (relay teams, from
// the spare-round half of the tally) or the fewest penalties (individuals).
// Every tied name is a correct answer.
type leastPenalties struct {
	team bool
}

func (l leastPenalties) Score(in Input) Outcome {
	totals := make(map[string]int)
	var names []string
	for _, r := range in.Results {
		if r.ShootingTotal == "" || r.Name == "" {
			continue
		}
		var n int
		if l.team {
			if !r.IsTeamAggregate() {
				continue
			}
			n, _ = racetime.SpareRounds(r.ShootingTotal)
		} else {
			n = racetime.IntOrZero(r.ShootingTotal)
		}
		if _, seen := totals[r.Name]; !seen {
			names = append(names, r.Name)
		}
		totals[r.Name] += n
	}
	if len(names) == 0 {
		return notAvailable(in.Selections)
	}

	low := totals[names[0]]
	for _, name := range names[1:] {
		low = min(low, totals[name])
	}
	var tied []string
	for _, name := range names {
		if totals[name] == low {
			tied = append(tied, name)
		}
	}
	return anyMatch(in.Selections, tied, 1)
}

// spareRounds is the number of spare rounds a named athlete loaded.
type spareRounds struct {
	name string
}

func (s spareRounds) Score(in Input) Outcome {
	row, ok := find(in.Results, named(s.name))
	if !ok {
		return notAvailable(in.Selections)
	}
	n, ok := racetime.SpareRounds(row.ShootingTotal)
	if !ok {
		return notAvailable(in.Selections)
	}
	return countMatch(in.Selections, n)
}

// teamSpareRounds is spareRounds for a nation's relay team row.
type teamSpareRounds struct {
	nat string
}

func (s teamSpareRounds) Score(in Input) Outcome {
	row, ok := find(in.Results, func(r biathlon.Result) bool { return r.Nat == s.nat && r.IsTeam })
	if !ok {
		return notAvailable(in.Selections)
	}
	n, ok := racetime.SpareRounds(row.ShootingTotal)
	if !ok {
		return notAvailable(in.Selections)
	}
	return countMatch(in.Selections, n)
}

// penaltyTotal sums the penalties of the named athletes. Absent athletes
// contribute nothing; if none of them raced there is no answer.
type penaltyTotal struct {
	names []string
}

func (p penaltyTotal) Score(in Input) Outcome {
	want := set(p.names...)
	rows := filter(in.Results, func(r biathlon.Result) bool { return want[r.Name] })
	if len(rows) == 0 {
		return notAvailable(in.Selections)
	}
	return countMatch(in.Selections, sumMisses(rows))
}

// zeroPenalties counts the athletes who shot clean.
type zeroPenalties struct{}

func (zeroPenalties) Score(in Input) Outcome {
	n := len(filter(in.Results, func(r biathlon.Result) bool { return r.ShootingTotal == "0" }))
	return countMatch(in.Selections, n)
}

// podiumPenaltySum sums the penalties of the top three ranked athletes.
type podiumPenaltySum struct{}

func (podiumPenaltySum) Score(in Input) Outcome {
	ranked := filter(in.Results, func(r biathlon.Result) bool {
		_, ok := racetime.Rank(r.Rank)
		return ok
	})
	if len(ranked) == 0 {
		return notAvailable(in.Selections)
	}
	return countMatch(in.Selections, sumMisses(top(byRank(ranked), 3)))
}

// nationPenaltyLaps sums the penalty loops skied by a nation's athletes.
// Relay team rows are left out so loops are not counted twice.
type nationPenaltyLaps struct {
	nat string
}

func (n nationPenaltyLaps) Score(in Input) Outcome {
	rows := filter(in.Results, func(r biathlon.Result) bool { return r.Nat == n.nat && !r.IsTeam })
	if len(rows) == 0 {
		return notAvailable(in.Selections)
	}
	return countMatch(in.Selections, sumMisses(rows))
}

// nationPenaltySum sums the penalties of every row of a nation.
type nationPenaltySum struct {
	nat string
}

func (n nationPenaltySum) Score(in Input) Outcome {
	rows := filter(in.Results, fromNat(n.nat))
	if len(rows) == 0 {
		return notAvailable(in.Selections)
	}
	return countMatch(in.Selections, sumMisses(rows))
}

// mostPenaltyLaps names the relay team(s) whose athletes skied the most
// penalty loops.
type mostPenaltyLaps struct{}

func (mostPenaltyLaps) Score(in Input) Outcome {
	byNat := make(map[string]int)
	for _, r := range in.Results {
		if r.IsTeam || r.ShootingTotal == "" {
			continue
		}
		byNat[r.Nat] += racetime.Misses(r.ShootingTotal)
	}
	if len(byNat) == 0 {
		return notAvailable(in.Selections)
	}
	high := -1
	for _, n := range byNat {
		high = max(high, n)
	}

	var teams []string
	for _, r := range in.Results {
		if n, counted := byNat[r.Nat]; r.IsTeam && counted && n == high {
			teams = append(teams, r.Name)
		}
	}
	return anyMatch(in.Selections, teams, 1)
}

func sumMisses(rows []biathlon.Result) int {
	total := 0
	for _, r := range rows {
		total += racetime.Misses(r.ShootingTotal)
	}
	return total
}
