package racetime

import (
	"sort"

	"github.com/padraicbc/biathlonpicks/biathlon"
)

// LegSplit is the time one relay athlete spent on their own leg.
type LegSplit struct {
	Name    string
	Nat     string
	Leg     int
	Seconds float64
}

// LegSplits derives per-leg times from the cumulative TotalTime of relay leg
// rows. Legs without a readable time are skipped and the next finished leg is
// measured against the last one that had a time.
func LegSplits(results []biathlon.Result) []LegSplit {
	byTeam := make(map[string][]biathlon.Result)
	var order []string
	for _, r := range results {
		if !r.IsRelayLeg() {
			continue
		}
		if _, seen := byTeam[r.Nat]; !seen {
			order = append(order, r.Nat)
		}
		byTeam[r.Nat] = append(byTeam[r.Nat], r)
	}

	var splits []LegSplit
	for _, nat := range order {
		legs := byTeam[nat]
		sort.SliceStable(legs, func(i, j int) bool { return *legs[i].Leg < *legs[j].Leg })

		prev := 0.0
		for _, r := range legs {
			cum, ok := ParseClockPrecise(r.TotalTime)
			if !ok {
				continue
			}
			splits = append(splits, LegSplit{
				Name:    r.Name,
				Nat:     r.Nat,
				Leg:     *r.Leg,
				Seconds: cum - prev,
			})
			prev = cum
		}
	}
	return splits
}
