package markettype

import "github.com/padraicbc/biathlonpicks/biathlon"

// podiumPlace scores 3 for naming the entry at place, 1 for naming any other
// podium finisher. teams restricts the pool to team rows.
type podiumPlace struct {
	place int
	teams bool
}

func (p podiumPlace) Score(in Input) Outcome {
	pool := in.Results
	if p.teams {
		pool = filter(pool, func(r biathlon.Result) bool { return r.IsTeam })
	}
	podium := top(byFinish(pool), 3)

	onPodium := make(map[string]bool, len(podium))
	for _, r := range podium {
		if r.Name != "" {
			onPodium[r.Name] = true
		}
	}
	var exact string
	if p.place >= 1 && p.place <= len(podium) {
		exact = podium[p.place-1].Name
	}
	if exact == "" {
		return notAvailable(in.Selections)
	}

	return Outcome{
		ResultKeys: []string{exact},
		Points: award(in.Selections, func(key string) int {
			switch {
			case key == exact:
				return 3
			case onPodium[key]:
				return 1
			}
			return 0
		}),
	}
}
