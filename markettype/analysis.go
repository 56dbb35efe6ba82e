package markettype

import "github.com/padraicbc/biathlonpicks/biathlon"

// finishLeader names the athlete ranked first. Used with analysis rankings
// where first means fastest on that axis.
type finishLeader struct{}

func (finishLeader) Score(in Input) Outcome {
	row, ok := find(in.Results, func(r biathlon.Result) bool { return r.ResultOrder == 1 })
	if !ok {
		return notAvailable(in.Selections)
	}
	return exactMatch(in.Selections, row.Name, 1)
}
