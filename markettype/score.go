package markettype

import (
	"sort"
	"strconv"

	"github.com/padraicbc/biathlonpicks/biathlon"
	"github.com/padraicbc/biathlonpicks/models"
	"github.com/padraicbc/biathlonpicks/racetime"
)

func award(sels []models.Selection, score func(key string) int) map[models.SelectionKey]int {
	points := make(map[models.SelectionKey]int, len(sels))
	for _, s := range sels {
		points[s.Key()] = score(s.ResultKey)
	}
	return points
}

func notAvailable(sels []models.Selection) Outcome {
	return Outcome{
		ResultKeys: []string{NotAvailable},
		Points:     award(sels, func(string) int { return 0 }),
	}
}

// exactMatch gives points to selections equal to answer.
func exactMatch(sels []models.Selection, answer string, points int) Outcome {
	if answer == "" || answer == NotAvailable {
		return notAvailable(sels)
	}
	return Outcome{
		ResultKeys: []string{answer},
		Points: award(sels, func(key string) int {
			if key == answer {
				return points
			}
			return 0
		}),
	}
}

// anyMatch is exactMatch for markets with tied answers.
func anyMatch(sels []models.Selection, answers []string, points int) Outcome {
	if len(answers) == 0 {
		return notAvailable(sels)
	}
	ok := make(map[string]bool, len(answers))
	for _, a := range answers {
		ok[a] = true
	}
	return Outcome{
		ResultKeys: answers,
		Points: award(sels, func(key string) int {
			if ok[key] {
				return points
			}
			return 0
		}),
	}
}

// closeTo scores numeric guesses by their distance from actual.
func closeTo(sels []models.Selection, actual int, points func(diff int) int) Outcome {
	return Outcome{
		ResultKeys: []string{strconv.Itoa(actual)},
		Points: award(sels, func(key string) int {
			guess, ok := racetime.LeadingInt(key)
			if !ok {
				return 0
			}
			return points(abs(guess - actual))
		}),
	}
}

// countMatch compares the decimal form of n against the guesses.
func countMatch(sels []models.Selection, n int) Outcome {
	return exactMatch(sels, strconv.Itoa(n), 1)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func filter(rows []biathlon.Result, keep func(biathlon.Result) bool) []biathlon.Result {
	var out []biathlon.Result
	for _, r := range rows {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}

func find(rows []biathlon.Result, match func(biathlon.Result) bool) (biathlon.Result, bool) {
	for _, r := range rows {
		if match(r) {
			return r, true
		}
	}
	return biathlon.Result{}, false
}

func named(name string) func(biathlon.Result) bool {
	return func(r biathlon.Result) bool { return r.Name == name }
}

func fromNat(nat string) func(biathlon.Result) bool {
	return func(r biathlon.Result) bool { return r.Nat == nat }
}

func set(values ...string) map[string]bool {
	m := make(map[string]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// byFinish orders rows by ResultOrder. Rows without an order go last.
func byFinish(rows []biathlon.Result) []biathlon.Result {
	out := append([]biathlon.Result(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return orderKey(out[i].ResultOrder) < orderKey(out[j].ResultOrder)
	})
	return out
}

// byRank orders rows by the rank column. Unranked rows go last.
func byRank(rows []biathlon.Result) []biathlon.Result {
	out := append([]biathlon.Result(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return rankKey(out[i]) < rankKey(out[j])
	})
	return out
}

// byTime orders rows by finish clock. Lapped and missing times go last.
func byTime(rows []biathlon.Result) []biathlon.Result {
	out := append([]biathlon.Result(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return racetime.SortKey(out[i].TotalTime) < racetime.SortKey(out[j].TotalTime)
	})
	return out
}

const unordered = int(^uint(0) >> 1)

func orderKey(order int) int {
	if order <= 0 {
		return unordered
	}
	return order
}

func rankKey(r biathlon.Result) int {
	n, ok := racetime.Rank(r.Rank)
	if !ok {
		return unordered
	}
	return n
}

func top(rows []biathlon.Result, n int) []biathlon.Result {
	if len(rows) > n {
		return rows[:n]
	}
	return rows
}

// rosterByIBU indexes the roster for equipment lookups.
func rosterByIBU(roster []models.Competitor) map[string]*models.Competitor {
	m := make(map[string]*models.Competitor, len(roster))
	for i := range roster {
		m[roster[i].IBUID] = &roster[i]
	}
	return m
}

func bucketOutcome(sels []models.Selection, secs int, raw string) Outcome {
	b, ok := racetime.ClassifyBucket(secs)
	if !ok {
		// Out of range: nothing can match, but keep the measured gap visible.
		return Outcome{
			ResultKeys: []string{raw},
			Points:     award(sels, func(string) int { return 0 }),
		}
	}
	return exactMatch(sels, b.Label, 1)
}
