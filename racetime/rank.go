package racetime

import (
	"strconv"
	"strings"
)

// LeadingInt parses the integer prefix of s ("3", "2+1", " 12abc"). It
// returns false when s does not start with a digit or sign.
func LeadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digits := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digits {
		return 0, false
	}
	n, err := strconv.Atoi(s[:end])
	if err != nil {
		return 0, false
	}
	return n, true
}

// IntOrZero is LeadingInt with the failure case folded into 0.
func IntOrZero(s string) int {
	n, _ := LeadingInt(s)
	return n
}

// Rank parses a provider rank such as "1" or "=4". Empty ranks (DNF, DNS,
// unranked relay legs) report false.
func Rank(rank string) (int, bool) {
	return LeadingInt(strings.TrimPrefix(strings.TrimSpace(rank), "="))
}

// Misses returns the penalty count of a shooting tally. For relay tallies
// ("<penalty loops>+<spare rounds>") this is the part before the '+'.
func Misses(shootingTotal string) int {
	head, _, _ := strings.Cut(shootingTotal, "+")
	return IntOrZero(head)
}

// SpareRounds returns the spare rounds of a relay tally ("1+4" gives 4). A
// tally without a '+' has no spare-round component and reports false.
func SpareRounds(shootingTotal string) (int, bool) {
	_, tail, ok := strings.Cut(shootingTotal, "+")
	if !ok {
		return 0, false
	}
	return IntOrZero(tail), true
}
