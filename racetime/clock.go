// Package racetime converts provider clock, rank and shooting strings into
// numbers the scoring rules can compare.
package racetime

import (
	"math"
	"strconv"
	"strings"

	"go.uber.org/zap"
)

// ParseClock converts "H:MM:SS[.f]", "MM:SS[.f]" or a bare number of seconds
// into whole seconds. A leading '+' (as in Behind columns) is ignored and the
// fraction is dropped. Anything else is logged and reported as 0.
func ParseClock(value string) int {
	v := strings.TrimSpace(value)
	if v == "" {
		return 0
	}
	whole, _, _ := strings.Cut(strings.TrimPrefix(v, "+"), ".")
	secs, ok := sumClockParts(whole)
	if !ok {
		zap.L().Warn("unparseable race clock", zap.String("value", value))
		return 0
	}
	return int(secs)
}

// ParseClockPrecise is ParseClock keeping the fractional seconds. It reports
// false for empty, sentinel or malformed values instead of falling back to 0.
func ParseClockPrecise(value string) (float64, bool) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "+")
	if v == "" {
		return 0, false
	}
	whole, frac, hasFrac := strings.Cut(v, ".")
	secs, ok := sumClockParts(whole)
	if !ok {
		return 0, false
	}
	if hasFrac {
		if frac == "" || !isDigits(frac) {
			return 0, false
		}
		f, err := strconv.ParseFloat("0."+frac, 64)
		if err != nil {
			return 0, false
		}
		secs += f
	}
	return secs, true
}

// sumClockParts handles "SS", "MM:SS" and "H:MM:SS".
func sumClockParts(s string) (float64, bool) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, false
	}
	total := 0
	for _, p := range parts {
		if !isDigits(p) {
			return 0, false
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, false
		}
		total = total*60 + n
	}
	return float64(total), true
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// SortKey orders rows by their finish clock. Lapped, empty and malformed
// times sort after every real time.
func SortKey(totalTime string) float64 {
	if totalTime == "" || totalTime == "Lapped" {
		return math.Inf(1)
	}
	secs, ok := ParseClockPrecise(totalTime)
	if !ok {
		return math.Inf(1)
	}
	return secs
}
