package racetime

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"1:02:03", 3723},
		{"02:03", 123},
		{"45", 45},
		{"1:02:03.9", 3723},
		{"+1:05.4", 65},
		{"0.0", 0},
		{"", 0},
		{"garbage", 0},
		{"Lapped", 0},
		{"1:2:3:4", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseClock(tt.in))
		})
	}
}

func TestParseClockPrecise(t *testing.T) {
	got, ok := ParseClockPrecise("1:10:01.25")
	assert.True(t, ok)
	assert.InDelta(t, 4201.25, got, 1e-9)

	got, ok = ParseClockPrecise("+12.3")
	assert.True(t, ok)
	assert.InDelta(t, 12.3, got, 1e-9)

	for _, bad := range []string{"", "Lapped", "1:xx", "12.", "+"} {
		_, ok := ParseClockPrecise(bad)
		assert.False(t, ok, bad)
	}
}

func TestSortKey(t *testing.T) {
	assert.True(t, math.IsInf(SortKey("Lapped"), 1))
	assert.True(t, math.IsInf(SortKey(""), 1))
	assert.Less(t, SortKey("59:59.9"), SortKey("1:00:00.0"))
}

func TestRankHelpers(t *testing.T) {
	n, ok := Rank("=4")
	assert.True(t, ok)
	assert.Equal(t, 4, n)
	_, ok = Rank("")
	assert.False(t, ok)

	assert.Equal(t, 2, Misses("2+5"))
	assert.Equal(t, 3, Misses("3"))
	assert.Equal(t, 0, Misses(""))

	spare, ok := SpareRounds("0+7")
	assert.True(t, ok)
	assert.Equal(t, 7, spare)
	_, ok = SpareRounds("4")
	assert.False(t, ok)

	assert.Equal(t, 0, IntOrZero("x1"))
	assert.Equal(t, 12, IntOrZero("12abc"))
}
