package main

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/padraicbc/biathlonpicks/resolution"
)

type fakeResolver struct {
	mu       sync.Mutex
	seen     []string
	inFlight atomic.Int32
	peak     atomic.Int32
	errs     map[string]error
}

func (f *fakeResolver) Resolve(_ context.Context, raceID string) (*resolution.Summary, error) {
	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}
	time.Sleep(5 * time.Millisecond)

	f.mu.Lock()
	f.seen = append(f.seen, raceID)
	f.mu.Unlock()

	if err := f.errs[raceID]; err != nil {
		return nil, err
	}
	return &resolution.Summary{RaceID: raceID, Scored: len(raceID)}, nil
}

func TestResolveAll(t *testing.T) {
	r := &fakeResolver{errs: map[string]error{
		"R2": fmt.Errorf("%w: R2", resolution.ErrNoResults),
		"R3": errors.New("boom"),
	}}

	out := resolveAll(context.Background(), r, []string{"R1", "R2", "R3", "R44", "R555"}, 2, zap.NewNop())
	require.Len(t, out, 5)

	assert.Equal(t, 2, out[0].scored)
	assert.True(t, out[1].pending)
	assert.NoError(t, out[1].err)
	assert.Error(t, out[2].err)
	assert.Equal(t, 3, out[3].scored)
	assert.Equal(t, 4, out[4].scored)

	assert.Len(t, r.seen, 5)
	assert.LessOrEqual(t, r.peak.Load(), int32(2))
}
