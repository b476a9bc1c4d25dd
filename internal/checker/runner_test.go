package checker

import (
	"errors"
	"io"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/user/playlist-checker/internal/domain"
	"github.com/user/playlist-checker/internal/report"
)

func testEntries() []domain.StreamEntry {
	return []domain.StreamEntry{{URL: "http://stream.example.com/a.m3u8", Title: "A"}}
}

func aliveProber(delay time.Duration) *fakeProber {
	return &fakeProber{
		results: map[string]domain.ProbeResult{
			"http://stream.example.com/a.m3u8": {Alive: true, StatusCode: 200},
		},
		delay: delay,
	}
}

func TestRunnerRunsImmediately(t *testing.T) {
	var loads atomic.Int32
	load := func() ([]domain.StreamEntry, error) {
		loads.Add(1)
		return testEntries(), nil
	}

	c := New(testConfig(), aliveProber(0), report.NewConsole(io.Discard), nil, zap.NewNop())
	r := NewRunner(c, load, time.Hour, zap.NewNop())
	r.Start()
	defer r.Stop()

	assert.Eventually(t, func() bool { return r.Latest() != nil }, time.Second, 5*time.Millisecond)

	run := r.Latest()
	assert.Equal(t, 1, run.AliveCount)
	assert.Equal(t, int32(1), loads.Load())
}

func TestRunnerReloadsEachTick(t *testing.T) {
	var loads atomic.Int32
	load := func() ([]domain.StreamEntry, error) {
		loads.Add(1)
		return testEntries(), nil
	}

	c := New(testConfig(), aliveProber(0), report.NewConsole(io.Discard), nil, zap.NewNop())
	r := NewRunner(c, load, 20*time.Millisecond, zap.NewNop())
	r.Start()
	defer r.Stop()

	assert.Eventually(t, func() bool { return loads.Load() >= 3 }, 2*time.Second, 5*time.Millisecond)
}

func TestRunnerTrigger(t *testing.T) {
	var loads atomic.Int32
	load := func() ([]domain.StreamEntry, error) {
		loads.Add(1)
		return testEntries(), nil
	}

	c := New(testConfig(), aliveProber(0), report.NewConsole(io.Discard), nil, zap.NewNop())
	r := NewRunner(c, load, time.Hour, zap.NewNop())
	r.Start()
	defer r.Stop()

	require.Eventually(t, func() bool { return r.Latest() != nil }, time.Second, 5*time.Millisecond)

	require.NoError(t, r.Trigger())
	assert.Eventually(t, func() bool { return loads.Load() == 2 }, time.Second, 5*time.Millisecond)
}

func TestRunnerTriggerWhileRunning(t *testing.T) {
	load := func() ([]domain.StreamEntry, error) {
		return testEntries(), nil
	}

	// A slow probe keeps the first check busy while we poke at it.
	c := New(testConfig(), aliveProber(300*time.Millisecond), report.NewConsole(io.Discard), nil, zap.NewNop())
	r := NewRunner(c, load, time.Hour, zap.NewNop())
	r.Start()
	defer r.Stop()

	require.Eventually(t, func() bool { return r.Running() }, time.Second, time.Millisecond)
	assert.ErrorIs(t, r.Trigger(), ErrCheckInFlight)
}

func TestRunnerSurvivesLoadError(t *testing.T) {
	var loads atomic.Int32
	load := func() ([]domain.StreamEntry, error) {
		loads.Add(1)
		return nil, errors.New("playlist missing")
	}

	c := New(testConfig(), aliveProber(0), report.NewConsole(io.Discard), nil, zap.NewNop())
	r := NewRunner(c, load, 20*time.Millisecond, zap.NewNop())
	r.Start()
	defer r.Stop()

	assert.Eventually(t, func() bool { return loads.Load() >= 2 }, 2*time.Second, 5*time.Millisecond)
	assert.Nil(t, r.Latest())
}
