package checker

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/user/playlist-checker/internal/domain"
)

// ErrCheckInFlight is returned when a trigger arrives while a check is
// already running.
var ErrCheckInFlight = errors.New("a check is already running")

// LoadFunc supplies the entries for the next check. The runner reloads
// the playlist on every cycle so edits are picked up without a restart.
type LoadFunc func() ([]domain.StreamEntry, error)

// Runner schedules periodic checks and keeps the latest completed run
// available for the API.
type Runner struct {
	checker  *Checker
	load     LoadFunc
	interval time.Duration
	logger   *zap.Logger

	trigger  chan struct{}
	stopChan chan struct{}
	wg       sync.WaitGroup

	mu      sync.RWMutex
	latest  *domain.CheckRun
	running bool
}

func NewRunner(c *Checker, load LoadFunc, interval time.Duration, l *zap.Logger) *Runner {
	return &Runner{
		checker:  c,
		load:     load,
		interval: interval,
		logger:   l,
		trigger:  make(chan struct{}, 1),
		stopChan: make(chan struct{}),
	}
}

func (r *Runner) Start() {
	r.wg.Add(1)
	go r.loop()
}

func (r *Runner) Stop() {
	close(r.stopChan)
	r.wg.Wait()
}

func (r *Runner) loop() {
	defer r.wg.Done()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() {
		<-r.stopChan
		cancel()
	}()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	// First pass right away; afterwards the ticker takes over.
	r.execute(ctx)
	for {
		select {
		case <-ticker.C:
			r.execute(ctx)
		case <-r.trigger:
			r.execute(ctx)
		case <-r.stopChan:
			return
		}
	}
}

// Trigger requests an immediate check without waiting for the next
// tick. It never blocks; while a check is running or already queued the
// request is rejected.
func (r *Runner) Trigger() error {
	r.mu.RLock()
	running := r.running
	r.mu.RUnlock()
	if running {
		return ErrCheckInFlight
	}

	select {
	case r.trigger <- struct{}{}:
		return nil
	default:
		return ErrCheckInFlight
	}
}

// Latest returns the most recently completed run, or nil before the
// first one finishes.
func (r *Runner) Latest() *domain.CheckRun {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.latest
}

// Running reports whether a check is currently executing.
func (r *Runner) Running() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.running
}

func (r *Runner) execute(ctx context.Context) {
	r.setRunning(true)
	defer r.setRunning(false)

	entries, err := r.load()
	if err != nil {
		r.logger.Error("could not load playlist", zap.Error(err))
		return
	}

	run := r.checker.Run(ctx, entries)

	r.mu.Lock()
	r.latest = run
	r.mu.Unlock()
}

func (r *Runner) setRunning(v bool) {
	r.mu.Lock()
	r.running = v
	r.mu.Unlock()
}
