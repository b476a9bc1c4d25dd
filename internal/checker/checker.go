package checker

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/user/playlist-checker/internal/config"
	"github.com/user/playlist-checker/internal/domain"
	"github.com/user/playlist-checker/internal/monitoring"
	"github.com/user/playlist-checker/internal/report"
)

// Prober determines liveness for a single stream URL.
type Prober interface {
	Probe(ctx context.Context, url string) domain.ProbeResult
}

// Checker walks a playlist one entry at a time and aggregates results.
type Checker struct {
	config   *config.Config
	prober   Prober
	reporter report.Reporter
	metrics  *monitoring.Metrics
	logger   *zap.Logger
}

// New builds a Checker. metrics may be nil for one-shot command line
// runs where nothing scrapes them.
func New(cfg *config.Config, prober Prober, reporter report.Reporter, m *monitoring.Metrics, l *zap.Logger) *Checker {
	return &Checker{
		config:   cfg,
		prober:   prober,
		reporter: reporter,
		metrics:  m,
		logger:   l,
	}
}

// Run probes every entry in playlist order. Execution is strictly
// sequential with a fixed pause between entries, so a target host never
// sees more than one in-flight request from a run, and results always
// arrive in source order.
func (c *Checker) Run(ctx context.Context, entries []domain.StreamEntry) *domain.CheckRun {
	run := domain.NewCheckRun()
	total := len(entries)

	if total == 0 {
		c.reporter.NoEntries()
		run.FinishedAt = time.Now()
		return run
	}

	c.reporter.Start(total)
	for i, entry := range entries {
		if i > 0 {
			select {
			case <-time.After(c.config.ProbeDelay()):
			case <-ctx.Done():
				c.logger.Warn("check cancelled",
					zap.String("run_id", run.ID),
					zap.Int("checked", i),
					zap.Int("total", total))
				run.FinishedAt = time.Now()
				return run
			}
		}

		started := time.Now()
		result := c.prober.Probe(ctx, entry.URL)
		if c.metrics != nil {
			c.metrics.ObserveProbe(result.Alive, time.Since(started))
		}

		run.Append(entry, result)
		c.reporter.Progress(i+1, total, entry, result)
	}

	run.FinishedAt = time.Now()
	c.reporter.Summary(run)
	if c.metrics != nil {
		c.metrics.ObserveRun(run.AliveCount, run.DeadCount, run.Duration())
	}
	return run
}
