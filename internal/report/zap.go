package report

import (
	"go.uber.org/zap"

	"github.com/user/playlist-checker/internal/domain"
)

// Zap forwards check progress to a structured logger, for runs that
// happen inside the daemon rather than an interactive shell.
type Zap struct {
	logger *zap.Logger
}

func NewZap(logger *zap.Logger) *Zap {
	return &Zap{logger: logger}
}

func (z *Zap) Start(total int) {
	z.logger.Info("check started", zap.Int("total", total))
}

func (z *Zap) Progress(position, total int, entry domain.StreamEntry, result domain.ProbeResult) {
	fields := []zap.Field{
		zap.Int("position", position),
		zap.Int("total", total),
		zap.String("title", entry.Title),
		zap.String("url", entry.URL),
	}
	if entry.GroupTitle != "" {
		fields = append(fields, zap.String("group", entry.GroupTitle))
	}
	if result.Alive {
		z.logger.Info("stream alive", append(fields, zap.Int("status", result.StatusCode))...)
		return
	}
	z.logger.Warn("stream dead", append(fields, zap.String("reason", result.ErrorMessage))...)
}

func (z *Zap) NoEntries() {
	z.logger.Warn("no entries found in playlist")
}

func (z *Zap) Summary(run *domain.CheckRun) {
	z.logger.Info("check finished",
		zap.String("run_id", run.ID),
		zap.Int("total", run.TotalEntries()),
		zap.Int("alive", run.AliveCount),
		zap.Int("dead", run.DeadCount),
		zap.Float64("success_rate", run.SuccessRate()),
		zap.Duration("duration", run.Duration()))
}
