package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/user/playlist-checker/internal/domain"
)

func TestZapReporter(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	z := NewZap(zap.New(core))

	alive := domain.StreamEntry{URL: "http://stream.example.com/a.m3u8", Title: "A", GroupTitle: "News"}
	dead := domain.StreamEntry{URL: "http://stream.example.com/b.m3u8", Title: "B"}

	run := domain.NewCheckRun()
	run.Append(alive, domain.ProbeResult{Alive: true, StatusCode: 200})
	run.Append(dead, domain.ProbeResult{ErrorMessage: "HTTP 500", StatusCode: 500})
	run.FinishedAt = time.Now()

	z.Start(2)
	z.Progress(1, 2, alive, domain.ProbeResult{Alive: true, StatusCode: 200})
	z.Progress(2, 2, dead, domain.ProbeResult{ErrorMessage: "HTTP 500", StatusCode: 500})
	z.Summary(run)

	entries := logs.All()
	require.Len(t, entries, 4)

	assert.Equal(t, "check started", entries[0].Message)
	assert.Equal(t, "stream alive", entries[1].Message)

	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "HTTP 500", entries[2].ContextMap()["reason"])

	summary := entries[3].ContextMap()
	assert.Equal(t, "check finished", entries[3].Message)
	assert.Equal(t, int64(1), summary["alive"])
	assert.Equal(t, int64(1), summary["dead"])
	assert.Equal(t, 50.0, summary["success_rate"])
}
