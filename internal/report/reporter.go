package report

import (
	"github.com/user/playlist-checker/internal/domain"
)

// Reporter receives check progress as it happens. The checker calls
// Start once, Progress after every probe in playlist order, and Summary
// when the pass is complete. NoEntries replaces all of them when the
// playlist had nothing to check.
type Reporter interface {
	Start(total int)
	Progress(position, total int, entry domain.StreamEntry, result domain.ProbeResult)
	NoEntries()
	Summary(run *domain.CheckRun)
}
