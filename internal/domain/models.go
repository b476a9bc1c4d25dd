package domain

import (
	"time"

	"github.com/google/uuid"
)

// StreamEntry is a single playlist item: the stream URL plus the metadata
// that preceded it in the playlist.
type StreamEntry struct {
	URL        string `json:"url"`
	Title      string `json:"title"`
	GroupTitle string `json:"group_title,omitempty"`
}

// ProbeResult is the outcome of probing one stream URL.
// StatusCode is 0 when no HTTP response was received at all.
type ProbeResult struct {
	Alive        bool   `json:"alive"`
	ErrorMessage string `json:"error,omitempty"`
	StatusCode   int    `json:"status_code"`
}

// Dead reports whether the probe concluded the stream is unreachable.
func (r ProbeResult) Dead() bool {
	return !r.Alive
}

// EntryResult pairs a playlist entry with its probe outcome.
// Position is the 1-based position of the entry in the source playlist.
type EntryResult struct {
	Entry    StreamEntry `json:"entry"`
	Result   ProbeResult `json:"result"`
	Position int         `json:"position"`
}

// CheckRun aggregates the outcome of one full pass over a playlist.
type CheckRun struct {
	ID         string        `json:"id"`
	StartedAt  time.Time     `json:"started_at"`
	FinishedAt time.Time     `json:"finished_at"`
	Results    []EntryResult `json:"results"`
	AliveCount int           `json:"alive_count"`
	DeadCount  int           `json:"dead_count"`
}

func NewCheckRun() *CheckRun {
	return &CheckRun{
		ID:        uuid.NewString(),
		StartedAt: time.Now(),
	}
}

// Append records the result for the next entry in playlist order.
func (cr *CheckRun) Append(entry StreamEntry, result ProbeResult) {
	cr.Results = append(cr.Results, EntryResult{
		Entry:    entry,
		Result:   result,
		Position: len(cr.Results) + 1,
	})
	if result.Alive {
		cr.AliveCount++
	} else {
		cr.DeadCount++
	}
}

func (cr *CheckRun) TotalEntries() int {
	return len(cr.Results)
}

// SuccessRate returns the share of alive entries as a percentage.
// An empty run has a rate of 0.
func (cr *CheckRun) SuccessRate() float64 {
	if len(cr.Results) == 0 {
		return 0
	}
	return float64(cr.AliveCount) / float64(len(cr.Results)) * 100
}

// DeadEntries returns the results of all entries that failed the probe,
// in playlist order.
func (cr *CheckRun) DeadEntries() []EntryResult {
	var dead []EntryResult
	for _, res := range cr.Results {
		if res.Result.Dead() {
			dead = append(dead, res)
		}
	}
	return dead
}

// Duration is the wall-clock time the run took.
func (cr *CheckRun) Duration() time.Duration {
	return cr.FinishedAt.Sub(cr.StartedAt)
}

// CheckStatusResponse is the API response for a status query.
type CheckStatusResponse struct {
	ID          string        `json:"id"`
	StartedAt   time.Time     `json:"started_at"`
	FinishedAt  time.Time     `json:"finished_at"`
	Total       int           `json:"total"`
	AliveCount  int           `json:"alive_count"`
	DeadCount   int           `json:"dead_count"`
	SuccessRate float64       `json:"success_rate"`
	Running     bool          `json:"running"`
	Dead        []EntryResult `json:"dead,omitempty"`
}
