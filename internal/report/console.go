package report

import (
	"fmt"
	"io"

	"github.com/user/playlist-checker/internal/domain"
)

const separator = "=================================================="

// Console writes the human-readable transcript that CI logs capture.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Start(total int) {
	fmt.Fprintf(c.w, "Checking %d streams...\n\n", total)
}

func (c *Console) Progress(position, total int, entry domain.StreamEntry, result domain.ProbeResult) {
	if result.Alive {
		fmt.Fprintf(c.w, "[%d/%d] %s ... OK (HTTP %d)\n", position, total, displayName(entry), result.StatusCode)
		return
	}
	fmt.Fprintf(c.w, "[%d/%d] %s ... DEAD\n", position, total, displayName(entry))
	fmt.Fprintf(c.w, "      %s\n", result.ErrorMessage)
	fmt.Fprintf(c.w, "      %s\n", entry.URL)
}

func (c *Console) NoEntries() {
	fmt.Fprintln(c.w, "No entries found in playlist.")
}

func (c *Console) Summary(run *domain.CheckRun) {
	fmt.Fprintf(c.w, "\n%s\n", separator)
	fmt.Fprintf(c.w, "Checked %d streams: %d alive, %d dead\n", run.TotalEntries(), run.AliveCount, run.DeadCount)
	fmt.Fprintf(c.w, "Success rate: %.1f%%\n", run.SuccessRate())

	dead := run.DeadEntries()
	if len(dead) == 0 {
		return
	}
	fmt.Fprintf(c.w, "\nDead streams:\n")
	for _, res := range dead {
		fmt.Fprintf(c.w, "  [%d] %s\n", res.Position, displayName(res.Entry))
		fmt.Fprintf(c.w, "      %s\n", res.Entry.URL)
		fmt.Fprintf(c.w, "      %s\n", res.Result.ErrorMessage)
	}
}

// displayName renders "Title (Group)", or the bare title for entries
// without a group.
func displayName(entry domain.StreamEntry) string {
	if entry.GroupTitle == "" {
		return entry.Title
	}
	return fmt.Sprintf("%s (%s)", entry.Title, entry.GroupTitle)
}
