package playlist

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// block is one sortable unit: an entry's metadata and comment lines plus
// the URL line that closes it.
type block struct {
	lines []string
	group string
}

// Sort reorders playlist entries by their group-title attribute using a
// locale-aware comparison. Entries sharing a group keep their original
// relative order. The header stays first; trailing lines that never form
// a complete entry stay last.
func Sort(text string, loc language.Tag) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	var (
		header  []string
		blocks  []block
		current block
	)
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, headerMarker) && len(blocks) == 0 && len(current.lines) == 0 {
			header = append(header, raw)
			continue
		}
		if strings.HasPrefix(line, "#") {
			current.lines = append(current.lines, raw)
			if match := groupTitlePattern.FindStringSubmatch(line); match != nil {
				current.group = match[1]
			}
			continue
		}
		// A URL line completes the block.
		current.lines = append(current.lines, raw)
		blocks = append(blocks, current)
		current = block{}
	}

	c := collate.New(loc)
	sort.SliceStable(blocks, func(i, j int) bool {
		return c.CompareString(blocks[i].group, blocks[j].group) < 0
	})

	out := make([]string, 0, len(header)+len(current.lines)+len(blocks)*2)
	out = append(out, header...)
	for _, b := range blocks {
		out = append(out, b.lines...)
	}
	out = append(out, current.lines...)
	return strings.Join(out, "\n") + "\n"
}
