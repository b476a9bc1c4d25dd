package playlist

import (
	"regexp"
	"strings"
)

var whitespaceRun = regexp.MustCompile(`[ \t]+`)

// Format normalizes playlist text without changing its meaning: leading
// and trailing whitespace is stripped, internal runs of spaces and tabs
// collapse to a single space, blank lines are dropped, and metadata lines
// are rejoined around their first comma with no spaces next to it.
//
// The first-comma rule here is deliberate and must stay independent of
// the parser's title extraction: formatting only cleans layout noise and
// never re-interprets where a title begins.
func Format(text string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	var out []string
	for _, raw := range strings.Split(text, "\n") {
		line := whitespaceRun.ReplaceAllString(strings.TrimSpace(raw), " ")
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, metadataMarker) {
			line = formatMetadata(line)
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n") + "\n"
}

func formatMetadata(line string) string {
	rest := strings.TrimPrefix(line, metadataMarker)
	attrs, title, found := strings.Cut(rest, ",")
	if !found {
		return metadataMarker + strings.TrimSpace(rest)
	}
	return metadataMarker + strings.TrimSpace(attrs) + "," + strings.TrimSpace(title)
}
