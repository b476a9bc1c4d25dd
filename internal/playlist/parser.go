package playlist

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/url"
	"regexp"
	"strings"

	"github.com/user/playlist-checker/internal/domain"
)

const (
	headerMarker   = "#EXTM3U"
	metadataMarker = "#EXTINF:"
	defaultTitle   = "Unknown"
)

// ErrEmptyPlaylist is returned when the input contains no text at all.
// A playlist with a header but no entries is not empty; it parses to
// zero entries without error.
var ErrEmptyPlaylist = errors.New("playlist is empty")

var groupTitlePattern = regexp.MustCompile(`group-title="([^"]*)"`)

// metadata is the single pending slot between a metadata line and the URL
// line that consumes it.
type metadata struct {
	title string
	group string
}

// Parse reads playlist text and returns its entries in source order.
// Malformed lines inside the playlist are skipped, never fatal: comments
// are ignored, metadata without a following URL is dropped, and lines
// that do not parse as absolute URIs are discarded.
func Parse(r io.Reader) ([]domain.StreamEntry, error) {
	var (
		entries    []domain.StreamEntry
		pending    *metadata
		sawContent bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		sawContent = true

		switch {
		case strings.HasPrefix(line, metadataMarker):
			// A second metadata line before any URL replaces the first.
			pending = parseMetadata(line)
		case strings.HasPrefix(line, "#"):
			// Header and unrecognized comments.
		default:
			// url.Parse is lenient, so require a scheme and a host to
			// keep stray text out of the entry list.
			u, err := url.Parse(line)
			if err != nil || !u.IsAbs() || u.Host == "" {
				continue
			}
			entry := domain.StreamEntry{URL: line, Title: defaultTitle}
			if pending != nil {
				entry.Title = pending.title
				entry.GroupTitle = pending.group
				pending = nil
			}
			entries = append(entries, entry)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading playlist: %w", err)
	}
	if !sawContent {
		return nil, ErrEmptyPlaylist
	}
	return entries, nil
}

func parseMetadata(line string) *metadata {
	rest := strings.TrimPrefix(line, metadataMarker)
	attrs, title := splitMetadata(rest)

	m := &metadata{title: title}
	if match := groupTitlePattern.FindStringSubmatch(attrs); match != nil {
		m.group = match[1]
	}
	return m
}

// splitMetadata separates the attribute block from the display title.
// The title may itself contain commas, so the split point is the comma
// that closes the attribute block: the first comma outside any quoted
// attribute value. Commas inside tvg-name="A, B" style values do not
// end the block.
func splitMetadata(rest string) (attrs, title string) {
	inQuotes := false
	for i, r := range rest {
		switch r {
		case '"':
			inQuotes = !inQuotes
		case ',':
			if !inQuotes {
				return rest[:i], strings.TrimSpace(rest[i+1:])
			}
		}
	}
	return rest, ""
}
