package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/user/playlist-checker/internal/config"
	"github.com/user/playlist-checker/internal/domain"
)

// drainLimit caps how much of a probe response body is read. A ranged
// request answers with at most 1025 bytes, but live streams often ignore
// Range headers, and an unbounded drain would block until the timeout.
const drainLimit = 2048

const rangeHeader = "bytes=0-1024"

// Prober determines liveness of stream URLs over HTTP.
type Prober struct {
	config *config.Config
	client *http.Client
	logger *zap.Logger
}

func NewProber(cfg *config.Config, logger *zap.Logger) *Prober {
	return &Prober{
		config: cfg,
		client: &http.Client{Timeout: cfg.ProbeTimeout()},
		logger: logger,
	}
}

// Probe checks whether a single stream URL currently answers. All
// failure classes are folded into the returned ProbeResult; Probe never
// returns an error. An HTTP status below 400 means alive, anything else
// is dead with a short human-readable reason.
func (p *Prober) Probe(ctx context.Context, rawURL string) domain.ProbeResult {
	var lastMessage string

	for attempt := 1; attempt <= p.attempts(); attempt++ {
		status, err := p.attempt(ctx, rawURL)
		if err == nil {
			if status < http.StatusBadRequest {
				return domain.ProbeResult{Alive: true, StatusCode: status}
			}
			// Error statuses are treated as stable for the duration of
			// a run, so there is no point in retrying them.
			return domain.ProbeResult{
				ErrorMessage: fmt.Sprintf("HTTP %d", status),
				StatusCode:   status,
			}
		}

		lastMessage = p.classify(err)
		p.logger.Debug("probe attempt failed",
			zap.String("url", rawURL),
			zap.Int("attempt", attempt),
			zap.String("reason", lastMessage))

		if attempt < p.attempts() {
			select {
			case <-time.After(p.config.RetryBackoff() * time.Duration(attempt)):
			case <-ctx.Done():
				return domain.ProbeResult{ErrorMessage: p.classify(ctx.Err())}
			}
		}
	}
	return domain.ProbeResult{ErrorMessage: lastMessage}
}

// attempt issues one header-only request, falling back to a capped
// ranged GET when the server refuses HEAD outright.
func (p *Prober) attempt(ctx context.Context, rawURL string) (int, error) {
	status, err := p.do(ctx, http.MethodHead, rawURL, false)
	if err != nil {
		return 0, err
	}
	if status == http.StatusMethodNotAllowed {
		return p.do(ctx, http.MethodGet, rawURL, true)
	}
	return status, nil
}

func (p *Prober) do(ctx context.Context, method, rawURL string, ranged bool) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.ProbeTimeout())
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, method, rawURL, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", p.config.UserAgent)
	if ranged {
		req.Header.Set("Range", rangeHeader)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Drain the body so the connection is left in a reusable state.
	_, _ = io.CopyN(io.Discard, resp.Body, drainLimit)
	return resp.StatusCode, nil
}

func (p *Prober) attempts() int {
	if p.config.MaxRetries < 1 {
		return 1
	}
	return p.config.MaxRetries
}

// classify maps transport failures onto the short messages that end up
// in reports.
func (p *Prober) classify(err error) string {
	var dnsErr *net.DNSError
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Sprintf("Timeout after %dms", p.config.ProbeTimeoutMS)
	case errors.As(err, &dnsErr):
		return "Host not found"
	case errors.Is(err, syscall.ECONNREFUSED):
		return "Connection refused"
	case errors.Is(err, syscall.ETIMEDOUT):
		return "Connection timeout"
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Sprintf("Timeout after %dms", p.config.ProbeTimeoutMS)
	}
	return "Connection error: " + rootCause(err).Error()
}

// rootCause strips the url.Error envelope so reports carry the bare
// transport detail instead of repeating the method and URL.
func rootCause(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
