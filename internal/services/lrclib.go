// LRCLIB [Service] implementation
//
// Talks to the public lrclib.net API. Both endpoints are unauthenticated GETs.
package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/desertthunder/lrcx/internal/shared"
	"golang.org/x/time/rate"
)

const (
	defaultLRCLibBaseURL   = "https://lrclib.net"
	defaultLRCLibUserAgent = "lrcx (https://github.com/desertthunder/lrcx)"
	defaultLRCLibTimeout   = 10 * time.Second
)

// LRCLibOpts configures an [LRCLibService]. Zero values select defaults.
type LRCLibOpts struct {
	BaseURL    string
	UserAgent  string
	Timeout    time.Duration // Per request; ignored when HTTPClient is set
	RateLimit  float64       // Requests per second across all callers; 0 disables limiting
	HTTPClient *http.Client
}

// LRCLibService implements [Service] for lrclib.net.
//
// Safe for concurrent use; the rate limiter is shared by every caller.
type LRCLibService struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewLRCLibService creates a new LRCLIB service instance.
func NewLRCLibService(opts LRCLibOpts) *LRCLibService {
	if opts.BaseURL == "" {
		opts.BaseURL = defaultLRCLibBaseURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultLRCLibUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultLRCLibTimeout
	}
	if opts.HTTPClient == nil {
		opts.HTTPClient = &http.Client{Timeout: opts.Timeout}
	}

	limit := rate.Inf
	if opts.RateLimit > 0 {
		limit = rate.Limit(opts.RateLimit)
	}

	return &LRCLibService{
		baseURL:    opts.BaseURL,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
		limiter:    rate.NewLimiter(limit, 1),
	}
}

// Name returns the service name.
func (l *LRCLibService) Name() string {
	return "LRCLIB"
}

// Get calls /api/get with artist_name, track_name and, when positive, duration.
func (l *LRCLibService) Get(ctx context.Context, artist, title string, duration int) (*Track, error) {
	params := url.Values{}
	params.Set("artist_name", artist)
	params.Set("track_name", title)
	if duration > 0 {
		params.Set("duration", strconv.Itoa(duration))
	}

	var track Track
	if err := l.doRequest(ctx, "/api/get", params, &track); err != nil {
		return nil, err
	}
	return &track, nil
}

// Search calls /api/search with q set to query.
func (l *LRCLibService) Search(ctx context.Context, query string) ([]Track, error) {
	params := url.Values{}
	params.Set("q", query)

	var tracks []Track
	if err := l.doRequest(ctx, "/api/search", params, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (l *LRCLibService) doRequest(ctx context.Context, endpoint string, params url.Values, result any) error {
	if err := l.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", shared.ErrAPIRequest, err)
	}

	apiURL := l.baseURL + endpoint + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", l.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := l.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", shared.ErrAPIRequest, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", shared.ErrLyricsNotFound, endpoint)
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("%w: lrclib %s returned status %d", shared.ErrUnexpectedStatus, endpoint, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", shared.ErrAPIRequest, err)
	}

	return nil
}
