package wttr

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/couchcryptid/weather-hazards/internal/domain"
	"github.com/couchcryptid/weather-hazards/internal/observability"
)

// maxErrorBody caps how much of a non-200 body is quoted in errors.
const maxErrorBody = 256

// Client fetches wttr.in `format=j1` documents.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a wttr.in client rooted at baseURL, e.g. "https://wttr.in".
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves the weather document for location. An empty location lets
// the provider resolve the caller's position from the request origin.
func (c *Client) Fetch(ctx context.Context, location string) (domain.ProviderResponse, error) {
	fullURL, err := requestURL(c.baseURL, location)
	if err != nil {
		return domain.ProviderResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("%w: %w", domain.ErrUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	elapsed := time.Since(start)
	c.metrics.LookupDuration.Observe(elapsed.Seconds())
	c.logger.Debug("wttr request",
		"url", fullURL,
		"status", resp.StatusCode,
		"duration", elapsed,
		"bytes", len(body),
	)
	if err != nil {
		return domain.ProviderResponse{}, fmt.Errorf("%w: read body: %w", domain.ErrUnreachable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return domain.ProviderResponse{}, fmt.Errorf("%w: %q", domain.ErrLocationNotFound, location)
	case resp.StatusCode != http.StatusOK:
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		return domain.ProviderResponse{}, fmt.Errorf("%w: status %d: %s",
			domain.ErrUpstream, resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return domain.ParseProviderResponse(body)
}

// requestURL builds <base>/~<location>?format=j1&lang=en, or <base>/ when no
// location is given. Spaces become '+'; url.URL escapes everything else.
func requestURL(baseURL, location string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}

	path := strings.TrimSuffix(u.Path, "/") + "/"
	if location != "" {
		path += "~" + strings.ReplaceAll(location, " ", "+")
	}
	u.Path = path
	u.RawPath = ""
	u.RawQuery = url.Values{
		"format": {"j1"},
		"lang":   {"en"},
	}.Encode()

	return u.String(), nil
}
