package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/five82/roster/internal/logging"
)

// Fetcher defines the character service operations roster depends on.
// This interface is implemented by *Client and can be faked in tests.
type Fetcher interface {
	FetchCharacters(ctx context.Context, query string, page int) (Page, error)
	FetchPlanet(ctx context.Context, rawURL string) (Planet, error)
	FetchSpecies(ctx context.Context, rawURL string) (Species, error)
	FetchFilm(ctx context.Context, rawURL string) (Film, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the character service HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
	logger    zerolog.Logger
}

const (
	defaultAPIURL    = "http://127.0.0.1:8080/api"
	defaultUserAgent = "roster/0.1"
	charactersPath   = "characters"

	// transportTimeout backstops callers that pass a context without a deadline.
	transportTimeout = 30 * time.Second
)

// NewClient builds a Client rooted at apiURL. Host-only values get an http scheme.
func NewClient(apiURL string) (*Client, error) {
	base, err := parseBaseURL(apiURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: transportTimeout,
		},
		userAgent: defaultUserAgent,
		logger:    logging.NewLogger("catalog"),
	}, nil
}

// BaseURL returns the normalized service root.
func (c *Client) BaseURL() string {
	if c == nil {
		return ""
	}
	return c.baseURL.String()
}

// FetchCharacters retrieves one page of characters. The search parameter is
// sent only for a non-empty query; page is always sent.
func (c *Client) FetchCharacters(ctx context.Context, query string, page int) (Page, error) {
	if c == nil {
		return Page{}, ErrNilClient
	}
	if page < 1 {
		page = 1
	}
	values := url.Values{}
	if q := strings.TrimSpace(query); q != "" {
		values.Set("search", q)
	}
	values.Set("page", strconv.Itoa(page))

	reqURL := c.baseURL.JoinPath(charactersPath)
	reqURL.RawQuery = values.Encode()

	var payload Page
	if err := c.doURL(ctx, "characters", reqURL, &payload); err != nil {
		return Page{}, err
	}
	return payload, nil
}

// FetchPlanet resolves a homeworld URL.
func (c *Client) FetchPlanet(ctx context.Context, rawURL string) (Planet, error) {
	var payload Planet
	if err := c.fetchResource(ctx, "planet", rawURL, &payload); err != nil {
		return Planet{}, err
	}
	return payload, nil
}

// FetchSpecies resolves a species URL.
func (c *Client) FetchSpecies(ctx context.Context, rawURL string) (Species, error) {
	var payload Species
	if err := c.fetchResource(ctx, "species", rawURL, &payload); err != nil {
		return Species{}, err
	}
	return payload, nil
}

// FetchFilm resolves a film URL.
func (c *Client) FetchFilm(ctx context.Context, rawURL string) (Film, error) {
	var payload Film
	if err := c.fetchResource(ctx, "film", rawURL, &payload); err != nil {
		return Film{}, err
	}
	return payload, nil
}

func (c *Client) fetchResource(ctx context.Context, resource, rawURL string, dest any) error {
	if c == nil {
		return ErrNilClient
	}
	reqURL, err := c.resolve(rawURL)
	if err != nil {
		return err
	}
	return c.doURL(ctx, resource, reqURL, dest)
}

// resolve accepts absolute resource URLs as-is and joins relative ones onto
// the base URL.
func (c *Client) resolve(rawURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(rawURL)
	if trimmed == "" {
		return nil, fmt.Errorf("resource url is empty")
	}
	ref, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse resource url %q: %w", rawURL, err)
	}
	return c.baseURL.ResolveReference(ref), nil
}

func (c *Client) doURL(ctx context.Context, resource string, reqURL *url.URL, dest any) error {
	start := time.Now()
	defer func() {
		apiRequestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		class := classifyTransport(err)
		apiRequestsTotal.WithLabelValues(resource, string(class)).Inc()
		apiErrorsTotal.WithLabelValues(string(class)).Inc()
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	apiRequestsTotal.WithLabelValues(resource, strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode >= 400 {
		apiErr := &APIError{
			StatusCode: resp.StatusCode,
			Class:      classifyStatus(resp.StatusCode),
			URL:        reqURL.String(),
		}
		apiErrorsTotal.WithLabelValues(string(apiErr.Class)).Inc()
		return apiErr
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		apiErrorsTotal.WithLabelValues(string(ErrorClassDecode)).Inc()
		return fmt.Errorf("decode response: %w", err)
	}

	c.logger.Debug().
		Str("resource", resource).
		Str("url", reqURL.String()).
		Dur("duration", time.Since(start)).
		Msg("request complete")
	return nil
}

func parseBaseURL(apiURL string) (*url.URL, error) {
	trimmed := strings.TrimSpace(apiURL)
	if trimmed == "" {
		trimmed = defaultAPIURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "http://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parse api_url %q: %w", apiURL, err)
	}
	if u.Host == "" {
		return nil, fmt.Errorf("parse api_url %q: missing host", apiURL)
	}
	// Trailing slash so relative resource URLs resolve beneath the base path.
	if !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
