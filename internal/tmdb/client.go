package tmdb

import (
	"cmp"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	defaultBaseURL      = "https://api.themoviedb.org"
	defaultImageBaseURL = "https://image.tmdb.org/t/p"
	defaultCacheTTL     = 24 * time.Hour
)

// ErrNotFound is returned when TMDB answers with a non-success status.
var ErrNotFound = errors.New("not found")

// Client is a TMDB API client.
type Client struct {
	apiKey       string
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
	cache        *cache
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL (for testing).
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(url, "/")
	}
}

// WithImageBaseURL sets the prefix of returned poster URLs.
func WithImageBaseURL(url string) Option {
	return func(c *Client) {
		c.imageBaseURL = strings.TrimSuffix(url, "/")
	}
}

// WithCacheTTL sets the cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = newCache(ttl)
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// NewClient creates a new TMDB client.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		imageBaseURL: defaultImageBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		cache: newCache(defaultCacheTTL),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PosterURL returns the full-size URL of a poster file path.
func (c *Client) PosterURL(filePath string) string {
	if filePath == "" {
		return ""
	}
	return c.imageBaseURL + "/original" + filePath
}

// get fetches path and decodes the JSON body into out.
// Any non-success status yields ErrNotFound.
func (c *Client) get(ctx context.Context, path string, out any) error {
	u := fmt.Sprintf("%s/3/%s?api_key=%s", c.baseURL, path, url.QueryEscape(c.apiKey))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("%s: %s: %w", path, resp.Status, ErrNotFound)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// Details fetches movie, show or season details. Responses are cached.
func (c *Client) Details(ctx context.Context, path string) (*Details, error) {
	if d, ok := c.cache.get(path); ok {
		return d, nil
	}

	var d Details
	if err := c.get(ctx, path, &d); err != nil {
		return nil, err
	}

	c.cache.set(path, &d)
	return &d, nil
}

// TextlessPoster returns the best textless poster URL for a movie or show,
// falling back to the best French poster. An empty string means none.
func (c *Client) TextlessPoster(ctx context.Context, mediaType MediaType, id string) (string, error) {
	return c.bestImage(ctx, fmt.Sprintf("%s/%s/images", mediaType, url.PathEscape(id)))
}

// StandardPoster returns the default poster URL from the details endpoint.
func (c *Client) StandardPoster(ctx context.Context, mediaType MediaType, id string) (string, error) {
	d, err := c.Details(ctx, fmt.Sprintf("%s/%s", mediaType, url.PathEscape(id)))
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return c.PosterURL(d.PosterPath), nil
}

// ShowStatus returns the lifecycle status of a show, e.g. "Returning Series".
func (c *Client) ShowStatus(ctx context.Context, id string) (string, error) {
	d, err := c.Details(ctx, fmt.Sprintf("%s/%s", MediaTV, url.PathEscape(id)))
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return d.Status, nil
}

// SeasonPoster returns a textless season poster, else the season's default one.
func (c *Client) SeasonPoster(ctx context.Context, showID string, season int) (string, error) {
	base := fmt.Sprintf("%s/%s/season/%d", MediaTV, url.PathEscape(showID), season)

	poster, err := c.bestImage(ctx, base+"/images")
	if err != nil || poster != "" {
		return poster, err
	}

	d, err := c.Details(ctx, base)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return c.PosterURL(d.PosterPath), nil
}

func (c *Client) bestImage(ctx context.Context, path string) (string, error) {
	var images imagesResponse
	err := c.get(ctx, path, &images)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	best, ok := SelectPoster(images.Posters)
	if !ok {
		return "", nil
	}
	return c.PosterURL(best.FilePath), nil
}

// SelectPoster picks the largest textless poster, votes breaking ties.
// Without textless candidates it picks the largest French poster.
func SelectPoster(posters []Image) (Image, bool) {
	var textless, french []Image
	for _, p := range posters {
		switch {
		case p.Textless():
			textless = append(textless, p)
		case *p.Language == "fr":
			french = append(french, p)
		}
	}

	if len(textless) > 0 {
		slices.SortStableFunc(textless, func(a, b Image) int {
			return cmp.Or(
				cmp.Compare(b.pixels(), a.pixels()),
				cmp.Compare(b.VoteAverage, a.VoteAverage),
			)
		})
		return textless[0], true
	}

	if len(french) > 0 {
		slices.SortStableFunc(french, func(a, b Image) int {
			return cmp.Compare(b.pixels(), a.pixels())
		})
		return french[0], true
	}

	return Image{}, false
}
