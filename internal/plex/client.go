// internal/plex/client.go
package plex

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// ErrNotFound is returned when Plex has no metadata for a rating key.
var ErrNotFound = errors.New("item not found")

// Client interacts with the Plex Media Server API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	log        *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithInsecureTLS disables certificate verification, for servers reached
// through their self-signed https endpoint.
func WithInsecureTLS() Option {
	return func(c *Client) {
		transport := http.DefaultTransport.(*http.Transport).Clone()
		transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: true} //nolint:gosec // opt-in
		c.httpClient.Transport = transport
	}
}

// NewClient creates a new Plex client.
func NewClient(baseURL, token string, log *slog.Logger, opts ...Option) *Client {
	if log == nil {
		log = slog.Default()
	}
	c := &Client{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		token:   token,
		log:     log.With("component", "plex"),
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the server URL without trailing slash.
func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) newRequest(ctx context.Context, method, path string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-Plex-Token", c.token)
	req.Header.Set("Accept", "application/json")
	return req, nil
}

// getContainer performs a GET and decodes the MediaContainer envelope.
func (c *Client) getContainer(ctx context.Context, path string) (*container, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var result container
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

// decodeItems decodes each metadata entry, skipping entries that do not fit
// the Item shape.
func (c *Client) decodeItems(raw []json.RawMessage) []Item {
	items := make([]Item, 0, len(raw))
	for _, r := range raw {
		var it Item
		if err := json.Unmarshal(r, &it); err != nil {
			c.log.Debug("skipping undecodable metadata entry", "error", err)
			continue
		}
		items = append(items, it)
	}
	return items
}

// List returns the summaries of all movies or shows in a library section.
// External ids are requested inline.
func (c *Client) List(ctx context.Context, libraryID string, kind Kind) ([]Item, error) {
	path := fmt.Sprintf("/library/sections/%s/all?type=%s&includeGuids=1",
		url.PathEscape(libraryID), kind.sectionType())

	result, err := c.getContainer(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("list library %s: %w", libraryID, err)
	}

	items := c.decodeItems(result.MediaContainer.Metadata)
	c.log.Debug("library listed", "library", libraryID, "kind", kind, "items", len(items))
	return items, nil
}

// Item returns the full metadata for one rating key, labels and media included.
func (c *Client) Item(ctx context.Context, ratingKey string) (*Item, error) {
	result, err := c.getContainer(ctx, "/library/metadata/"+url.PathEscape(ratingKey))
	if err != nil {
		return nil, fmt.Errorf("item %s: %w", ratingKey, err)
	}

	items := c.decodeItems(result.MediaContainer.Metadata)
	if len(items) == 0 {
		return nil, fmt.Errorf("item %s: %w", ratingKey, ErrNotFound)
	}
	return &items[0], nil
}

// ProgressFunc is called after each item of a batch hydration.
type ProgressFunc func(done, total int)

// ListWithLabels lists a library then fetches the details of every item so
// labels and media are populated. An item whose detail fetch fails is kept
// in its summary form.
func (c *Client) ListWithLabels(ctx context.Context, libraryID string, kind Kind, progress ProgressFunc) ([]Item, error) {
	summaries, err := c.List(ctx, libraryID, kind)
	if err != nil {
		return nil, err
	}

	detailed := make([]Item, 0, len(summaries))
	for i, summary := range summaries {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		item, err := c.Item(ctx, summary.RatingKey)
		if err != nil {
			c.log.Warn("detail fetch failed, keeping summary", "title", summary.Title, "rating_key", summary.RatingKey, "error", err)
			detailed = append(detailed, summary)
		} else {
			detailed = append(detailed, *item)
		}
		if progress != nil {
			progress(i+1, len(summaries))
		}
	}
	return detailed, nil
}

// Seasons returns the seasons of a show in Plex order.
func (c *Client) Seasons(ctx context.Context, showKey string) ([]Item, error) {
	result, err := c.getContainer(ctx, "/library/metadata/"+url.PathEscape(showKey)+"/children")
	if err != nil {
		return nil, fmt.Errorf("seasons of %s: %w", showKey, err)
	}

	items := c.decodeItems(result.MediaContainer.Metadata)
	seasons := items[:0]
	for _, it := range items {
		if it.Type == "" || it.Type == KindSeason {
			it.Type = KindSeason
			seasons = append(seasons, it)
		}
	}
	return seasons, nil
}

// UploadPoster replaces the item's poster with a JPEG image.
func (c *Client) UploadPoster(ctx context.Context, ratingKey string, jpeg []byte) error {
	req, err := c.newRequest(ctx, http.MethodPost,
		"/library/metadata/"+url.PathEscape(ratingKey)+"/posters", bytes.NewReader(jpeg))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "image/jpeg")
	req.ContentLength = int64(len(jpeg))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("upload failed with status: %d", resp.StatusCode)
	}

	c.log.Debug("poster uploaded", "rating_key", ratingKey, "bytes", len(jpeg), "duration_ms", time.Since(start).Milliseconds())
	return nil
}

// AddLabel appends a label tag to the item.
func (c *Client) AddLabel(ctx context.Context, ratingKey, tag string) error {
	path := fmt.Sprintf("/library/metadata/%s?%s=%s",
		url.PathEscape(ratingKey), url.QueryEscape("label[0].tag.tag"), url.QueryEscape(tag))

	req, err := c.newRequest(ctx, http.MethodPut, path, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("add label failed with status: %d", resp.StatusCode)
	}
	return nil
}

// Thumbnail is a poster image fetched from the server.
type Thumbnail struct {
	Data        []byte
	ContentType string
}

// Thumb fetches the item's current poster. Plex answers with a redirect to
// the transcoder; exactly one redirect is followed.
func (c *Client) Thumb(ctx context.Context, ratingKey string) (*Thumbnail, error) {
	noRedirect := *c.httpClient
	noRedirect.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}

	target := c.baseURL + "/library/metadata/" + url.PathEscape(ratingKey) + "/thumb"
	for hop := 0; hop < 2; hop++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		if c.sameHost(req.URL) {
			req.Header.Set("X-Plex-Token", c.token)
		}

		resp, err := noRedirect.Do(req)
		if err != nil {
			return nil, fmt.Errorf("request failed: %w", err)
		}

		if resp.StatusCode >= 300 && resp.StatusCode < 400 && hop == 0 {
			location := resp.Header.Get("Location")
			_ = resp.Body.Close()
			if location == "" {
				return nil, errors.New("redirect without location")
			}
			target, err = c.resolve(location)
			if err != nil {
				return nil, err
			}
			continue
		}

		thumb, err := readThumb(resp)
		_ = resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("thumb %s: %w", ratingKey, err)
		}
		return thumb, nil
	}
	return nil, fmt.Errorf("thumb %s: too many redirects", ratingKey)
}

func readThumb(resp *http.Response) (*Thumbnail, error) {
	if resp.StatusCode == http.StatusNotFound {
		return nil, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/jpeg"
	}
	return &Thumbnail{Data: data, ContentType: contentType}, nil
}

// sameHost reports whether u points at the configured server. The token is
// only ever sent there.
func (c *Client) sameHost(u *url.URL) bool {
	base, err := url.Parse(c.baseURL)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, base.Host)
}

// resolve turns a Location header into an absolute URL on the server.
func (c *Client) resolve(location string) (string, error) {
	ref, err := url.Parse(location)
	if err != nil {
		return "", fmt.Errorf("parse location: %w", err)
	}
	base, err := url.Parse(c.baseURL + "/")
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	return base.ResolveReference(ref).String(), nil
}
