package artic

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/mmcdole/artic/internal/domain"
	"resty.dev/v3"
)

const (
	// DefaultBaseURL is the public artwork API
	DefaultBaseURL = "https://api.artic.edu/api/v1"

	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "artic-tui/1.0"
)

// Options configures a Client
type Options struct {
	BaseURL   string
	IIIFURL   string
	UserAgent string
	Timeout   time.Duration
}

// Client implements domain.ArtworkRepository for the artwork API
type Client struct {
	baseURL    string
	iiifURL    string
	httpClient *resty.Client
	logger     *slog.Logger
}

// NewClient creates a new artwork API client
func NewClient(opts Options, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}
	if opts.IIIFURL == "" {
		opts.IIIFURL = DefaultIIIFURL
	}
	if opts.UserAgent == "" {
		opts.UserAgent = defaultUserAgent
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	baseURL := strings.TrimRight(opts.BaseURL, "/")

	// Retries stay off: a failed fetch surfaces to the user as-is.
	httpClient := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(opts.Timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", opts.UserAgent).
		SetHeader("AIC-User-Agent", opts.UserAgent)

	return &Client{
		baseURL:    baseURL,
		iiifURL:    opts.IIIFURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// IIIFURL returns the image server base used for image URLs
func (c *Client) IIIFURL() string {
	return c.iiifURL
}

// doGet performs a GET and returns the raw body of a 2xx response
func (c *Client) doGet(ctx context.Context, path string, query map[string]string, pathParams map[string]string) ([]byte, error) {
	req := c.httpClient.R().SetContext(ctx)
	if query != nil {
		req.SetQueryParams(query)
	}
	if pathParams != nil {
		req.SetPathParams(pathParams)
	}

	c.logger.Debug("artic request", "path", path, "query", query, "params", pathParams)

	resp, err := req.Get(path)
	if err != nil {
		c.logger.Error("artic request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: %w", domain.ErrNetwork, err)
	}

	if resp.IsError() {
		c.logger.Error("artic request error", "path", path, "status", resp.StatusCode())
		if resp.StatusCode() == 404 {
			return nil, fmt.Errorf("%w: status %d: %w", domain.ErrNetwork, resp.StatusCode(), domain.ErrNotFound)
		}
		return nil, fmt.Errorf("%w: status %d", domain.ErrNetwork, resp.StatusCode())
	}

	return []byte(resp.String()), nil
}

// decode unmarshals body into dest, mapping failures to domain.ErrDecode
func (c *Client) decode(body []byte, dest interface{}) error {
	if err := json.Unmarshal(body, dest); err != nil {
		c.logger.Error("JSON parse error", "error", err, "bodyLen", len(body))
		return fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}
	return nil
}

func pageQuery(page, limit int) map[string]string {
	return map[string]string{
		"limit": strconv.Itoa(limit),
		"page":  strconv.Itoa(page),
	}
}

// ListArtworks returns one page of the unfiltered collection
func (c *Client) ListArtworks(ctx context.Context, page, limit int) (*domain.ArtworkPage, error) {
	body, err := c.doGet(ctx, "/artworks", pageQuery(page, limit), nil)
	if err != nil {
		return nil, err
	}

	var resp ListResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Pagination == nil {
		return nil, fmt.Errorf("%w: missing pagination", domain.ErrDecode)
	}

	return &domain.ArtworkPage{
		Artworks:    MapArtworks(resp.Data),
		TotalPages:  resp.Pagination.TotalPages,
		CurrentPage: resp.Pagination.CurrentPage,
		Total:       resp.Pagination.Total,
	}, nil
}

// SearchArtworks returns the identifiers matching query on the given page
func (c *Client) SearchArtworks(ctx context.Context, query string, page, limit int) (*domain.PageRef, error) {
	params := pageQuery(page, limit)
	params["q"] = query

	body, err := c.doGet(ctx, "/artworks/search", params, nil)
	if err != nil {
		return nil, err
	}

	var resp SearchResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Pagination == nil {
		return nil, fmt.Errorf("%w: missing pagination", domain.ErrDecode)
	}

	ids := make([]int, 0, len(resp.Data))
	for i, hit := range resp.Data {
		if hit.ID == nil {
			return nil, fmt.Errorf("%w: search hit %d has no id", domain.ErrDecode, i)
		}
		ids = append(ids, *hit.ID)
	}

	return &domain.PageRef{
		IDs:         ids,
		TotalPages:  resp.Pagination.TotalPages,
		CurrentPage: resp.Pagination.CurrentPage,
		Total:       resp.Pagination.Total,
	}, nil
}

// GetArtwork returns a single record, or nil when the service sends no data
func (c *Client) GetArtwork(ctx context.Context, id int) (*domain.Artwork, error) {
	body, err := c.doGet(ctx, "/artworks/{id}", nil, map[string]string{"id": strconv.Itoa(id)})
	if err != nil {
		return nil, err
	}

	var resp DetailResponse
	if err := c.decode(body, &resp); err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, nil
	}

	art := MapArtwork(*resp.Data)
	return &art, nil
}
