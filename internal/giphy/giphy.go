// Package giphy is a small client for the GIPHY search and trending APIs.
// Every failure degrades to a fixed palette of fallback GIFs.
package giphy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// DefaultBaseURL is the public GIPHY gifs endpoint.
const DefaultBaseURL = "https://api.giphy.com/v1/gifs"

// DefaultLimit is the page size used when the caller passes limit <= 0.
const DefaultLimit = 12

// Outbound request budget. Beta GIPHY keys allow roughly 100 calls an hour.
const (
	defaultRPS   = 1.0
	defaultBurst = 5
)

// FallbackURLs is the palette returned whenever GIPHY cannot be used.
// The placeholder generator cycles through it as well.
var FallbackURLs = []string{
	"https://media.giphy.com/media/3o6Zt6KHxJTbX20WTS/giphy.gif",
	"https://media.giphy.com/media/l0MYt5jPR6QX5pnqM/giphy.gif",
	"https://media.giphy.com/media/ZfK4cXKJTTay1Ava29/giphy.gif",
	"https://media.giphy.com/media/xTiN0L7EW5trfOvEk0/giphy.gif",
	"https://media.giphy.com/media/3oEjI6SIIHBdRxXI40/giphy.gif",
	"https://media.giphy.com/media/l46CyJmS9KUbokzsI/giphy.gif",
}

// GIF is the flattened form handed to pickers.
type GIF struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	URL         string `json:"url"`
	OriginalURL string `json:"originalUrl"`
}

// Config GIPHY client settings
type Config struct {
	APIKey  string
	BaseURL string
	Rating  string
	Timeout time.Duration

	// RequestsPerSecond and Burst shape the outbound token bucket.
	RequestsPerSecond float64
	Burst             int
}

// Client calls GIPHY. It never returns an error to callers.
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
	log        zerolog.Logger
}

// NewClient creates a GIPHY client
func NewClient(cfg Config, log zerolog.Logger) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Rating == "" {
		cfg.Rating = "g"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = defaultRPS
	}
	if cfg.Burst <= 0 {
		cfg.Burst = defaultBurst
	}
	return &Client{
		config:     cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), cfg.Burst),
		log:        log.With().Str("component", "giphy").Logger(),
	}
}

// Fallback returns the palette as GIFs with ids fallback-{i}.
func Fallback() []GIF {
	out := make([]GIF, len(FallbackURLs))
	for i, u := range FallbackURLs {
		out[i] = GIF{ID: fmt.Sprintf("fallback-%d", i), URL: u, OriginalURL: u}
	}
	return out
}

// Search looks up GIFs matching query. An empty query yields an empty list.
func (c *Client) Search(ctx context.Context, query string, limit int) []GIF {
	if query == "" {
		return []GIF{}
	}
	params := url.Values{}
	params.Set("q", query)
	return c.fetch(ctx, "search", params, limit)
}

// Trending returns the current trending GIFs.
func (c *Client) Trending(ctx context.Context, limit int) []GIF {
	return c.fetch(ctx, "trending", url.Values{}, limit)
}

type apiResponse struct {
	Data []struct {
		ID     string `json:"id"`
		Title  string `json:"title"`
		Images struct {
			FixedHeight struct {
				URL string `json:"url"`
			} `json:"fixed_height"`
			Original struct {
				URL string `json:"url"`
			} `json:"original"`
		} `json:"images"`
	} `json:"data"`
}

func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values, limit int) []GIF {
	if limit <= 0 {
		limit = DefaultLimit
	}
	params.Set("api_key", c.config.APIKey)
	params.Set("limit", strconv.Itoa(limit))
	params.Set("rating", c.config.Rating)

	if !c.limiter.Allow() {
		c.log.Warn().Str("endpoint", endpoint).Msg("giphy budget exhausted, using fallback gifs")
		return Fallback()
	}

	gifs, err := c.do(ctx, c.config.BaseURL+"/"+endpoint+"?"+params.Encode())
	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", endpoint).Msg("giphy request failed, using fallback gifs")
		return Fallback()
	}
	return gifs
}

func (c *Client) do(ctx context.Context, rawURL string) ([]GIF, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("giphy api error: %d", resp.StatusCode)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("decode giphy response: %w", err)
	}

	gifs := make([]GIF, 0, len(parsed.Data))
	for _, d := range parsed.Data {
		gifs = append(gifs, GIF{
			ID:          d.ID,
			Title:       d.Title,
			URL:         d.Images.FixedHeight.URL,
			OriginalURL: d.Images.Original.URL,
		})
	}
	return gifs, nil
}

// IsFallback reports whether gifs is the fallback palette.
func IsFallback(gifs []GIF) bool {
	return len(gifs) == len(FallbackURLs) && len(gifs) > 0 && gifs[0].ID == "fallback-0"
}
