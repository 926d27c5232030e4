package fetcher

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-shiori/go-readability"

	"github.com/wgomg/synopsis/internal/config"
	"github.com/wgomg/synopsis/internal/utils"
)

var ErrInvalidURL = errors.New("invalid URL")

// StatusError is returned when the remote page answers with a non-200 status.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

type Article struct {
	Title   string
	Byline  string
	Text    string
	SiteURL string
}

type Client struct {
	httpClient       *http.Client
	logger           *utils.Logger
	userAgent        string
	maxContentLength int
}

func NewClient(cfg *config.Config, logger *utils.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.Fetcher.TimeoutSeconds) * time.Second,
		},
		logger:           logger,
		userAgent:        cfg.Fetcher.UserAgent,
		maxContentLength: cfg.Fetcher.MaxContentLength,
	}
}

// FetchArticle downloads rawURL and extracts its readable text.
func (c *Client) FetchArticle(ctx context.Context, rawURL string, reqID string) (*Article, error) {
	parsedURL, err := url.Parse(rawURL)
	if err != nil || (parsedURL.Scheme != "http" && parsedURL.Scheme != "https") || parsedURL.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidURL, rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	c.logger.Debug(&reqID, "Fetching article from %s", rawURL)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch article: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{StatusCode: resp.StatusCode, URL: rawURL}
	}

	var body io.Reader = resp.Body
	if c.maxContentLength > 0 {
		body = io.LimitReader(resp.Body, int64(c.maxContentLength))
	}

	article, err := readability.FromReader(body, parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse article: %w", err)
	}

	text := strings.TrimSpace(article.TextContent)
	c.logger.Debug(&reqID, "Extracted %d bytes of text from %s", len(text), rawURL)

	return &Article{
		Title:   article.Title,
		Byline:  article.Byline,
		Text:    text,
		SiteURL: rawURL,
	}, nil
}
