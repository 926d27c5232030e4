package fetcher

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wgomg/synopsis/internal/config"
	"github.com/wgomg/synopsis/internal/utils"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Test Article</title></head>
<body>
<article>
<h1>Test Article Title</h1>
<p>This is the main content of the article. It contains important information that should be extracted by the reader.</p>
<p>Second paragraph with more details about the topic, long enough to be kept as article content.</p>
</article>
</body>
</html>`

func newTestClient() *Client {
	cfg := &config.Config{Fetcher: config.FetcherConfig{
		TimeoutSeconds:   5,
		MaxContentLength: 1 << 20,
		UserAgent:        "test-agent",
	}}
	return NewClient(cfg, utils.NewDiscardLogger())
}

func TestFetchArticle(t *testing.T) {
	var gotAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(articleHTML))
	}))
	defer server.Close()

	article, err := newTestClient().FetchArticle(context.Background(), server.URL, "req")
	require.NoError(t, err)

	assert.Equal(t, "test-agent", gotAgent)
	assert.Contains(t, article.Text, "main content")
	assert.Equal(t, server.URL, article.SiteURL)
}

func TestFetchArticleStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	_, err := newTestClient().FetchArticle(context.Background(), server.URL, "req")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.StatusCode)
}

func TestFetchArticleInvalidURL(t *testing.T) {
	c := newTestClient()

	for _, u := range []string{"", "not a url", "ftp://example.com/file", "http://"} {
		_, err := c.FetchArticle(context.Background(), u, "req")
		assert.ErrorIs(t, err, ErrInvalidURL, u)
	}
}
