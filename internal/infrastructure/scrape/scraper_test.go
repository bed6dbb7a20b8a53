package scrape

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleHTML() string {
	paragraph := strings.Repeat("Regulators approved the merger after a long review. ", 8)
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><title>Merger approved after review</title></head>
<body>
  <article>
    <h1>Merger approved after review</h1>
    <p>%s</p>
    <p>%s</p>
    <p>%s</p>
  </article>
</body>
</html>`, paragraph, paragraph, paragraph)
}

func TestScrapeExtractsReadableText(t *testing.T) {
	t.Parallel()

	var gotUA string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(articleHTML()))
	}))
	defer server.Close()

	scraper := NewReadabilityScraper(server.Client(), nil)
	article, err := scraper.Scrape(context.Background(), server.URL+"/articles/1")
	require.NoError(t, err)

	assert.Contains(t, gotUA, "Mozilla/5.0", "scraper must identify like a browser")
	assert.Contains(t, article.Title, "Merger approved")
	assert.Contains(t, article.Text, "Regulators approved the merger")
	assert.Greater(t, len(article.Text), 200)
	assert.Equal(t, server.URL+"/articles/1", article.URL)
}

func TestScrapeFallsBackToParagraphs(t *testing.T) {
	t.Parallel()

	// Bare paragraphs without article markup still yield usable text.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><head><title>Short note</title></head><body>
			<p>` + strings.Repeat("Quarterly results beat expectations. ", 10) + `</p>
		</body></html>`))
	}))
	defer server.Close()

	scraper := NewReadabilityScraper(server.Client(), nil)
	article, err := scraper.Scrape(context.Background(), server.URL)
	require.NoError(t, err)

	assert.Contains(t, article.Text, "Quarterly results beat expectations")
	assert.NotEmpty(t, article.Title)
}

func TestScrapeReturnsErrorForHTTPFailure(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	scraper := NewReadabilityScraper(server.Client(), nil)
	_, err := scraper.Scrape(context.Background(), server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestParagraphFallbackJoinsParagraphs(t *testing.T) {
	t.Parallel()

	title, text := paragraphFallback(strings.NewReader(
		`<html><head><title>T</title></head><body><p>one</p><div><p>two</p></div></body></html>`))

	assert.Equal(t, "T", title)
	assert.Equal(t, "one\n\ntwo", text)
}
