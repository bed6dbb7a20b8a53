package scrape

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"

	"NewsAnalyst/internal/domain"
	"NewsAnalyst/internal/ports"
)

const (
	browserUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"
	maxBodyBytes     = 2 << 20
	// readabilityFloor is the minimum extracted length before the goquery
	// paragraph fallback kicks in.
	readabilityFloor = 140
)

// ReadabilityScraper downloads a page and extracts the readable article
// text, preferring go-readability and falling back to joined <p> elements.
type ReadabilityScraper struct {
	client *http.Client
	logger *slog.Logger
}

var _ ports.ArticleScraper = (*ReadabilityScraper)(nil)

// NewReadabilityScraper wires an HTTP client; timeout defaults to 15s.
func NewReadabilityScraper(client *http.Client, log *slog.Logger) *ReadabilityScraper {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &ReadabilityScraper{client: client, logger: log}
}

// Scrape fetches the page with a browser-like identification header and
// returns the extracted article. Parse shortfalls degrade to the fallback
// extractor; only transport and HTTP errors are returned to the caller.
func (s *ReadabilityScraper) Scrape(ctx context.Context, pageURL string) (domain.Article, error) {
	body, err := s.download(ctx, pageURL)
	if err != nil {
		return domain.Article{}, err
	}

	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return domain.Article{}, fmt.Errorf("invalid article url: %w", err)
	}

	article := domain.Article{URL: pageURL}

	extracted, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err == nil {
		article.Title = strings.TrimSpace(extracted.Title)
		article.Text = strings.TrimSpace(extracted.TextContent)
		if byline := strings.TrimSpace(extracted.Byline); byline != "" {
			article.Authors = []string{byline}
		}
		if extracted.PublishedTime != nil {
			article.PublishDate = extracted.PublishedTime.Format("2006-01-02")
		}
	} else if s.logger != nil {
		s.logger.Debug("readability parse failed", "url", pageURL, "error", err)
	}

	if len(article.Text) < readabilityFloor {
		title, text := paragraphFallback(bytes.NewReader(body))
		if article.Title == "" {
			article.Title = title
		}
		if len(text) > len(article.Text) {
			article.Text = text
		}
	}

	return article, nil
}

func (s *ReadabilityScraper) download(ctx context.Context, pageURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", browserUserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("page returned %s", resp.Status)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("read page body: %w", err)
	}

	return body, nil
}

// paragraphFallback joins the page's <p> elements when readability cannot
// produce usable text.
func paragraphFallback(body io.Reader) (title, text string) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return "", ""
	}

	title = strings.TrimSpace(doc.Find("title").First().Text())

	var paragraphs []string
	doc.Find("p").Each(func(_ int, sel *goquery.Selection) {
		if p := strings.TrimSpace(sel.Text()); p != "" {
			paragraphs = append(paragraphs, p)
		}
	})

	return title, strings.Join(paragraphs, "\n\n")
}
