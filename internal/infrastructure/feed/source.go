package feed

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"

	"NewsAnalyst/internal/domain"
	"NewsAnalyst/internal/ports"
)

// Source implements ports.FeedSource over RSS/Atom feeds via gofeed.
type Source struct {
	parser *gofeed.Parser
	logger *slog.Logger
}

var _ ports.FeedSource = (*Source)(nil)

// NewSource wires an HTTP client into the feed parser; the client defaults
// to a 15-second timeout.
func NewSource(client *http.Client, log *slog.Logger) *Source {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}

	parser := gofeed.NewParser()
	parser.Client = client
	parser.UserAgent = "NewsAnalyst/1.0"

	return &Source{parser: parser, logger: log}
}

// Fetch downloads one feed and maps its newest entries to article stubs,
// truncated to limit. The feed URL itself is recorded as the stub source.
func (s *Source) Fetch(ctx context.Context, feedURL string, limit int) ([]domain.FeedItem, error) {
	parsed, err := s.parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}

	entries := parsed.Items
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}

	items := make([]domain.FeedItem, 0, len(entries))
	for _, entry := range entries {
		items = append(items, domain.FeedItem{
			Title:     entry.Title,
			Link:      entry.Link,
			Published: entry.Published,
			Source:    feedURL,
		})
	}

	if s.logger != nil {
		s.logger.Debug("feed fetched", "url", feedURL, "items", len(items))
	}

	return items, nil
}
