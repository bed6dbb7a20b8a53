package ports

import (
	"context"
	"time"

	"NewsAnalyst/internal/domain"
)

// FeedSource pulls article stubs from a single feed URL, capped at limit.
type FeedSource interface {
	Fetch(ctx context.Context, feedURL string, limit int) ([]domain.FeedItem, error)
}

// ArticleScraper downloads one page and extracts its readable content.
type ArticleScraper interface {
	Scrape(ctx context.Context, url string) (domain.Article, error)
}

// Generator sends one self-contained prompt to a text-generation model.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Notifier delivers report digests to external channels (e.g., Telegram).
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Renderer writes the final report into a document artifact and returns
// the artifact path.
type Renderer interface {
	Render(report string, sources, errs []string) (string, error)
}

// Scheduler controls recurring pipeline executions in watch mode.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
