package ports

import (
	"context"
	"time"

	"newsguard/internal/domain"
)

// ArticleRepository persists analyzed articles. Stored records are
// append-only: no update or delete is ever exposed.
type ArticleRepository interface {
	// Create assigns the id and timestamp, persists the record
	// atomically and returns it as stored.
	Create(ctx context.Context, article domain.Article) (domain.Article, error)
	// List returns one newest-first page (1-indexed) plus the total
	// page count; a page beyond range yields an empty slice.
	List(ctx context.Context, page, pageSize int) ([]domain.Article, int, error)
	// Search matches the query case-insensitively against title and
	// content, newest-first. An empty query yields an empty result.
	Search(ctx context.Context, query string) ([]domain.Article, error)
	// All returns every stored article newest-first.
	All(ctx context.Context) ([]domain.Article, error)
}

// ArticleSource pulls fresh headlines from upstream news pages.
type ArticleSource interface {
	Fetch(ctx context.Context) ([]domain.Headline, error)
}

// Notifier streams flagged-article digests to Telegram or other channels.
type Notifier interface {
	PublishDigest(ctx context.Context, digest string) error
}

// Scheduler controls when background scrape runs execute.
type Scheduler interface {
	Start(ctx context.Context, job func(time.Time)) error
	Stop(ctx context.Context) error
}
