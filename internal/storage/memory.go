package storage

import (
	"context"
	"strings"
	"sync"
	"time"

	"newsguard/internal/domain"
	"newsguard/internal/ports"
)

// MemoryRepository is an append-only in-process article store. A single
// mutex guards the append-and-assign step so concurrent creates can
// never interleave id or timestamp assignment; reads take a shared lock
// and see a consistent snapshot of completed creates.
type MemoryRepository struct {
	mu       sync.RWMutex
	nextID   int64
	articles []domain.Article
}

var _ ports.ArticleRepository = (*MemoryRepository)(nil)

// NewMemoryRepository builds an empty store.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextID: 1}
}

// Create assigns id and timestamp and appends the record as one unit.
func (r *MemoryRepository) Create(_ context.Context, article domain.Article) (domain.Article, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	article.ID = r.nextID
	r.nextID++
	if article.Timestamp.IsZero() {
		article.Timestamp = time.Now().UTC()
	}

	r.articles = append(r.articles, article)
	return article, nil
}

// List returns the requested newest-first page and the total page count.
func (r *MemoryRepository) List(_ context.Context, page, pageSize int) ([]domain.Article, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 1
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	totalPages := (len(r.articles) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	start := (page - 1) * pageSize
	if start >= len(r.articles) {
		return []domain.Article{}, totalPages, nil
	}

	end := start + pageSize
	if end > len(r.articles) {
		end = len(r.articles)
	}

	newest := r.newestFirstLocked()
	return newest[start:end], totalPages, nil
}

// Search matches the query case-insensitively against title and content.
// An empty query yields an empty result rather than the full set.
func (r *MemoryRepository) Search(_ context.Context, query string) ([]domain.Article, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return []domain.Article{}, nil
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	results := []domain.Article{}
	for _, article := range r.newestFirstLocked() {
		if strings.Contains(strings.ToLower(article.Title), query) ||
			strings.Contains(strings.ToLower(article.Content), query) {
			results = append(results, article)
		}
	}

	return results, nil
}

// All returns every stored article newest-first.
func (r *MemoryRepository) All(_ context.Context) ([]domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.newestFirstLocked(), nil
}

func (r *MemoryRepository) newestFirstLocked() []domain.Article {
	reversed := make([]domain.Article, len(r.articles))
	for i, article := range r.articles {
		reversed[len(r.articles)-1-i] = article
	}
	return reversed
}
