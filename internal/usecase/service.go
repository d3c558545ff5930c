package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"newsguard/internal/detector"
	"newsguard/internal/domain"
	"newsguard/internal/ports"
	"newsguard/internal/stats"
)

// ErrValidation marks a precondition violation by the caller, kept
// distinct from internal failures so the transport can map it to a
// client-error class.
var ErrValidation = errors.New("title and content are required")

const (
	defaultSource   = "Manual Entry"
	defaultCategory = "General"
)

// AnalyzeRequest carries the raw fields of one submitted article.
type AnalyzeRequest struct {
	Title    string
	Content  string
	URL      string
	Source   string
	Category string
}

// ServiceDeps wires all collaborators into the analysis service.
type ServiceDeps struct {
	Detector   *detector.Detector
	Repository ports.ArticleRepository
	Source     ports.ArticleSource
	Logger     *slog.Logger
}

// Service orchestrates scoring, persistence and read-side queries.
type Service struct {
	detector   *detector.Detector
	repository ports.ArticleRepository
	source     ports.ArticleSource
	aggregator *stats.Aggregator
	sanitizer  *bluemonday.Policy
	logger     *slog.Logger
}

// NewService constructs the orchestration component. Titles and bodies
// are stripped of markup before scoring since the dashboard renders
// stored fields verbatim.
func NewService(deps ServiceDeps) *Service {
	return &Service{
		detector:   deps.Detector,
		repository: deps.Repository,
		source:     deps.Source,
		aggregator: stats.NewAggregator(deps.Repository),
		sanitizer:  bluemonday.StrictPolicy(),
		logger:     deps.Logger,
	}
}

// Analyze validates, scores and persists one article. Validation
// failures are reported before scoring runs; a failed create persists
// nothing.
func (s *Service) Analyze(ctx context.Context, req AnalyzeRequest) (domain.Article, error) {
	title := s.clean(req.Title)
	content := s.clean(req.Content)
	if title == "" || content == "" {
		return domain.Article{}, ErrValidation
	}

	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = defaultSource
	}
	category := strings.TrimSpace(req.Category)
	if category == "" {
		category = defaultCategory
	}

	analysis := s.detector.Score(title, content, req.URL, source)

	stored, err := s.repository.Create(ctx, domain.Article{
		Title:       title,
		Content:     content,
		Source:      source,
		URL:         req.URL,
		Category:    category,
		SpamScore:   analysis.SpamScore,
		SpamLevel:   analysis.SpamLevel,
		Credibility: analysis.Credibility,
		Details:     analysis.Details,
	})
	if err != nil {
		return domain.Article{}, fmt.Errorf("persist article: %w", err)
	}

	return stored, nil
}

// Scrape pulls headlines from the configured sources and feeds each one
// through the scoring pipeline. Item failures are isolated: one bad
// headline never discards the articles already analyzed.
func (s *Service) Scrape(ctx context.Context) ([]domain.Article, error) {
	if s.source == nil {
		return nil, fmt.Errorf("scrape source is not configured")
	}

	headlines, err := s.source.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch headlines: %w", err)
	}

	analyzed := []domain.Article{}
	for _, headline := range headlines {
		// Front pages expose no bodies; the headline doubles as
		// content, matching the manual-entry scoring path.
		stored, err := s.Analyze(ctx, AnalyzeRequest{
			Title:    headline.Title,
			Content:  headline.Title,
			URL:      headline.URL,
			Source:   headline.Source,
			Category: headline.Category,
		})
		if err != nil {
			if s.logger != nil {
				s.logger.Warn("skip scraped headline", "title", headline.Title, "error", err)
			}
			continue
		}
		analyzed = append(analyzed, stored)
	}

	return analyzed, nil
}

// List returns one newest-first page of stored articles plus the total
// count and page count.
func (s *Service) List(ctx context.Context, page, pageSize int) ([]domain.Article, int, error) {
	articles, pages, err := s.repository.List(ctx, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("list articles: %w", err)
	}
	return articles, pages, nil
}

// Search runs a case-insensitive substring query over title and content.
func (s *Service) Search(ctx context.Context, query string) ([]domain.Article, error) {
	results, err := s.repository.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return results, nil
}

// Export returns the full newest-first article dump.
func (s *Service) Export(ctx context.Context) ([]domain.Article, error) {
	articles, err := s.repository.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("export articles: %w", err)
	}
	return articles, nil
}

// Stats recomputes the classification snapshot.
func (s *Service) Stats(ctx context.Context) (domain.Stats, error) {
	return s.aggregator.Snapshot(ctx)
}

func (s *Service) clean(text string) string {
	return strings.TrimSpace(s.sanitizer.Sanitize(text))
}
