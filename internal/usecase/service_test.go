package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"newsguard/internal/config"
	"newsguard/internal/detector"
	"newsguard/internal/domain"
	"newsguard/internal/ports"
	"newsguard/internal/storage"
	"newsguard/internal/trust"
)

type stubSource struct {
	headlines []domain.Headline
	err       error
}

func (s *stubSource) Fetch(context.Context) ([]domain.Headline, error) {
	return s.headlines, s.err
}

func newTestService(source ports.ArticleSource) (*Service, *storage.MemoryRepository) {
	repo := storage.NewMemoryRepository()
	svc := NewService(ServiceDeps{
		Detector:   detector.New(config.ScoringConfig{}, trust.Default()),
		Repository: repo,
		Source:     source,
	})
	return svc, repo
}

func TestAnalyzeValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil)
	ctx := context.Background()

	cases := []AnalyzeRequest{
		{Title: "", Content: "some body"},
		{Title: "some title", Content: ""},
		{Title: "   ", Content: "some body"},
		{Title: "<b></b>", Content: "tags only become empty"},
	}
	for _, req := range cases {
		if _, err := svc.Analyze(ctx, req); !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation for %+v, got %v", req, err)
		}
	}

	if all, err := svc.Export(ctx); err != nil || len(all) != 0 {
		t.Fatalf("validation failures must not persist anything, got %d articles (err %v)", len(all), err)
	}
}

func TestAnalyzeDefaultsAndSanitization(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil)
	article, err := svc.Analyze(context.Background(), AnalyzeRequest{
		Title:   "<script>alert(1)</script>Quiet day on the markets",
		Content: "<p>Trading volumes stayed low, according to exchange officials.</p>",
	})
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if article.Title != "Quiet day on the markets" {
		t.Fatalf("expected markup stripped from title, got %q", article.Title)
	}
	if article.Source != "Manual Entry" {
		t.Fatalf("expected default source, got %q", article.Source)
	}
	if article.Category != "General" {
		t.Fatalf("expected default category, got %q", article.Category)
	}
	if article.ID == 0 || article.Timestamp.IsZero() {
		t.Fatalf("expected stored record with id and timestamp, got %+v", article)
	}
	if article.SpamLevel != domain.LevelForScore(article.SpamScore) {
		t.Fatalf("level %s inconsistent with score %d", article.SpamLevel, article.SpamScore)
	}
}

func TestAnalyzeTwiceStoresTwoRecords(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil)
	ctx := context.Background()
	req := AnalyzeRequest{
		Title:   "Shocking viral claim spreads",
		Content: "a short unattributed body",
		URL:     "http://example.xyz/story",
		Source:  "Some Blog",
	}

	first, err := svc.Analyze(ctx, req)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}
	second, err := svc.Analyze(ctx, req)
	if err != nil {
		t.Fatalf("Analyze error: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("expected distinct ids, both %d", first.ID)
	}
	if first.SpamScore != second.SpamScore || first.SpamLevel != second.SpamLevel ||
		first.Credibility != second.Credibility {
		t.Fatalf("expected identical scoring: %+v vs %+v", first, second)
	}
}

func TestScrapeAnalyzesAndPersists(t *testing.T) {
	t.Parallel()

	source := &stubSource{headlines: []domain.Headline{
		{Title: "Parliament approves new energy measures", URL: "https://example.com/1", Source: "Test Wire", Category: "News"},
		{Title: "<b></b>", URL: "https://example.com/2", Source: "Test Wire"},
		{Title: "Markets steady after central bank decision", URL: "https://example.com/3", Source: "Test Wire", Category: "News"},
	}}

	svc, _ := newTestService(source)
	analyzed, err := svc.Scrape(context.Background())
	if err != nil {
		t.Fatalf("Scrape error: %v", err)
	}

	// The empty headline is skipped; the rest still go through.
	if len(analyzed) != 2 {
		t.Fatalf("expected 2 analyzed articles, got %d", len(analyzed))
	}
	for _, article := range analyzed {
		if article.Content != article.Title {
			t.Fatalf("expected headline used as content, got %+v", article)
		}
		if article.ID == 0 {
			t.Fatalf("expected persisted article, got %+v", article)
		}
	}

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats error: %v", err)
	}
	if stats.TotalAnalyzed != 2 {
		t.Fatalf("expected 2 stored articles, got %d", stats.TotalAnalyzed)
	}
}

func TestScrapeSourceFailure(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(&stubSource{err: fmt.Errorf("upstream down")})
	if _, err := svc.Scrape(context.Background()); err == nil {
		t.Fatal("expected error when the source fails wholesale")
	}

	svc, _ = newTestService(nil)
	if _, err := svc.Scrape(context.Background()); err == nil {
		t.Fatal("expected error when no source is configured")
	}
}

func TestListDelegation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(nil)
	ctx := context.Background()
	for i := 0; i < 12; i++ {
		if _, err := svc.Analyze(ctx, AnalyzeRequest{
			Title:   fmt.Sprintf("Routine report number %d", i),
			Content: "a perfectly ordinary body, according to officials",
		}); err != nil {
			t.Fatalf("Analyze error: %v", err)
		}
	}

	articles, pages, err := svc.List(ctx, 2, 10)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if pages != 2 || len(articles) != 2 {
		t.Fatalf("expected 2 pages and 2 articles on page 2, got %d pages and %d articles", pages, len(articles))
	}

	results, err := svc.Search(ctx, "number 3")
	if err != nil {
		t.Fatalf("Search error: %v", err)
	}
	if len(results) != 1 {
		t.Fatalf("expected 1 search match, got %d", len(results))
	}
}
