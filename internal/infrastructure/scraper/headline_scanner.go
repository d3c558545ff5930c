package scraper

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"newsguard/internal/domain"
	"newsguard/internal/scanner"
)

const (
	defaultHeadlineLimit = 10

	// Shorter strings are navigation labels, not headlines.
	minHeadlineLength = 10
)

// HeadlineScanner extracts front-page headlines from a news site using a
// configured CSS selector.
type HeadlineScanner struct {
	client *http.Client
}

var _ scanner.Scanner = (*HeadlineScanner)(nil)

// NewHeadlineScanner wires an HTTP client; a nil client gets a default
// with a request timeout.
func NewHeadlineScanner(client *http.Client) *HeadlineScanner {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &HeadlineScanner{client: client}
}

// Name identifies the strategy inside the registry.
func (h *HeadlineScanner) Name() string {
	return "headline"
}

// Scan fetches the site page and collects up to the configured number of
// headlines matching the selector, deduplicated in page order.
func (h *HeadlineScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Headline, error) {
	if req.URL == "" || req.Selector == "" {
		return nil, fmt.Errorf("site %s: url and selector are required", req.SiteName)
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHeadlineLimit
	}

	doc, err := h.fetchDocument(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", req.SiteName, err)
	}

	base, _ := url.Parse(req.URL)

	var headlines []domain.Headline
	seen := map[string]struct{}{}
	doc.Find(req.Selector).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		title := strings.TrimSpace(sel.Text())
		if len(title) <= minHeadlineLength {
			return true
		}
		if _, ok := seen[title]; ok {
			return true
		}
		seen[title] = struct{}{}

		headlines = append(headlines, domain.Headline{
			Title:    title,
			URL:      resolveLink(base, sel),
			Source:   req.Source,
			Category: req.Category,
		})
		return len(headlines) < limit
	})

	return headlines, nil
}

func (h *HeadlineScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", "newsguard/1.0")

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("site returned %s", resp.Status)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse page: %w", err)
	}

	return doc, nil
}

// resolveLink pulls the href from the selection (or its nearest anchor)
// and resolves it against the page URL.
func resolveLink(base *url.URL, sel *goquery.Selection) string {
	href, ok := sel.Attr("href")
	if !ok {
		href, ok = sel.Find("a").First().Attr("href")
	}
	if !ok {
		href, _ = sel.Closest("a").Attr("href")
	}
	if href == "" {
		return ""
	}

	if base == nil {
		return href
	}
	resolved, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(resolved).String()
}
