package scraper

import (
	"context"
	"fmt"
	"log/slog"

	"newsguard/internal/config"
	"newsguard/internal/domain"
	"newsguard/internal/ports"
	"newsguard/internal/scanner"
)

// ConfigSource implements ArticleSource by running the scanner strategy
// configured for each site. A failing site is logged and skipped so one
// unreachable source never aborts the whole run.
type ConfigSource struct {
	registry *scanner.Registry
	sites    []config.SiteConfig
	logger   *slog.Logger
}

var _ ports.ArticleSource = (*ConfigSource)(nil)

// NewConfigSource wires the scanner registry with config-defined sites.
func NewConfigSource(reg *scanner.Registry, sites []config.SiteConfig, log *slog.Logger) *ConfigSource {
	return &ConfigSource{
		registry: reg,
		sites:    sites,
		logger:   log,
	}
}

// Fetch iterates over configured sites and aggregates their headlines.
func (s *ConfigSource) Fetch(ctx context.Context) ([]domain.Headline, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch headlines", "sites", len(s.sites))

	var aggregated []domain.Headline
	for _, site := range s.sites {
		strategy, err := s.registry.Resolve(site.Scanner)
		if err != nil {
			s.warn("skip site", "site", site.Name, "error", err)
			continue
		}

		req := scanner.Request{
			SiteName: site.Name,
			URL:      site.URL,
			Selector: site.Selector,
			Source:   site.Source,
			Category: site.Category,
			Limit:    site.Limit,
			Options:  site.Options,
		}

		results, err := strategy.Scan(ctx, req)
		if err != nil {
			s.warn("scan failed", "site", site.Name, "error", err)
			continue
		}

		for i := range results {
			if results[i].Source == "" {
				results[i].Source = site.Name
			}
		}
		s.debug("site produced headlines", "site", site.Name, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("config source done", "total_headlines", len(aggregated))
	return aggregated, nil
}

func (s *ConfigSource) debug(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}

func (s *ConfigSource) warn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}
