package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"newsguard/internal/domain"
	"newsguard/internal/ports"
)

// Scheduler wires the interval driver with periodic scrape runs and an
// optional digest of flagged articles.
type Scheduler struct {
	driver   ports.Scheduler
	service  *Service
	notifier ports.Notifier
	logger   *slog.Logger
}

// NewScheduler returns a helper to start/stop recurring scrape jobs.
func NewScheduler(driver ports.Scheduler, service *Service, notifier ports.Notifier, logger *slog.Logger) *Scheduler {
	return &Scheduler{driver: driver, service: service, notifier: notifier, logger: logger}
}

// Start registers the scrape job with the provided scheduler.
func (s *Scheduler) Start(ctx context.Context) error {
	if s.driver == nil || s.service == nil {
		return nil
	}

	job := func(time.Time) {
		analyzed, err := s.service.Scrape(ctx)
		if err != nil {
			if s.logger != nil {
				s.logger.Error("scheduled scrape failed", "error", err)
			}
			return
		}
		if s.logger != nil {
			s.logger.Info("scheduled scrape done", "analyzed", len(analyzed))
		}

		if s.notifier == nil {
			return
		}
		digest := buildFlaggedDigest(analyzed)
		if digest == "" {
			return
		}
		if err := s.notifier.PublishDigest(ctx, digest); err != nil && s.logger != nil {
			s.logger.Warn("publish digest failed", "error", err)
		}
	}

	return s.driver.Start(ctx, job)
}

// Stop gracefully tears down the underlying scheduler.
func (s *Scheduler) Stop(ctx context.Context) error {
	if s.driver == nil {
		return nil
	}

	return s.driver.Stop(ctx)
}

// buildFlaggedDigest lists the likely_spam and spam findings of one run.
func buildFlaggedDigest(articles []domain.Article) string {
	var formatted string
	for _, article := range articles {
		if article.SpamLevel != domain.LevelLikelySpam && article.SpamLevel != domain.LevelSpam {
			continue
		}
		formatted += fmt.Sprintf("- %s (%s)\nScore: %d, Credibility: %d%%\n%s\n\n",
			article.Title,
			article.SpamLevel,
			article.SpamScore,
			article.Credibility,
			article.URL)
	}

	return formatted
}
