package stats

import (
	"context"
	"fmt"

	"newsguard/internal/domain"
	"newsguard/internal/ports"
)

// Aggregator derives classification counts from the article repository.
// Snapshots are recomputed on every call; nothing is cached.
type Aggregator struct {
	repo ports.ArticleRepository
}

// NewAggregator wires the backing repository.
func NewAggregator(repo ports.ArticleRepository) *Aggregator {
	return &Aggregator{repo: repo}
}

// Snapshot partitions all stored articles by spam level in a single
// pass. The four counts always sum to TotalAnalyzed.
func (a *Aggregator) Snapshot(ctx context.Context) (domain.Stats, error) {
	articles, err := a.repo.All(ctx)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("load articles: %w", err)
	}

	var snapshot domain.Stats
	for _, article := range articles {
		switch article.SpamLevel {
		case domain.LevelLegitimate:
			snapshot.Legitimate++
		case domain.LevelSuspicious:
			snapshot.Suspicious++
		case domain.LevelLikelySpam:
			snapshot.LikelySpam++
		case domain.LevelSpam:
			snapshot.Spam++
		}
	}
	snapshot.TotalAnalyzed = len(articles)

	return snapshot, nil
}
