package stats

import (
	"context"
	"testing"

	"newsguard/internal/domain"
	"newsguard/internal/storage"
)

func TestSnapshotPartitionsByLevel(t *testing.T) {
	t.Parallel()

	repo := storage.NewMemoryRepository()
	ctx := context.Background()

	levels := []domain.SpamLevel{
		domain.LevelLegitimate, domain.LevelLegitimate, domain.LevelLegitimate,
		domain.LevelSuspicious,
		domain.LevelLikelySpam, domain.LevelLikelySpam,
		domain.LevelSpam,
	}
	for _, level := range levels {
		if _, err := repo.Create(ctx, domain.Article{Title: "t", Content: "c", SpamLevel: level}); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	snapshot, err := NewAggregator(repo).Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}

	if snapshot.Legitimate != 3 || snapshot.Suspicious != 1 || snapshot.LikelySpam != 2 || snapshot.Spam != 1 {
		t.Fatalf("unexpected partition: %+v", snapshot)
	}
	sum := snapshot.Legitimate + snapshot.Suspicious + snapshot.LikelySpam + snapshot.Spam
	if sum != snapshot.TotalAnalyzed {
		t.Fatalf("counts sum to %d, total is %d", sum, snapshot.TotalAnalyzed)
	}
	if snapshot.TotalAnalyzed != len(levels) {
		t.Fatalf("expected total %d, got %d", len(levels), snapshot.TotalAnalyzed)
	}
}

func TestSnapshotEmptyRepository(t *testing.T) {
	t.Parallel()

	snapshot, err := NewAggregator(storage.NewMemoryRepository()).Snapshot(context.Background())
	if err != nil {
		t.Fatalf("Snapshot error: %v", err)
	}
	if snapshot != (domain.Stats{}) {
		t.Fatalf("expected zero snapshot, got %+v", snapshot)
	}
}
