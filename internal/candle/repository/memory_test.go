package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/joelle-memorial/backend/internal/candle"
)

func TestMemoryRepo_CountIndependentOfRecentLimit(t *testing.T) {
	ctx := context.Background()

	// 0, 1 and 13 candles: 13 crosses the recent-feed bound of 12, so the
	// count must keep reporting the full collection size
	for _, n := range []int{0, 1, 13} {
		repo := NewMemoryRepo()
		for i := 0; i < n; i++ {
			if _, err := repo.Create(ctx, &candle.Candle{Name: fmt.Sprintf("visitor-%d", i)}); err != nil {
				t.Fatalf("create %d: %v", i, err)
			}
		}

		count, err := repo.Count(ctx)
		if err != nil {
			t.Fatalf("count: %v", err)
		}
		if count != int64(n) {
			t.Fatalf("count = %d, want %d", count, n)
		}

		recent, err := repo.Recent(ctx, candle.RecentLimit)
		if err != nil {
			t.Fatalf("recent: %v", err)
		}
		wantRecent := n
		if wantRecent > candle.RecentLimit {
			wantRecent = candle.RecentLimit
		}
		if len(recent) != wantRecent {
			t.Fatalf("recent len = %d, want %d", len(recent), wantRecent)
		}
	}
}

func TestMemoryRepo_RecentNewestFirst(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryRepo()

	for i := 0; i < 3; i++ {
		if _, err := repo.Create(ctx, &candle.Candle{Name: fmt.Sprintf("visitor-%d", i)}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	recent, err := repo.Recent(ctx, candle.RecentLimit)
	if err != nil {
		t.Fatalf("recent: %v", err)
	}
	if recent[0].Name != "visitor-2" || recent[2].Name != "visitor-0" {
		t.Fatalf("unexpected order: %s, %s, %s", recent[0].Name, recent[1].Name, recent[2].Name)
	}
	if recent[0].LitAt.IsZero() {
		t.Fatal("expected litAt to be set")
	}
}
