package repository

import (
	"context"
	"sync"
	"time"

	"github.com/joelle-memorial/backend/internal/candle"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository is the content-store surface for candles: append, bounded
// recent feed, full count. No delete path exists.
type Repository interface {
	Create(ctx context.Context, c *candle.Candle) (string, error)
	Recent(ctx context.Context, limit int) ([]*candle.Candle, error)
	Count(ctx context.Context) (int64, error)
}

// MemoryRepo is an in-memory candle store for unit tests and credential-less
// development.
type MemoryRepo struct {
	mu      sync.RWMutex
	candles []*candle.Candle
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (m *MemoryRepo) Create(ctx context.Context, c *candle.Candle) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if c.ID == "" {
		c.ID = primitive.NewObjectID().Hex()
	}
	c.LitAt = time.Now().UTC()
	m.candles = append(m.candles, c)
	return c.ID, nil
}

// Recent returns at most limit candles, newest first.
func (m *MemoryRepo) Recent(ctx context.Context, limit int) ([]*candle.Candle, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*candle.Candle, 0, limit)
	for i := len(m.candles) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, m.candles[i])
	}
	return out, nil
}

func (m *MemoryRepo) Count(ctx context.Context) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return int64(len(m.candles)), nil
}
