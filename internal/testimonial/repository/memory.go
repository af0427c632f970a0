package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/joelle-memorial/backend/internal/testimonial"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound = errors.New("testimonial not found")
)

// Repository is the content-store surface the service layer depends on.
// Testimonials are append-and-delete only; there is no update path.
type Repository interface {
	Create(ctx context.Context, t *testimonial.Testimonial) (string, error)
	List(ctx context.Context) ([]*testimonial.Testimonial, error)
	Delete(ctx context.Context, id string) error
}

// MemoryRepo is an in-memory repository used for unit tests and for running
// without MongoDB credentials. Same id scheme as the Mongo repo so the
// moderation id checks behave identically.
type MemoryRepo struct {
	mu    sync.RWMutex
	order []string
	store map[string]*testimonial.Testimonial
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{store: make(map[string]*testimonial.Testimonial)}
}

func (m *MemoryRepo) Create(ctx context.Context, t *testimonial.Testimonial) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t.ID == "" {
		t.ID = primitive.NewObjectID().Hex()
	}
	t.CreatedAt = time.Now().UTC()
	m.store[t.ID] = t
	m.order = append(m.order, t.ID)
	return t.ID, nil
}

// List returns testimonials newest first. Insertion order breaks timestamp
// ties so the ordering stays deterministic in fast test runs.
func (m *MemoryRepo) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]*testimonial.Testimonial, 0, len(m.store))
	for i := len(m.order) - 1; i >= 0; i-- {
		if t, ok := m.store[m.order[i]]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *MemoryRepo) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.store[id]; !ok {
		return ErrNotFound
	}
	delete(m.store, id)
	return nil
}
