package cooldown

import (
	"context"
	"fmt"
	"sync"
	"time"
)

// Store persists the last-submission instant per visitor key.
type Store interface {
	Last(ctx context.Context, key string) (time.Time, bool, error)
	Mark(ctx context.Context, key string, at time.Time, ttl time.Duration) error
}

// Decision is the outcome of an Allow check.
type Decision struct {
	OK               bool
	MinutesRemaining int
}

// LimitedError is returned by the submission flow when a visitor is still
// inside the cooldown window.
type LimitedError struct {
	MinutesRemaining int
}

func (e *LimitedError) Error() string {
	return fmt.Sprintf("submission cooldown active: %d minutes remaining", e.MinutesRemaining)
}

// Limiter enforces a fixed cooldown window between testimonial submissions
// from the same visitor key. This is advisory: NAT'd visitors share a key
// and a multi-device visitor gets a fresh one, so it only stops accidental
// double posting, never a determined actor.
type Limiter struct {
	store  Store
	window time.Duration
	now    func() time.Time
}

func New(store Store, window time.Duration) *Limiter {
	return &Limiter{store: store, window: window, now: time.Now}
}

// Allow reports whether the key may submit. When inside the window the
// decision carries the remaining wait rounded up to whole minutes.
func (l *Limiter) Allow(ctx context.Context, key string) (Decision, error) {
	last, ok, err := l.store.Last(ctx, key)
	if err != nil {
		return Decision{OK: true}, err
	}
	if !ok {
		return Decision{OK: true}, nil
	}
	elapsed := l.now().Sub(last)
	if elapsed >= l.window {
		return Decision{OK: true}, nil
	}
	remaining := l.window - elapsed
	minutes := int((remaining + time.Minute - 1) / time.Minute)
	return Decision{OK: false, MinutesRemaining: minutes}, nil
}

// Mark records a successful submission for the key. Called only after the
// store append succeeded, so a failed submit never costs the visitor their
// slot.
func (l *Limiter) Mark(ctx context.Context, key string) error {
	return l.store.Mark(ctx, key, l.now(), l.window)
}

// MemoryStore keeps last-submission marks in process memory. Entries older
// than their ttl are dropped lazily on read.
type MemoryStore struct {
	mu    sync.Mutex
	marks map[string]memoryMark
}

type memoryMark struct {
	at  time.Time
	ttl time.Duration
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{marks: make(map[string]memoryMark)}
}

func (s *MemoryStore) Last(ctx context.Context, key string) (time.Time, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	m, ok := s.marks[key]
	if !ok {
		return time.Time{}, false, nil
	}
	if time.Since(m.at) >= m.ttl {
		delete(s.marks, key)
		return time.Time{}, false, nil
	}
	return m.at, true, nil
}

func (s *MemoryStore) Mark(ctx context.Context, key string, at time.Time, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.marks[key] = memoryMark{at: at, ttl: ttl}
	return nil
}
