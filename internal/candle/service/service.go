package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/joelle-memorial/backend/internal/candle"
	"github.com/joelle-memorial/backend/internal/candle/repository"
	"github.com/joelle-memorial/backend/internal/realtime"
	"github.com/joelle-memorial/backend/pkg/logger"
	"github.com/joelle-memorial/backend/pkg/metrics"
)

// ErrNameTooLong rejects a visitor name over the candle name cap.
var ErrNameTooLong = errors.New("candle name too long")

// Service runs the virtual-candle flow: append-only lighting, the bounded
// recent feed, and the full-collection count.
type Service struct {
	repo repository.Repository
	feed realtime.Publisher
}

func New(repo repository.Repository, feed realtime.Publisher) *Service {
	return &Service{repo: repo, feed: feed}
}

// Light appends one candle. Name is optional; empty means anonymous.
func (s *Service) Light(ctx context.Context, name string) (*candle.Candle, error) {
	name = strings.TrimSpace(name)
	if utf8.RuneCountInString(name) > candle.MaxNameLen {
		return nil, ErrNameTooLong
	}
	c := &candle.Candle{Name: name}
	if _, err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("append candle: %w", err)
	}
	metrics.CandlesLit.Inc()
	s.publish(ctx)
	return c, nil
}

func (s *Service) Recent(ctx context.Context) ([]*candle.Candle, error) {
	return s.repo.Recent(ctx, candle.RecentLimit)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

// Snapshot returns the live-feed payload for the candles topic: the bounded
// recent list plus the independent full count.
func (s *Service) Snapshot(ctx context.Context) (interface{}, error) {
	recent, err := s.Recent(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.Count(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"candles": recent, "total": total}, nil
}

func (s *Service) publish(ctx context.Context) {
	payload, err := s.Snapshot(ctx)
	if err != nil {
		logger.Warnf("candles snapshot for feed failed: %v", err)
		return
	}
	s.feed.Publish(realtime.TopicCandles, payload)
}
