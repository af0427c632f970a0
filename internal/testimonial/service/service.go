package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/joelle-memorial/backend/internal/cooldown"
	"github.com/joelle-memorial/backend/internal/realtime"
	"github.com/joelle-memorial/backend/internal/testimonial"
	"github.com/joelle-memorial/backend/internal/testimonial/repository"
	"github.com/joelle-memorial/backend/pkg/logger"
	"github.com/joelle-memorial/backend/pkg/metrics"
)

var (
	ErrNotFound = repository.ErrNotFound
)

// Service runs the testimonial flows: the public submission pipeline and
// the moderation delete. Every successful write publishes a fresh snapshot
// to the live feed; the feed is the only way a write becomes visible, the
// submitting client is never patched locally.
type Service struct {
	repo    repository.Repository
	limiter *cooldown.Limiter
	feed    realtime.Publisher
}

func New(repo repository.Repository, limiter *cooldown.Limiter, feed realtime.Publisher) *Service {
	return &Service{repo: repo, limiter: limiter, feed: feed}
}

func (s *Service) List(ctx context.Context) ([]*testimonial.Testimonial, error) {
	return s.repo.List(ctx)
}

// Snapshot returns the live-feed payload for the testimonials topic.
func (s *Service) Snapshot(ctx context.Context) (interface{}, error) {
	list, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"testimonials": list}, nil
}

// Submit runs the full pipeline: validate, check the cooldown, append, mark
// the cooldown, publish. Short-circuits on the first failure; a rejected
// submission never reaches the content store, and at most one store write
// happens per call.
func (s *Service) Submit(ctx context.Context, clientKey string, sub testimonial.Submission) (*testimonial.Testimonial, error) {
	if err := testimonial.Validate(sub); err != nil {
		var verr *testimonial.ValidationError
		if errors.As(err, &verr) {
			metrics.TestimonialsRejected.WithLabelValues(string(verr.Kind)).Inc()
		}
		return nil, err
	}

	decision, err := s.limiter.Allow(ctx, clientKey)
	if err != nil {
		// the cooldown is advisory; a broken store must not block submissions
		logger.Warnf("cooldown check failed, allowing submission: %v", err)
	}
	if !decision.OK {
		metrics.TestimonialsRejected.WithLabelValues("rate_limited").Inc()
		return nil, &cooldown.LimitedError{MinutesRemaining: decision.MinutesRemaining}
	}

	t := &testimonial.Testimonial{
		Name:         strings.TrimSpace(sub.Name),
		Relationship: strings.TrimSpace(sub.Relationship),
		Message:      strings.TrimSpace(sub.Message),
		Email:        strings.TrimSpace(sub.Email),
		Approved:     true,
	}
	if _, err := s.repo.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("append testimonial: %w", err)
	}

	// mark only after the append succeeded
	if err := s.limiter.Mark(ctx, clientKey); err != nil {
		logger.Warnf("cooldown mark failed: %v", err)
	}

	metrics.TestimonialsSubmitted.Inc()
	s.publish(ctx)
	return t, nil
}

// Delete removes one testimonial by id on behalf of the moderation endpoint.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	metrics.TestimonialsDeleted.Inc()
	s.publish(ctx)
	return nil
}

func (s *Service) publish(ctx context.Context) {
	payload, err := s.Snapshot(ctx)
	if err != nil {
		logger.Warnf("testimonials snapshot for feed failed: %v", err)
		return
	}
	s.feed.Publish(realtime.TopicTestimonials, payload)
}
