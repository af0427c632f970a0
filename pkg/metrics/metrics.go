package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	TestimonialsSubmitted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "memorial", Name: "testimonials_submitted_total", Help: "Number of testimonials accepted and written to the content store."},
	)
	TestimonialsRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "memorial", Name: "testimonials_rejected_total", Help: "Number of testimonial submissions rejected, by reason."},
		[]string{"reason"},
	)
	TestimonialsDeleted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "memorial", Name: "testimonials_deleted_total", Help: "Number of testimonials removed through moderation."},
	)
	ModerationDenied = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "memorial", Name: "moderation_denied_total", Help: "Number of rejected moderation attempts, by cause."},
		[]string{"cause"},
	)
	CandlesLit = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "memorial", Name: "candles_lit_total", Help: "Number of virtual candles lit."},
	)
	RealtimeConnections = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "memorial", Name: "realtime_connections", Help: "Currently open live-feed websocket connections."},
	)
	RateLimitAllowed = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "memorial", Name: "rate_limit_allowed_total", Help: "Number of allowed requests by limiter type."},
		[]string{"limiter"},
	)
	RateLimitRejected = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "memorial", Name: "rate_limit_rejected_total", Help: "Number of rejected requests by limiter type."},
		[]string{"limiter"},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(
		TestimonialsSubmitted,
		TestimonialsRejected,
		TestimonialsDeleted,
		ModerationDenied,
		CandlesLit,
		RealtimeConnections,
		RateLimitAllowed,
		RateLimitRejected,
	)
}
