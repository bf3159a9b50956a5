// Package observability provides Prometheus metrics and OpenTelemetry tracing
// for the application.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// PostsCreated counts created posts by kind.
	PostsCreated = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_posts_created_total",
		Help: "Total number of posts created, by kind",
	}, []string{"kind"})

	// ModerationDecisions counts admin moderation decisions by resulting status.
	ModerationDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_moderation_decisions_total",
		Help: "Total number of moderation decisions, by resulting status",
	}, []string{"status"})

	// AssistantRequests counts AI relay invocations by request kind and outcome.
	AssistantRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nexus_assistant_requests_total",
		Help: "Total number of AI assistant relay invocations, by kind and outcome",
	}, []string{"kind", "outcome"})

	// AssistantLatency records AI relay round-trip latency by request kind.
	AssistantLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "nexus_assistant_request_latency_seconds",
		Help:    "AI assistant relay round-trip latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"kind"})
)
