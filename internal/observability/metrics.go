// Package observability provides Prometheus metrics and OpenTelemetry tracing.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsIssued counts signed session tokens by trigger (signup, signin).
	SessionsIssued = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_sessions_issued_total",
		Help: "Total number of session tokens issued",
	}, []string{"trigger"})

	// AuthRejections counts requests rejected by the authentication gate.
	AuthRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chirp_auth_rejections_total",
		Help: "Total number of requests rejected with an invalid or missing session token",
	})

	// TweetsCreated counts created tweets.
	TweetsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "chirp_tweets_created_total",
		Help: "Total number of tweets created",
	})

	// GraphMutations counts social graph writes by kind and outcome.
	GraphMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_graph_mutations_total",
		Help: "Total number of favorite/follow mutations by kind and outcome",
	}, []string{"kind", "outcome"})

	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "chirp_redis_error_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})
)
