package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTPRequestsTotal counts handled requests by method, path and status.
var HTTPRequestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starquest_http_requests_total",
		Help: "Total number of HTTP requests processed.",
	},
	[]string{"method", "path", "status"},
)

// HTTPRequestDuration observes request latency by method and path.
var HTTPRequestDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Name:    "starquest_http_request_duration_seconds",
		Help:    "HTTP request latency.",
		Buckets: prometheus.DefBuckets,
	},
	[]string{"method", "path"},
)

// InvitationsSent counts invitations by outcome (pending or direct).
var InvitationsSent = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starquest_invitations_sent_total",
		Help: "Workspace invitations sent, labeled by delivery path.",
	},
	[]string{"path"},
)

// TaskFanoutOps counts bulk quest operations executed by the fan-out engine.
var TaskFanoutOps = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "starquest_task_fanout_operations_total",
		Help: "Quest fan-out bulk operations, labeled by action.",
	},
	[]string{"action"},
)

// StarsAwarded sums stars granted through mentor Done transitions.
var StarsAwarded = promauto.NewCounter(
	prometheus.CounterOpts{
		Name: "starquest_stars_awarded_total",
		Help: "Cumulative stars awarded to mentees.",
	},
)
