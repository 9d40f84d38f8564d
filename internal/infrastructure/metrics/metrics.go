package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// SAOS MCP metrics - using explicit registration
var (
	// HTTP transport request counters
	RequestsTotal *prometheus.CounterVec

	// Tool call counters
	ToolCallsTotal *prometheus.CounterVec

	// Tool duration histogram
	ToolDuration *prometheus.HistogramVec

	// Remote SAOS API outcomes, labelled by failure kind
	RemoteRequestsTotal *prometheus.CounterVec

	// Remote SAOS API latency
	RemoteLatency *prometheus.HistogramVec
)

// init creates and registers all metrics with the default registry
func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saos",
			Subsystem: "mcp",
			Name:      "requests_total",
			Help:      "Total number of MCP HTTP requests",
		},
		[]string{"method", "status"},
	)

	ToolCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saos",
			Subsystem: "mcp",
			Name:      "tool_calls_total",
			Help:      "Total tool invocations",
		},
		[]string{"tool_name", "status"},
	)

	ToolDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "saos",
			Subsystem: "mcp",
			Name:      "tool_duration_seconds",
			Help:      "Tool execution duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"tool_name"},
	)

	RemoteRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "saos",
			Subsystem: "mcp",
			Name:      "remote_requests_total",
			Help:      "Total SAOS API requests by outcome",
		},
		[]string{"endpoint", "outcome"},
	)

	RemoteLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "saos",
			Subsystem: "mcp",
			Name:      "remote_latency_seconds",
			Help:      "SAOS API response time in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"endpoint"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(ToolCallsTotal)
	prometheus.MustRegister(ToolDuration)
	prometheus.MustRegister(RemoteRequestsTotal)
	prometheus.MustRegister(RemoteLatency)
}

// RecordRequest records an MCP HTTP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordToolCall records a tool invocation
func RecordToolCall(toolName, status string, durationSec float64) {
	if status == "" {
		status = "unknown"
	}
	ToolCallsTotal.WithLabelValues(toolName, status).Inc()
	ToolDuration.WithLabelValues(toolName).Observe(durationSec)
}

// RecordRemoteRequest records the outcome and latency of one SAOS API call.
// endpoint should be a low-cardinality name, not the request path.
func RecordRemoteRequest(endpoint, outcome string, durationSec float64) {
	if outcome == "" {
		outcome = "success"
	}
	RemoteRequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	RemoteLatency.WithLabelValues(endpoint).Observe(durationSec)
}
