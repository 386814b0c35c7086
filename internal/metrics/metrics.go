package metrics

import (
	"strconv"
	"strings"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	once sync.Once

	apiRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "useresume_api_requests_total",
			Help: "Remote API calls by endpoint and HTTP status (0 for transport failures).",
		},
		[]string{"endpoint", "status"},
	)

	apiLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "useresume_api_request_duration_ms",
			Help:    "Remote API latency distribution in milliseconds.",
			Buckets: []float64{50, 100, 250, 500, 1000, 2500, 5000, 10000, 30000, 60000},
		},
		[]string{"endpoint"},
	)

	creditsUsed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "useresume_credits_used_total",
			Help: "Credits reported as used by the remote service, per endpoint.",
		},
		[]string{"endpoint"},
	)

	toolCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "useresume_tool_calls_total",
			Help: "Operation calls by tool and outcome (success or the error type).",
		},
		[]string{"tool", "outcome"},
	)
)

// MustRegister registers collectors with the default registry (idempotent).
func MustRegister() {
	once.Do(func() {
		prometheus.MustRegister(apiRequests, apiLatencyMs, creditsUsed, toolCalls)
	})
}

func norm(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

// -------- Remote API helpers --------

func ObserveAPICall(endpoint string, status int, latencyMs int64) {
	apiRequests.WithLabelValues(norm(endpoint), strconv.Itoa(status)).Inc()
	apiLatencyMs.WithLabelValues(norm(endpoint)).Observe(float64(latencyMs))
}

func AddCredits(endpoint string, credits int) {
	if credits <= 0 {
		return
	}
	creditsUsed.WithLabelValues(norm(endpoint)).Add(float64(credits))
}

// -------- Tool helpers --------

func IncToolCall(tool, outcome string) {
	toolCalls.WithLabelValues(norm(tool), norm(outcome)).Inc()
}
