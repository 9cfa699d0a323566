package middleware

import (
	"net/http"
	"regexp"
	"sync"
	"time"

	"github.com/pterosdk/go-pterodactyl/observability"
)

// Observability returns a middleware that logs and records metrics for HTTP requests.
func Observability(logger observability.Logger, metrics observability.MetricsRecorder) func(http.RoundTripper) http.RoundTripper {
	if logger == nil {
		logger = observability.NoopLogger()
	}
	if metrics == nil {
		metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		return &observabilityTransport{
			next:    next,
			logger:  logger,
			metrics: metrics,
		}
	}
}

type observabilityTransport struct {
	next    http.RoundTripper
	logger  observability.Logger
	metrics observability.MetricsRecorder
}

func (t *observabilityTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	// Compute URL string once to avoid multiple allocations
	urlStr := req.URL.String()

	t.logger.Debug("http request started",
		observability.Field{Key: "method", Value: req.Method},
		observability.Field{Key: "url", Value: urlStr},
		observability.Field{Key: "path", Value: req.URL.Path},
	)

	resp, err := t.next.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		t.logger.Error("http request failed",
			observability.Field{Key: "method", Value: req.Method},
			observability.Field{Key: "url", Value: urlStr},
			observability.Field{Key: "duration", Value: duration},
			observability.Field{Key: "error", Value: err.Error()},
		)

		t.metrics.RecordError("http_request", "NetworkError")

		//nolint:wrapcheck // Observability middleware logs error but passes it through unchanged
		return nil, err
	}

	fields := []observability.Field{
		{Key: "method", Value: req.Method},
		{Key: "url", Value: urlStr},
		{Key: "status", Value: resp.StatusCode},
		{Key: "duration", Value: duration},
	}

	if resp.StatusCode >= http.StatusBadRequest {
		t.logger.Warn("http request completed with error", fields...)
	} else {
		t.logger.Debug("http request completed", fields...)
	}

	// Record metrics with normalized path to avoid unbounded cardinality
	normalizedPath := normalizePath(req.URL.Path)
	t.metrics.RecordHTTPRequest(req.Method, normalizedPath, resp.StatusCode, duration)

	return resp, nil
}

var (
	// identifierPattern matches server identifiers and UUIDs in client API
	// paths: the short 8-hex form (/api/client/servers/d3aac109) and the
	// full UUID form used by a few endpoints.
	identifierPattern = regexp.MustCompile(`/servers/(?:[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}|[0-9a-f]{8})(/|$)`)
	// numericIDPattern matches numeric resource IDs in application API
	// paths: /api/application/nodes/12, /api/application/users/530.
	numericIDPattern = regexp.MustCompile(`/\d+(/|$)`)

	// normalizedPathCache caches normalized paths to avoid repeated regex
	// operations. Panel clients hit a small fixed set of endpoints, so the
	// cache stays bounded and most lookups are hits.
	normalizedPathCache sync.Map
)

// normalizePath replaces dynamic path segments (numeric IDs, server
// identifiers, UUIDs) with placeholders to prevent unbounded cardinality in
// metrics labels.
//
// Examples:
//   - /api/application/servers/5/suspend → /api/application/servers/:id/suspend
//   - /api/client/servers/d3aac109/power → /api/client/servers/:identifier/power
func normalizePath(path string) string {
	if cached, ok := normalizedPathCache.Load(path); ok {
		//nolint:forcetypeassert // Cache only stores strings, type assertion is safe
		return cached.(string)
	}

	normalized := identifierPattern.ReplaceAllString(path, "/servers/:identifier$1")
	normalized = numericIDPattern.ReplaceAllString(normalized, "/:id$1")

	normalizedPathCache.Store(path, normalized)

	return normalized
}
