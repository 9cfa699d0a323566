// Package middleware provides reusable HTTP middleware components.
package middleware

import (
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/pterosdk/go-pterodactyl/internal/retry"
	"github.com/pterosdk/go-pterodactyl/observability"
)

// RetryConfig configures the retry middleware.
type RetryConfig struct {
	Policy  retry.Policy
	Logger  observability.Logger
	Metrics observability.MetricsRecorder
}

// Retry returns a middleware that retries failed requests according to the
// given policy. The heavy lifting (request body buffering and rewind, the
// attempt loop) is delegated to hashicorp/go-retryablehttp mounted as a
// RoundTripper; the policy supplies the retry predicate and backoff curve.
//
// Once the retry budget is exhausted the last response or error is returned
// unmodified, so callers see the final attempt exactly as the panel sent it.
func Retry(cfg RetryConfig) func(http.RoundTripper) http.RoundTripper {
	if cfg.Logger == nil {
		cfg.Logger = observability.NoopLogger()
	}
	if cfg.Metrics == nil {
		cfg.Metrics = observability.NoopMetricsRecorder()
	}

	return func(next http.RoundTripper) http.RoundTripper {
		rc := retryablehttp.NewClient()
		rc.HTTPClient = &http.Client{Transport: next}
		rc.RetryMax = cfg.Policy.MaxRetries
		rc.RetryWaitMin = 0
		rc.RetryWaitMax = retry.BackoffMax
		rc.CheckRetry = cfg.Policy.CheckRetry
		rc.Backoff = cfg.Policy.Backoff
		rc.ErrorHandler = retryablehttp.PassthroughErrorHandler
		rc.Logger = leveledLogger{logger: cfg.Logger}
		rc.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
			if attempt > 0 {
				cfg.Metrics.RecordRetry(attempt, req.URL.Path)
			}
		}

		return &retryablehttp.RoundTripper{Client: rc}
	}
}

// leveledLogger adapts observability.Logger to retryablehttp.LeveledLogger.
type leveledLogger struct {
	logger observability.Logger
}

func (l leveledLogger) Error(msg string, keysAndValues ...any) {
	l.logger.Error(msg, toFields(keysAndValues)...)
}

func (l leveledLogger) Warn(msg string, keysAndValues ...any) {
	l.logger.Warn(msg, toFields(keysAndValues)...)
}

func (l leveledLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Info(msg, toFields(keysAndValues)...)
}

func (l leveledLogger) Debug(msg string, keysAndValues ...any) {
	l.logger.Debug(msg, toFields(keysAndValues)...)
}

func toFields(keysAndValues []any) []observability.Field {
	fields := make([]observability.Field, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields = append(fields, observability.Field{Key: key, Value: keysAndValues[i+1]})
	}
	return fields
}
