package middleware_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pterosdk/go-pterodactyl/internal/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestRateLimit(t *testing.T) {
	t.Parallel()

	t.Run("paces requests", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// Allow 2 requests per second
		limiter := rate.NewLimiter(2, 2)

		transport := middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: limiter,
		})(http.DefaultTransport)

		// First 2 requests should be fast
		for i := 0; i < 2; i++ {
			req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
			start := time.Now()
			resp, err := transport.RoundTrip(req)
			duration := time.Since(start)

			require.NoError(t, err)
			resp.Body.Close()

			assert.Less(t, duration, 100*time.Millisecond, "request %d should complete quickly", i+1)
		}

		// Third request should be rate limited
		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
		start := time.Now()
		resp, err := transport.RoundTrip(req)
		duration := time.Since(start)

		require.NoError(t, err)
		resp.Body.Close()

		assert.GreaterOrEqual(t, duration, 100*time.Millisecond, "third request should be rate limited")
	})

	t.Run("nil limiter passes through", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		transport := middleware.RateLimit(middleware.RateLimitConfig{})(http.DefaultTransport)

		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
		resp, err := transport.RoundTrip(req)

		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("context cancellation during wait", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		// One request per minute; the second request must wait
		limiter := rate.NewLimiter(rate.Limit(1.0/60.0), 1)

		transport := middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: limiter,
		})(http.DefaultTransport)

		req, _ := http.NewRequestWithContext(context.Background(), http.MethodGet, server.URL, http.NoBody)
		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		req, _ = http.NewRequestWithContext(ctx, http.MethodGet, server.URL, http.NoBody)
		_, err = transport.RoundTrip(req)

		require.Error(t, err)
		assert.ErrorIs(t, err, context.DeadlineExceeded)
	})
}
