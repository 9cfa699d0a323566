// Package ratelimit constructs token-bucket limiters for panel requests.
package ratelimit

import "golang.org/x/time/rate"

// NewRateLimiter creates a new rate limiter with specified requests per minute.
// It uses a token bucket algorithm where tokens are replenished continuously
// at the rate of requestsPerMinute/60 per second, with a burst capacity equal
// to requestsPerMinute. A non-positive rate returns nil, which the transport
// treats as unlimited.
func NewRateLimiter(requestsPerMinute int) *rate.Limiter {
	if requestsPerMinute <= 0 {
		return nil
	}
	return rate.NewLimiter(rate.Limit(float64(requestsPerMinute)/60.0), requestsPerMinute)
}
