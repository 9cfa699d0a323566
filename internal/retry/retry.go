// Package retry defines the retry policy applied to panel requests.
package retry

import (
	"context"
	"math"
	"net/http"
	"sort"
	"strconv"
	"time"
)

// BackoffMax caps the delay between attempts regardless of backoff factor.
const BackoffMax = 120 * time.Second

// retryableMethods is the fixed set of HTTP methods eligible for retry.
// Note that it deliberately includes non-idempotent verbs (POST, PUT,
// DELETE): a request is only re-sent when the panel answered with a
// retryable status code, never on a connection error, so the panel has
// already seen and rejected the attempt. PATCH is excluded and is never
// retried. No configuration can change this set.
var retryableMethods = map[string]struct{}{
	http.MethodDelete:  {},
	http.MethodGet:     {},
	http.MethodHead:    {},
	http.MethodOptions: {},
	http.MethodPost:    {},
	http.MethodPut:     {},
}

// Policy decides which failed requests are retried and how long to wait
// between attempts. Construct it with NewPolicy; the zero value retries
// nothing.
type Policy struct {
	// BackoffFactor scales the exponential delay between attempts.
	BackoffFactor float64

	// MaxRetries is the number of retries after the initial attempt.
	MaxRetries int

	codes map[int]struct{}
}

// NewPolicy builds a Policy from a backoff factor, a retry budget, and
// additional retryable status codes. HTTP 429 is always retryable;
// extraCodes is unioned with it and duplicates collapse.
func NewPolicy(backoffFactor float64, maxRetries int, extraCodes []int) Policy {
	codes := map[int]struct{}{
		http.StatusTooManyRequests: {},
	}
	for _, code := range extraCodes {
		codes[code] = struct{}{}
	}

	return Policy{
		BackoffFactor: backoffFactor,
		MaxRetries:    maxRetries,
		codes:         codes,
	}
}

// Codes returns the retryable status codes in ascending order.
func (p Policy) Codes() []int {
	codes := make([]int, 0, len(p.codes))
	for code := range p.codes {
		codes = append(codes, code)
	}
	sort.Ints(codes)
	return codes
}

// Methods returns the retryable HTTP methods in ascending order.
// The set is the same for every Policy.
func (p Policy) Methods() []string {
	methods := make([]string, 0, len(retryableMethods))
	for m := range retryableMethods {
		methods = append(methods, m)
	}
	sort.Strings(methods)
	return methods
}

// ShouldRetry reports whether a request with the given method and response
// status code is eligible for another attempt.
func (p Policy) ShouldRetry(method string, statusCode int) bool {
	if _, ok := retryableMethods[method]; !ok {
		return false
	}
	_, ok := p.codes[statusCode]
	return ok
}

// CheckRetry implements retryablehttp.CheckRetry. Connection errors are not
// retried; they propagate to the caller unmodified. Only responses carrying
// one of the policy's status codes trigger a retry, and only for methods in
// the fixed retryable set.
func (p Policy) CheckRetry(ctx context.Context, resp *http.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}
	if err != nil {
		return false, err
	}
	if resp == nil || resp.Request == nil {
		return false, nil
	}
	return p.ShouldRetry(resp.Request.Method, resp.StatusCode), nil
}

// Backoff implements retryablehttp.Backoff. The delay grows exponentially,
// scaled by the backoff factor: factor * 2^attempt seconds, clamped to
// [min, max]. A Retry-After header on a 429 response takes precedence.
func (p Policy) Backoff(minWait, maxWait time.Duration, attemptNum int, resp *http.Response) time.Duration {
	if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
		if wait := ParseRetryAfter(resp.Header.Get("Retry-After")); wait > 0 {
			if wait > maxWait {
				return maxWait
			}
			return wait
		}
	}

	wait := time.Duration(p.BackoffFactor * math.Pow(2, float64(attemptNum)) * float64(time.Second))
	if wait > maxWait {
		return maxWait
	}
	if wait < minWait {
		return minWait
	}
	return wait
}

// ParseRetryAfter parses the Retry-After HTTP header and returns the duration to wait.
// The Retry-After header can contain either:
//   - Number of seconds (e.g., "120")
//   - HTTP-date (not currently supported, returns 0)
//
// Returns 0 if the header is empty or cannot be parsed.
func ParseRetryAfter(retryAfterHeader string) time.Duration {
	if retryAfterHeader == "" {
		return 0
	}

	seconds, err := strconv.Atoi(retryAfterHeader)
	if err == nil {
		return time.Duration(seconds) * time.Second
	}

	return 0
}
