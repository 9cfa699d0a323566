package middleware

import (
	"maps"
	"net/http"
)

// UserAgent holds the User-Agent value applied to every request issued
// through the session's transport. It is shared by reference between the
// session and the middleware so the value can be replaced after the
// transport has been built.
//
// UserAgent is not synchronized; callers that mutate it from multiple
// goroutines must serialize those calls themselves.
type UserAgent struct {
	value string
}

// NewUserAgent returns a UserAgent initialized to the given value.
func NewUserAgent(value string) *UserAgent {
	return &UserAgent{value: value}
}

// Set replaces the User-Agent value. The latest value wins; all requests
// issued after the call carry it.
func (u *UserAgent) Set(value string) {
	u.value = value
}

// String returns the current User-Agent value.
func (u *UserAgent) String() string {
	return u.value
}

// UserAgentHeader returns a middleware that stamps the session's User-Agent
// onto each request. Requests that already carry an explicit User-Agent
// header keep it.
func UserAgentHeader(ua *UserAgent) func(http.RoundTripper) http.RoundTripper {
	return func(next http.RoundTripper) http.RoundTripper {
		return &userAgentTransport{
			next: next,
			ua:   ua,
		}
	}
}

type userAgentTransport struct {
	next http.RoundTripper
	ua   *UserAgent
}

func (t *userAgentTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if value := t.ua.String(); value != "" && req.Header.Get("User-Agent") == "" {
		// Clone request to avoid modifying original
		req = cloneRequest(req)
		req.Header.Set("User-Agent", value)
	}

	//nolint:wrapcheck // Middleware passes through errors from next handler in chain
	return t.next.RoundTrip(req)
}

// cloneRequest creates a shallow copy of the request with a cloned header map.
func cloneRequest(req *http.Request) *http.Request {
	r := new(http.Request)
	*r = *req
	r.Header = make(http.Header, len(req.Header))
	maps.Copy(r.Header, req.Header)
	return r
}
