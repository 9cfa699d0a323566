package pterodactyl

import (
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/pterosdk/go-pterodactyl/api/application"
	"github.com/pterosdk/go-pterodactyl/api/client"
	"github.com/pterosdk/go-pterodactyl/internal/httpclient"
	"github.com/pterosdk/go-pterodactyl/internal/middleware"
	"github.com/pterosdk/go-pterodactyl/internal/ratelimit"
	"github.com/pterosdk/go-pterodactyl/internal/rest"
	"github.com/pterosdk/go-pterodactyl/internal/retry"
	"github.com/pterosdk/go-pterodactyl/observability"
)

// Version is the library version reported in the default User-Agent.
const Version = "1.0.0"

const (
	// DefaultUserAgent identifies the library when no custom agent is set.
	DefaultUserAgent = "go-pterodactyl/" + Version

	// Retry configuration
	DefaultBackoffFactor = 1.0
	DefaultMaxRetries    = 3
	DefaultTimeout       = 30 * time.Second

	// DefaultRateLimitPerMinute matches the panel's per-key request budget.
	DefaultRateLimitPerMinute = 240
)

// Config holds configuration for a panel session.
type Config struct {
	// BaseURL is the panel's base URL, e.g. https://panel.example.com.
	// Required.
	BaseURL string

	// APIKey is the application or client API key used as the Bearer token.
	// Required.
	APIKey string

	// BackoffFactor scales the exponential wait between retries
	// (defaults to 1).
	BackoffFactor float64

	// MaxRetries sets how many times a request is retried after its first
	// attempt (defaults to 3).
	MaxRetries int

	// ExtraRetryCodes adds HTTP status codes to the retried set. 429 is
	// always retried.
	ExtraRetryCodes []int

	// RateLimitPerMinute paces outgoing requests client-side (defaults to
	// 240, the panel's own per-key budget). A negative value disables
	// pacing.
	RateLimitPerMinute int

	// Timeout sets the HTTP client timeout, covering all retries of a
	// request (defaults to 30s).
	Timeout time.Duration

	// UserAgent overrides the default User-Agent header.
	UserAgent string

	// InsecureSkipVerify disables TLS certificate verification. Only for
	// panels with self-signed certificates in dev/test environments.
	InsecureSkipVerify bool

	// HTTPClient is the HTTP client to use (optional). Its transport is
	// wrapped by the session middleware and its cookie jar is replaced.
	HTTPClient *http.Client

	// Logger receives structured request logs (optional)
	Logger observability.Logger

	// Metrics receives request, retry, and rate-limit metrics (optional)
	Metrics observability.MetricsRecorder
}

// Client is a panel session. All resource accessors created from one Client
// share its transport, so cookies, User-Agent, rate limiting, and retry
// behavior apply uniformly across them.
type Client struct {
	baseURL *url.URL
	apiKey  string
	http    *httpclient.Client
	ua      *middleware.UserAgent
}

// Cookie is a session cookie applied to all subsequent requests. Path
// defaults to "/" and Domain to the panel's host when left empty.
type Cookie struct {
	Name   string
	Value  string
	Path   string
	Domain string
}

// New creates a panel session from the given configuration.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingPanelURL
	}
	if cfg.APIKey == "" {
		return nil, ErrMissingAPIKey
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, configErrorf(err, "invalid panel base URL %q", cfg.BaseURL)
	}

	// Set defaults
	if cfg.BackoffFactor == 0 {
		cfg.BackoffFactor = DefaultBackoffFactor
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.RateLimitPerMinute == 0 {
		cfg.RateLimitPerMinute = DefaultRateLimitPerMinute
	}
	if cfg.Timeout == 0 {
		cfg.Timeout = DefaultTimeout
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cookie jar")
	}

	ua := middleware.NewUserAgent(cfg.UserAgent)
	policy := retry.NewPolicy(cfg.BackoffFactor, cfg.MaxRetries, cfg.ExtraRetryCodes)

	// Outer concerns first: observability sees every attempt's final
	// outcome, the retry layer sits inside so each attempt is paced and
	// stamped individually.
	chain := []httpclient.Middleware{
		middleware.Observability(cfg.Logger, cfg.Metrics),
		middleware.UserAgentHeader(ua),
		middleware.RateLimit(middleware.RateLimitConfig{
			Limiter: ratelimit.NewRateLimiter(cfg.RateLimitPerMinute),
			Logger:  cfg.Logger,
			Metrics: cfg.Metrics,
		}),
		middleware.Retry(middleware.RetryConfig{
			Policy:  policy,
			Logger:  cfg.Logger,
			Metrics: cfg.Metrics,
		}),
	}
	if cfg.InsecureSkipVerify {
		chain = append(chain, middleware.TLSConfig(middleware.InsecureSkipVerify()))
	}

	opts := []httpclient.Option{}
	if cfg.HTTPClient != nil {
		opts = append(opts, httpclient.WithHTTPClient(cfg.HTTPClient))
	}
	opts = append(opts,
		httpclient.WithTimeout(cfg.Timeout),
		httpclient.WithCookieJar(jar),
		httpclient.WithMiddleware(chain...),
	)

	return &Client{
		baseURL: baseURL,
		apiKey:  cfg.APIKey,
		http:    httpclient.New(opts...),
		ua:      ua,
	}, nil
}

// rest returns a fresh request binding on the shared transport. Each
// accessor gets its own binding, so accessors never share mutable state
// beyond the transport itself.
func (c *Client) rest() *rest.Client {
	return rest.New(c.baseURL, c.apiKey, c.http)
}

// Locations returns a new accessor for the panel's locations.
func (c *Client) Locations() *application.Locations {
	return application.NewLocations(c.rest())
}

// Nests returns a new accessor for the panel's nests and eggs.
func (c *Client) Nests() *application.Nests {
	return application.NewNests(c.rest())
}

// Nodes returns a new accessor for the panel's nodes and allocations.
func (c *Client) Nodes() *application.Nodes {
	return application.NewNodes(c.rest())
}

// Servers returns a new accessor for the panel's servers.
func (c *Client) Servers() *application.Servers {
	return application.NewServers(c.rest())
}

// Users returns a new accessor for the panel's user accounts.
func (c *Client) Users() *application.Users {
	return application.NewUsers(c.rest())
}

// ClientAPI returns a new accessor for the user-facing Client API.
func (c *Client) ClientAPI() *client.API {
	return client.NewAPI(c.rest())
}

// SetCookies adds the given cookies to the session's jar. They accompany
// every subsequent request from this session, including requests issued by
// accessors created before the call. Setting a cookie whose name, domain,
// and path match an existing one replaces it.
func (c *Client) SetCookies(cookies []Cookie) {
	hc := make([]*http.Cookie, 0, len(cookies))
	for _, cookie := range cookies {
		path := cookie.Path
		if path == "" {
			path = "/"
		}
		hc = append(hc, &http.Cookie{
			Name:   cookie.Name,
			Value:  cookie.Value,
			Path:   path,
			Domain: cookie.Domain,
		})
	}
	c.http.Jar().SetCookies(c.baseURL, hc)
}

// SetUserAgent replaces the session's User-Agent. The latest value wins and
// applies to all subsequent requests from every accessor.
func (c *Client) SetUserAgent(value string) {
	c.ua.Set(value)
}

// UserAgent returns the session's current User-Agent value.
func (c *Client) UserAgent() string {
	return c.ua.String()
}
