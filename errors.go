package pterodactyl

import (
	"fmt"

	"github.com/pterosdk/go-pterodactyl/internal/rest"
)

// APIError is an error response from the panel. Accessor methods return it
// for any 4xx/5xx response; match with errors.As.
type APIError = rest.APIError

// ErrorDetail is one entry of an APIError's errors array.
type ErrorDetail = rest.ErrorDetail

// ConfigError reports an invalid or incomplete session configuration.
type ConfigError struct {
	reason string
	cause  error
}

func (e *ConfigError) Error() string {
	return "pterodactyl: " + e.reason
}

func (e *ConfigError) Unwrap() error {
	return e.cause
}

// Configuration errors returned by New. Match with errors.Is.
var (
	ErrMissingPanelURL = &ConfigError{reason: "panel base URL is required"}
	ErrMissingAPIKey   = &ConfigError{reason: "API key is required"}
)

func configErrorf(cause error, format string, args ...any) *ConfigError {
	return &ConfigError{
		reason: fmt.Sprintf(format, args...),
		cause:  cause,
	}
}
