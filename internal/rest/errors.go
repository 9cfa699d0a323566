package rest

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response is read.
const maxErrorBody = 64 * 1024

// APIError is a non-2xx response from the panel. The panel reports failures
// as a list of error objects; all of them are preserved.
type APIError struct {
	StatusCode int
	Errors     []ErrorDetail
}

// ErrorDetail is a single error object from the panel's error payload.
type ErrorDetail struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	if len(e.Errors) == 0 {
		return fmt.Sprintf("panel returned status %d", e.StatusCode)
	}

	details := make([]string, 0, len(e.Errors))
	for _, d := range e.Errors {
		if d.Code != "" {
			details = append(details, d.Code+": "+d.Detail)
		} else {
			details = append(details, d.Detail)
		}
	}
	return fmt.Sprintf("panel returned status %d: %s", e.StatusCode, strings.Join(details, "; "))
}

// newAPIError reads the error payload from a failed response. A body that is
// not the panel's error format still yields an APIError with the status code.
func newAPIError(resp *http.Response) *APIError {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return apiErr
	}

	var payload struct {
		Errors []ErrorDetail `json:"errors"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		apiErr.Errors = payload.Errors
	}

	return apiErr
}
