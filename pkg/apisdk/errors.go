package apisdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/headlinehq/newswire/pkg/httpx"
)

// Error codes used in the "error" field of ErrorResponse.
const (
	ErrorCodeAuthRequired       = "auth_required"
	ErrorCodeForbidden          = "forbidden"
	ErrorCodeValidation         = "validation_error"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeConflict           = "conflict"
	ErrorCodeRateLimited        = "rate_limit_exceeded"
	ErrorCodeServerError        = "server_error"
	ErrorCodeServiceUnavailable = "service_unavailable"
)

// APIError is the error envelope used both by the server (to write HTTP
// responses) and by the SDK client (to represent failed calls). It
// implements the error interface.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Code is the stable machine-readable error code.
	Code string `json:"error"`

	// Detail is a human-readable description.
	Detail string `json:"detail"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Detail)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{
		Error:  e.Code,
		Detail: e.Detail,
	})
}

// Credential rejections. Missing, unparseable, and failed credentials all
// map to 401 auth_required; only the detail varies, and verification
// failures share one detail regardless of cause.
var (
	ErrCredentialRequired = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthRequired,
		Detail:     "credential is required",
	}

	ErrCredentialFormat = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthRequired,
		Detail:     "invalid credential format",
	}

	ErrCredentialMalformed = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthRequired,
		Detail:     "malformed credential",
	}

	ErrCredentialInvalid = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthRequired,
		Detail:     "invalid or inactive credential",
	}

	// ErrAdminTokenInvalid covers the admin bearer token on the client
	// management surface.
	ErrAdminTokenInvalid = &APIError{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeAuthRequired,
		Detail:     "invalid or missing bearer token",
	}

	ErrServiceUnavailable = &APIError{
		StatusCode: http.StatusServiceUnavailable,
		Code:       ErrorCodeServiceUnavailable,
		Detail:     "try again later",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
		Detail:     "try again later",
	}
)

// NewAPIError creates an APIError with the given status code, error code,
// and detail.
func NewAPIError(statusCode int, code, detail string) *APIError {
	return &APIError{StatusCode: statusCode, Code: code, Detail: detail}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
			Detail:     errResp.Detail,
		}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
		Detail:     fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
