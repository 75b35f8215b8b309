package profilesdk

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes returned by the profile service.
const (
	ErrorCodeInvalidRequest = "invalid_request"
	ErrorCodeUnauthorized   = "unauthorized"
	ErrorCodeNotOwner       = "not_owner"
	ErrorCodeNotFound       = "not_found"
	ErrorCodeConflict       = "conflict"
	ErrorCodeInviteExpired  = "invite_expired"
	ErrorCodeServerError    = "server_error"
)

// APIError is the service's JSON error body plus its HTTP status. It
// implements the error interface so SDK callers can switch on Code.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "not_owner")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// IsNotFound reports whether the error is a not-found response. Note the
// service deliberately answers not-found for profiles the caller cannot
// read, so this does not prove absence.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// parseErrorResponse turns a non-2xx response body into an *APIError.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  statusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  statusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", statusCode, http.StatusText(statusCode)),
	}
}
