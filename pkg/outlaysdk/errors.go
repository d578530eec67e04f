package outlaysdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/outlay-labs/outlay/pkg/httpx"
)

const (
	ErrorCodeInvalidRequest     = "invalid_request"
	ErrorCodeInvalidCredentials = "invalid_credentials"
	ErrorCodeDuplicateUsername  = "duplicate_username"
	ErrorCodeDuplicateEmail     = "duplicate_email"
	ErrorCodeInvalidCategory    = "invalid_category"
	ErrorCodeInvalidToken       = "invalid_token"
	ErrorCodeNotFound           = "not_found"
	ErrorCodeServerError        = "server_error"
)

// APIError is the wire error shape shared by every endpoint. It implements
// the error interface so the SDK client can surface it directly, and the
// server handlers use WriteError to emit it.
type APIError struct {
	// StatusCode is the HTTP status code for this error
	StatusCode int `json:"-"`

	// Code is the machine-readable error code (e.g., "invalid_credentials")
	Code string `json:"error"`

	// Description is a human-readable description of the error
	Description string `json:"error_description"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Description)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"error":             e.Code,
		"error_description": e.Description,
	})
}

var (
	// ErrInvalidRequest is returned when the request body or parameters are
	// malformed or missing.
	ErrInvalidRequest = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidRequest,
		Description: "the request is malformed or missing required parameters",
	}

	// ErrInvalidCredentials is returned on login failure. Unknown usernames
	// and wrong passwords are indistinguishable.
	ErrInvalidCredentials = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCredentials,
		Description: "invalid username or password",
	}

	// ErrDuplicateUsername is returned when the requested username is taken.
	ErrDuplicateUsername = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeDuplicateUsername,
		Description: "a user with this username already exists",
	}

	// ErrDuplicateEmail is returned when the requested email is taken.
	ErrDuplicateEmail = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeDuplicateEmail,
		Description: "a user with this email already exists",
	}

	// ErrInvalidCategory is returned when a category is outside the closed
	// category set.
	ErrInvalidCategory = &APIError{
		StatusCode:  http.StatusBadRequest,
		Code:        ErrorCodeInvalidCategory,
		Description: "unknown expense category",
	}

	// ErrInvalidToken is returned when the access token is missing, invalid
	// or expired.
	ErrInvalidToken = &APIError{
		StatusCode:  http.StatusUnauthorized,
		Code:        ErrorCodeInvalidToken,
		Description: "the access token is missing, invalid or expired",
	}

	// ErrNotFound is returned when the addressed expense does not exist.
	ErrNotFound = &APIError{
		StatusCode:  http.StatusNotFound,
		Code:        ErrorCodeNotFound,
		Description: "expense not found",
	}

	// ErrServerError is returned for unexpected internal failures.
	ErrServerError = &APIError{
		StatusCode:  http.StatusInternalServerError,
		Code:        ErrorCodeServerError,
		Description: "internal server error",
	}
)

// NewAPIError creates an APIError with a custom description.
func NewAPIError(statusCode int, code, description string) *APIError {
	return &APIError{
		StatusCode:  statusCode,
		Code:        code,
		Description: description,
	}
}

// parseErrorResponse turns a non-2xx HTTP response into a typed *APIError.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &APIError{
			StatusCode:  resp.StatusCode,
			Code:        errResp.Error,
			Description: errResp.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode:  resp.StatusCode,
		Code:        ErrorCodeServerError,
		Description: fmt.Sprintf("HTTP %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode)),
	}
}
