package outlaysdk

import "time"

// ErrorResponse is the wire error envelope. Client code should use APIError
// from errors.go instead; this exists for JSON unmarshaling.
type ErrorResponse struct {
	// Error is the machine-readable error code
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// SignupRequest is the payload for POST /v1/auth/signup.
type SignupRequest struct {
	// Username is the unique login name
	Username string `json:"username"`

	// Email is the unique contact address
	Email string `json:"email"`

	// Password is the plaintext password; it is hashed server-side and
	// never stored
	Password string `json:"password"`
}

// UserResponse is the public projection of a user. The password hash is
// never serialized.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// LoginRequest is the payload for POST /v1/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// TokenResponse is returned from the login endpoint.
type TokenResponse struct {
	// AccessToken is the signed bearer token for subsequent requests
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer"
	TokenType string `json:"token_type"`

	// ExpiresIn is the lifetime in seconds of the access token
	ExpiresIn int64 `json:"expires_in"`
}

// ExpenseRequest is the payload for creating or updating an expense.
// Category defaults to "others" when empty; a nil Date means "now" on
// create and "keep the stored date" on update.
type ExpenseRequest struct {
	Amount      float64    `json:"amount"`
	Category    string     `json:"category,omitempty"`
	Description string     `json:"description,omitempty"`
	Date        *time.Time `json:"date,omitempty"`
}

// ExpenseResponse is a single expense record as returned by the API.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	UserID      string    `json:"user_id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ListExpensesOptions are the optional query parameters for listing
// expenses. FilterType is one of day/week/month/year; when it is set and
// recognized it overrides StartDate.
type ListExpensesOptions struct {
	FilterType string
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []string
}

// HealthResponse is the response of the /livez and /readyz endpoints.
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Checks contains readiness check results (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the status of critical dependencies in /readyz.
type HealthChecks struct {
	// Database indicates the database connection status
	Database string `json:"database"`

	// Signer indicates the token signing capability status
	Signer string `json:"signer"`
}
