package domain

// TokenResponse is what the login endpoint returns: a short-lived signed
// access token presented back as an opaque bearer string.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"` // always "bearer"
	ExpiresIn   int64  `json:"expires_in"` // seconds until expiry
}
