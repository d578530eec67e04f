package http

import (
	"errors"
	"net/http"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/pkg/httpx"
	"github.com/outlay-labs/outlay/pkg/outlaysdk"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

type LoginHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles credential login.
//
//	@Summary		Log in
//	@Description	Exchanges username and password for a short-lived bearer token.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		outlaysdk.LoginRequest	true	"Login payload"
//	@Success		200		{object}	outlaysdk.TokenResponse	"access_token, token_type, expires_in"
//	@Failure		400		{object}	outlaysdk.ErrorResponse	"invalid_request or invalid_credentials"
//	@Failure		500		{object}	outlaysdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req outlaysdk.LoginRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		outlaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	token, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			outlaysdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		log.Error("login failed", "err", err)
		outlaysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, outlaysdk.TokenResponse{
		AccessToken: token.AccessToken,
		TokenType:   token.TokenType,
		ExpiresIn:   token.ExpiresIn,
	})
}
