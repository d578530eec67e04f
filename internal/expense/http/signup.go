package http

import (
	"errors"
	"net/http"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/pkg/httpx"
	"github.com/outlay-labs/outlay/pkg/outlaysdk"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

type SignupHandler struct {
	AuthService *service.AuthService
}

// ServeHTTP handles user registration.
//
//	@Summary		Register a new user
//	@Description	Creates a new user account. Username and email must be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		outlaysdk.SignupRequest	true	"Signup payload"
//	@Success		200		{object}	outlaysdk.UserResponse	"The created user"
//	@Failure		400		{object}	outlaysdk.ErrorResponse	"invalid_request, duplicate_username or duplicate_email"
//	@Failure		500		{object}	outlaysdk.ErrorResponse	"Internal server error"
//	@Router			/v1/auth/signup [post].
func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req outlaysdk.SignupRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		outlaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	user, err := h.AuthService.Signup(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameTaken):
			outlaysdk.ErrDuplicateUsername.WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			outlaysdk.ErrDuplicateEmail.WriteError(w)
		case errors.Is(err, service.ErrInvalidUsername),
			errors.Is(err, service.ErrInvalidEmail),
			errors.Is(err, service.ErrInvalidPassword):
			outlaysdk.NewAPIError(http.StatusBadRequest, outlaysdk.ErrorCodeInvalidRequest, err.Error()).WriteError(w)
		default:
			log.Error("signup failed", "err", err)
			outlaysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, outlaysdk.UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Email:    user.Email,
	})
}
