package http

import (
	"net/http"

	"github.com/outlay-labs/outlay/pkg/httpx"
)

// RootHandler godoc
//
//	@Summary		Welcome Endpoint
//	@Description	Returns a welcome message; handy as a smoke check for deployments
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/ [get].
func RootHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		httpx.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Welcome to the Outlay expense tracking API",
		})
	}
}
