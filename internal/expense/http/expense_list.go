package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/pkg/httpx"
	"github.com/outlay-labs/outlay/pkg/outlaysdk"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

type ExpenseListHandler struct {
	ExpenseService *service.ExpenseService
}

// ServeHTTP lists the authenticated user's expenses.
//
//	@Summary		List expenses
//	@Description	Returns the authenticated user's expenses. filter_type (day/week/month/year) selects a
//	@Description	fixed lookback window and overrides start_date; an unrecognized filter_type discards it.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			filter_type	query		string	false	"Named window: day, week, month or year"
//	@Param			start_date	query		string	false	"RFC3339 start of the date window"
//	@Param			end_date	query		string	false	"RFC3339 end of the date window (defaults to now)"
//	@Param			categories	query		[]string	false	"Categories to include (repeatable)"
//	@Success		200			{array}		outlaysdk.ExpenseResponse
//	@Failure		400			{object}	outlaysdk.ErrorResponse	"invalid_request or invalid_category"
//	@Failure		401			{object}	outlaysdk.ErrorResponse	"Invalid or missing access token"
//	@Failure		500			{object}	outlaysdk.ErrorResponse	"Internal server error"
//	@Router			/v1/expenses [get].
func (h *ExpenseListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		outlaysdk.ErrInvalidToken.WriteError(w)
		return
	}

	req, err := parseFilterRequest(r)
	if err != nil {
		outlaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	expenses, err := h.ExpenseService.List(ctx, userID, req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			outlaysdk.ErrInvalidCategory.WriteError(w)
			return
		}
		log.Error("expense list failed", "err", err)
		outlaysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExpenseResponses(expenses))
}

func parseFilterRequest(r *http.Request) (service.FilterRequest, error) {
	q := r.URL.Query()

	req := service.FilterRequest{
		FilterType: q.Get("filter_type"),
		Categories: q["categories"],
	}

	if raw := q.Get("start_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return service.FilterRequest{}, err
		}
		req.StartDate = &t
	}

	if raw := q.Get("end_date"); raw != "" {
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return service.FilterRequest{}, err
		}
		req.EndDate = &t
	}

	return req, nil
}
