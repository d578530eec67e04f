package http

import (
	"errors"
	"net/http"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/pkg/httpx"
	"github.com/outlay-labs/outlay/pkg/outlaysdk"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

type ExpenseUpdateHandler struct {
	ExpenseService *service.ExpenseService
}

// ServeHTTP overwrites an expense by id.
//
//	@Summary		Update an expense
//	@Description	Overwrites amount, category and description; a missing date keeps the stored one.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string						true	"Expense id"
//	@Param			request	body		outlaysdk.ExpenseRequest	true	"Expense payload"
//	@Success		200		{object}	outlaysdk.ExpenseResponse	"The updated expense"
//	@Failure		400		{object}	outlaysdk.ErrorResponse		"invalid_request or invalid_category"
//	@Failure		401		{object}	outlaysdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		404		{object}	outlaysdk.ErrorResponse		"Expense not found"
//	@Failure		500		{object}	outlaysdk.ErrorResponse		"Internal server error"
//	@Router			/v1/expenses/{id} [put].
func (h *ExpenseUpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if id == "" {
		outlaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	var req outlaysdk.ExpenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		outlaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	expense, err := h.ExpenseService.Update(ctx, id, service.UpdateExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrExpenseNotFound):
			outlaysdk.ErrNotFound.WriteError(w)
		case errors.Is(err, service.ErrInvalidCategory):
			outlaysdk.ErrInvalidCategory.WriteError(w)
		default:
			log.Error("expense update failed", "expense_id", id, "err", err)
			outlaysdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExpenseResponse(expense))
}
