package http

import (
	"errors"
	"net/http"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/pkg/httpx"
	"github.com/outlay-labs/outlay/pkg/outlaysdk"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

type ExpenseDeleteHandler struct {
	ExpenseService *service.ExpenseService
}

// ServeHTTP deletes an expense by id.
//
//	@Summary		Delete an expense
//	@Description	Removes an expense and returns the record as it was just before deletion.
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Produce		json
//	@Param			id	path		string						true	"Expense id"
//	@Success		200	{object}	outlaysdk.ExpenseResponse	"The deleted expense"
//	@Failure		401	{object}	outlaysdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		404	{object}	outlaysdk.ErrorResponse		"Expense not found"
//	@Failure		500	{object}	outlaysdk.ErrorResponse		"Internal server error"
//	@Router			/v1/expenses/{id} [delete].
func (h *ExpenseDeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	id := r.PathValue("id")
	if id == "" {
		outlaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	expense, err := h.ExpenseService.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, service.ErrExpenseNotFound) {
			outlaysdk.ErrNotFound.WriteError(w)
			return
		}
		log.Error("expense delete failed", "expense_id", id, "err", err)
		outlaysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExpenseResponse(expense))
}
