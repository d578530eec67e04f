package http

import (
	"errors"
	"net/http"

	"github.com/outlay-labs/outlay/internal/expense/service"
	"github.com/outlay-labs/outlay/pkg/httpx"
	"github.com/outlay-labs/outlay/pkg/outlaysdk"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

type ExpenseCreateHandler struct {
	ExpenseService *service.ExpenseService
}

// ServeHTTP records a new expense for the authenticated user.
//
//	@Summary		Create an expense
//	@Description	Records a new expense. The date defaults to now and the category to "others".
//	@Tags			Expenses
//	@Security		BearerAuth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		outlaysdk.ExpenseRequest	true	"Expense payload"
//	@Success		200		{object}	outlaysdk.ExpenseResponse	"The created expense"
//	@Failure		400		{object}	outlaysdk.ErrorResponse		"invalid_request or invalid_category"
//	@Failure		401		{object}	outlaysdk.ErrorResponse		"Invalid or missing access token"
//	@Failure		500		{object}	outlaysdk.ErrorResponse		"Internal server error"
//	@Router			/v1/expenses [post].
func (h *ExpenseCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID, ok := httpx.UserIDFromContext(ctx)
	if !ok {
		outlaysdk.ErrInvalidToken.WriteError(w)
		return
	}

	var req outlaysdk.ExpenseRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		outlaysdk.ErrInvalidRequest.WriteError(w)
		return
	}

	expense, err := h.ExpenseService.Create(ctx, userID, service.CreateExpenseInput{
		Amount:      req.Amount,
		Category:    req.Category,
		Description: req.Description,
		Date:        req.Date,
	})
	if err != nil {
		if errors.Is(err, service.ErrInvalidCategory) {
			outlaysdk.ErrInvalidCategory.WriteError(w)
			return
		}
		log.Error("expense create failed", "err", err)
		outlaysdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, toExpenseResponse(expense))
}
