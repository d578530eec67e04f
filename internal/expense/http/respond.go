package http

import (
	"github.com/outlay-labs/outlay/internal/expense/domain"
	"github.com/outlay-labs/outlay/pkg/outlaysdk"
)

func toExpenseResponse(e domain.Expense) outlaysdk.ExpenseResponse {
	return outlaysdk.ExpenseResponse{
		ID:          e.ID,
		UserID:      e.UserID,
		Amount:      e.Amount,
		Category:    e.Category.String(),
		Description: e.Description,
		Date:        e.Date,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}

func toExpenseResponses(es []domain.Expense) []outlaysdk.ExpenseResponse {
	out := make([]outlaysdk.ExpenseResponse, 0, len(es))
	for _, e := range es {
		out = append(out, toExpenseResponse(e))
	}
	return out
}
