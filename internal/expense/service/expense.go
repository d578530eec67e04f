package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/outlay-labs/outlay/internal/expense/domain"
	"github.com/outlay-labs/outlay/internal/expense/store"
	"github.com/outlay-labs/outlay/pkg/idx"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

var (
	ErrExpenseNotFound = errors.New("expense_not_found")
	ErrInvalidCategory = errors.New("invalid_category")
)

// FilterRequest carries the caller's raw listing parameters before they are
// normalized into a domain.ExpenseFilter.
type FilterRequest struct {
	FilterType string
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []string
}

// CreateExpenseInput is the payload for creating an expense. Category,
// Description and Date are optional.
type CreateExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        *time.Time
}

// UpdateExpenseInput is the payload for overwriting an expense. A nil Date
// keeps the stored date.
type UpdateExpenseInput struct {
	Amount      float64
	Category    string
	Description string
	Date        *time.Time
}

// ExpenseService owns the expense CRUD and the listing filter engine.
type ExpenseService struct {
	Store store.Store
}

// ResolveFilter normalizes a raw filter request against now.
//
// A recognized FilterType overrides any caller-supplied start date with a
// fixed lookback from now; an unrecognized one resets the start date
// entirely. The end date defaults to now, and the resulting date interval is
// closed on both ends.
func ResolveFilter(req FilterRequest, now time.Time) (domain.ExpenseFilter, error) {
	start := req.StartDate
	if req.FilterType != "" {
		if f, ok := domain.ParseDateFilter(req.FilterType); ok {
			t := now.Add(-f.Lookback())
			start = &t
		} else {
			start = nil
		}
	}

	end := req.EndDate
	if end == nil {
		t := now
		end = &t
	}

	var cats []domain.Category
	for _, raw := range req.Categories {
		if raw == "" {
			continue
		}
		c, ok := domain.ParseCategory(raw)
		if !ok {
			return domain.ExpenseFilter{}, ErrInvalidCategory
		}
		cats = append(cats, c)
	}

	return domain.ExpenseFilter{
		StartDate:  start,
		EndDate:    end,
		Categories: cats,
	}, nil
}

// List returns the owner's expenses matching the filter. Ownership scoping
// is applied in the store before any other predicate.
func (s *ExpenseService) List(ctx context.Context, ownerID string, req FilterRequest) ([]domain.Expense, error) {
	f, err := ResolveFilter(req, time.Now().UTC())
	if err != nil {
		return nil, err
	}
	return s.Store.Expenses().ListExpensesByOwner(ctx, ownerID, f)
}

// Create records a new expense for ownerID. The date defaults to now and the
// category to others; the amount is stored as given, sign included.
func (s *ExpenseService) Create(ctx context.Context, ownerID string, in CreateExpenseInput) (domain.Expense, error) {
	l := slogx.FromContext(ctx)

	category, ok := domain.ParseCategory(in.Category)
	if !ok {
		return domain.Expense{}, ErrInvalidCategory
	}

	now := time.Now().UTC()
	date := now
	if in.Date != nil {
		date = in.Date.UTC()
	}

	e := domain.Expense{
		ID:          idx.New().String(),
		UserID:      ownerID,
		Amount:      in.Amount,
		Category:    category,
		Description: in.Description,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.Store.Expenses().CreateExpense(ctx, e); err != nil {
		return domain.Expense{}, err
	}

	l.Info("expense created",
		slog.String("expense_id", e.ID),
		slog.String("user_id", ownerID),
		slog.String("category", e.Category.String()),
	)

	return e, nil
}

// Update overwrites an expense looked up by id alone, read-modify-write in
// one transaction. A nil Date in the input keeps the stored date.
func (s *ExpenseService) Update(ctx context.Context, expenseID string, in UpdateExpenseInput) (domain.Expense, error) {
	category, ok := domain.ParseCategory(in.Category)
	if !ok {
		return domain.Expense{}, ErrInvalidCategory
	}

	var updated domain.Expense

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := tx.Expenses().GetExpenseByID(ctx, expenseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		e.Amount = in.Amount
		e.Category = category
		e.Description = in.Description
		if in.Date != nil {
			e.Date = in.Date.UTC()
		}
		e.UpdatedAt = time.Now().UTC()

		if err := tx.Expenses().UpdateExpense(ctx, e); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		updated = e
		return nil
	})
	if err != nil {
		return domain.Expense{}, err
	}

	return updated, nil
}

// Delete removes an expense looked up by id alone and returns the record as
// it was just before deletion.
func (s *ExpenseService) Delete(ctx context.Context, expenseID string) (domain.Expense, error) {
	l := slogx.FromContext(ctx)

	var snapshot domain.Expense

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		e, err := tx.Expenses().GetExpenseByID(ctx, expenseID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		if err := tx.Expenses().DeleteExpense(ctx, e.ID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrExpenseNotFound
			}
			return err
		}

		snapshot = e
		return nil
	})
	if err != nil {
		return domain.Expense{}, err
	}

	l.Info("expense deleted",
		slog.String("expense_id", snapshot.ID),
		slog.String("user_id", snapshot.UserID),
	)

	return snapshot, nil
}
