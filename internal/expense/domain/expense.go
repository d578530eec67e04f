package domain

import "time"

// Expense is a single monetary transaction owned by a user. Amount is a
// signed value with no currency attached; Date is always set after creation.
type Expense struct {
	ID          string
	UserID      string
	Amount      float64
	Category    Category
	Description string // optional free text
	Date        time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ExpenseFilter is the normalized predicate descriptor applied when listing
// expenses. Nil date bounds mean unbounded on that side; the date interval
// is closed. Ownership scoping is not part of the descriptor because it is
// non-optional.
type ExpenseFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Categories []Category
}
