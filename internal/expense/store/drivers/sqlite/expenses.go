package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"github.com/outlay-labs/outlay/internal/expense/domain"
	"github.com/outlay-labs/outlay/internal/expense/store"
)

type expensesRepo struct {
	db dbtx
}

const expenseColumns = `id, user_id, amount, category, description, date, created_at, updated_at`

func (r *expensesRepo) CreateExpense(ctx context.Context, e domain.Expense) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO expenses (`+expenseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID, e.UserID, e.Amount, e.Category.String(), mapStringNull(e.Description),
		utc(e.Date), utc(e.CreatedAt), utc(e.UpdatedAt),
	)
	return mapConstraint(err)
}

func (r *expensesRepo) GetExpenseByID(ctx context.Context, id string) (domain.Expense, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+expenseColumns+` FROM expenses WHERE id = ?`, id)
	return scanExpense(row)
}

func (r *expensesRepo) ListExpensesByOwner(
	ctx context.Context,
	ownerID string,
	f domain.ExpenseFilter,
) ([]domain.Expense, error) {
	// Ownership scoping comes first and is non-optional; everything else in
	// the predicate descriptor narrows from there.
	var b strings.Builder
	b.WriteString(`SELECT ` + expenseColumns + ` FROM expenses WHERE user_id = ?`)
	args := []any{ownerID}

	// The date window applies only when both bounds resolved; a lone end
	// bound imposes no constraint.
	if f.StartDate != nil && f.EndDate != nil {
		b.WriteString(` AND date >= ? AND date <= ?`)
		args = append(args, utc(*f.StartDate), utc(*f.EndDate))
	}

	if len(f.Categories) > 0 {
		b.WriteString(` AND category IN (?` + strings.Repeat(", ?", len(f.Categories)-1) + `)`)
		for _, c := range f.Categories {
			args = append(args, c.String())
		}
	}

	rows, err := r.db.QueryContext(ctx, b.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Expense
	for rows.Next() {
		e, err := scanExpenseRow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *expensesRepo) UpdateExpense(ctx context.Context, e domain.Expense) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE expenses SET amount = ?, category = ?, description = ?, date = ?, updated_at = ? WHERE id = ?`,
		e.Amount, e.Category.String(), mapStringNull(e.Description), utc(e.Date), utc(e.UpdatedAt), e.ID,
	)
	if err != nil {
		return err
	}
	return requireRowMatched(res)
}

func (r *expensesRepo) DeleteExpense(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, id)
	if err != nil {
		return err
	}
	return requireRowMatched(res)
}

func requireRowMatched(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row *sql.Row) (domain.Expense, error) {
	e, err := scanExpenseRow(row)
	if err != nil {
		return domain.Expense{}, mapNotFound(err)
	}
	return e, nil
}

func scanExpenseRow(row rowScanner) (domain.Expense, error) {
	var (
		e           domain.Expense
		category    string
		description sql.NullString
	)
	err := row.Scan(
		&e.ID, &e.UserID, &e.Amount, &category, &description,
		&e.Date, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return domain.Expense{}, err
	}
	e.Category = domain.Category(category)
	e.Description = mapNullString(description)
	return e, nil
}
