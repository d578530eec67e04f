package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/outlay-labs/outlay/internal/expense/domain"
	"github.com/outlay-labs/outlay/internal/expense/store"
	"github.com/outlay-labs/outlay/pkg/idx"

	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	db, err := NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, db.ApplyMigrations())
	return db
}

func newUser(username, email string) domain.User {
	now := time.Now().UTC()
	return domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: "$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

func newExpense(userID string, amount float64, category domain.Category, date time.Time) domain.Expense {
	now := time.Now().UTC()
	return domain.Expense{
		ID:        idx.New().String(),
		UserID:    userID,
		Amount:    amount,
		Category:  category,
		Date:      date,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUsersRepo(t *testing.T) {
	db := newTestStore(t)
	ctx := context.Background()

	alice := newUser("alice", "alice@example.com")
	require.NoError(t, db.Users().CreateUser(ctx, alice))

	t.Run("lookup by id, username and email", func(t *testing.T) {
		byID, err := db.Users().GetUserByID(ctx, alice.ID)
		require.NoError(t, err)
		require.Equal(t, alice.Username, byID.Username)

		byName, err := db.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byName.ID)

		byEmail, err := db.Users().GetUserByEmail(ctx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, byEmail.ID)
	})

	t.Run("missing user maps to ErrNotFound", func(t *testing.T) {
		_, err := db.Users().GetUserByUsername(ctx, "nobody")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("duplicate username maps to ErrAlreadyExists", func(t *testing.T) {
		dup := newUser("alice", "other@example.com")
		err := db.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})

	t.Run("duplicate email maps to ErrAlreadyExists", func(t *testing.T) {
		dup := newUser("someone-else", "alice@example.com")
		err := db.Users().CreateUser(ctx, dup)
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}

func TestExpensesRepo(t *testing.T) {
	db := newTestStore(t)
	ctx := context.Background()

	alice := newUser("alice", "alice@example.com")
	require.NoError(t, db.Users().CreateUser(ctx, alice))

	date := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	exp := newExpense(alice.ID, 42.50, domain.CategoryFood, date)
	exp.Description = "lunch"
	require.NoError(t, db.Expenses().CreateExpense(ctx, exp))

	t.Run("round trip preserves fields", func(t *testing.T) {
		got, err := db.Expenses().GetExpenseByID(ctx, exp.ID)
		require.NoError(t, err)
		require.Equal(t, exp.ID, got.ID)
		require.Equal(t, alice.ID, got.UserID)
		require.Equal(t, 42.50, got.Amount)
		require.Equal(t, domain.CategoryFood, got.Category)
		require.Equal(t, "lunch", got.Description)
		require.True(t, got.Date.Equal(date))
	})

	t.Run("empty description survives the null round trip", func(t *testing.T) {
		bare := newExpense(alice.ID, 1, domain.CategoryOthers, date)
		require.NoError(t, db.Expenses().CreateExpense(ctx, bare))

		got, err := db.Expenses().GetExpenseByID(ctx, bare.ID)
		require.NoError(t, err)
		require.Empty(t, got.Description)
	})

	t.Run("missing expense maps to ErrNotFound", func(t *testing.T) {
		_, err := db.Expenses().GetExpenseByID(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("update of a missing row is ErrNotFound", func(t *testing.T) {
		ghost := newExpense(alice.ID, 1, domain.CategoryOthers, date)
		err := db.Expenses().UpdateExpense(ctx, ghost)
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("delete of a missing row is ErrNotFound", func(t *testing.T) {
		err := db.Expenses().DeleteExpense(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV")
		require.ErrorIs(t, err, store.ErrNotFound)
	})
}

func TestListExpensesByOwner(t *testing.T) {
	db := newTestStore(t)
	ctx := context.Background()

	alice := newUser("alice", "alice@example.com")
	bob := newUser("bob", "bob@example.com")
	require.NoError(t, db.Users().CreateUser(ctx, alice))
	require.NoError(t, db.Users().CreateUser(ctx, bob))

	now := time.Now().UTC().Truncate(time.Second)
	mk := func(owner string, age time.Duration, category domain.Category) domain.Expense {
		e := newExpense(owner, 10, category, now.Add(-age))
		require.NoError(t, db.Expenses().CreateExpense(ctx, e))
		return e
	}

	recent := mk(alice.ID, 2*time.Hour, domain.CategoryFood)
	older := mk(alice.ID, 5*24*time.Hour, domain.CategoryHousing)
	ancient := mk(alice.ID, 60*24*time.Hour, domain.CategoryFood)
	mk(bob.ID, time.Hour, domain.CategoryFood)

	ids := func(es []domain.Expense) []string {
		out := make([]string, 0, len(es))
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}

	t.Run("owner scoping is always applied", func(t *testing.T) {
		es, err := db.Expenses().ListExpensesByOwner(ctx, alice.ID, domain.ExpenseFilter{})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, older.ID, ancient.ID}, ids(es))
	})

	t.Run("closed date window", func(t *testing.T) {
		start := now.Add(-7 * 24 * time.Hour)
		end := now
		es, err := db.Expenses().ListExpensesByOwner(ctx, alice.ID, domain.ExpenseFilter{
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, older.ID}, ids(es))
	})

	t.Run("lone end bound imposes no window", func(t *testing.T) {
		end := now.Add(-30 * 24 * time.Hour)
		es, err := db.Expenses().ListExpensesByOwner(ctx, alice.ID, domain.ExpenseFilter{
			EndDate: &end,
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, older.ID, ancient.ID}, ids(es))
	})

	t.Run("category filter", func(t *testing.T) {
		es, err := db.Expenses().ListExpensesByOwner(ctx, alice.ID, domain.ExpenseFilter{
			Categories: []domain.Category{domain.CategoryFood},
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, ancient.ID}, ids(es))
	})

	t.Run("window and categories combine", func(t *testing.T) {
		start := now.Add(-7 * 24 * time.Hour)
		end := now
		es, err := db.Expenses().ListExpensesByOwner(ctx, alice.ID, domain.ExpenseFilter{
			StartDate:  &start,
			EndDate:    &end,
			Categories: []domain.Category{domain.CategoryFood, domain.CategoryHousing},
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, older.ID}, ids(es))
	})
}

func TestTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("WithTx commits on success", func(t *testing.T) {
		db := newTestStore(t)

		alice := newUser("alice", "alice@example.com")
		err := db.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, alice)
		})
		require.NoError(t, err)

		_, err = db.Users().GetUserByUsername(ctx, "alice")
		require.NoError(t, err)
	})

	t.Run("WithTx rolls back on error", func(t *testing.T) {
		db := newTestStore(t)

		boom := errors.New("boom")
		err := db.WithTx(ctx, func(tx store.Tx) error {
			if err := tx.Users().CreateUser(ctx, newUser("alice", "alice@example.com")); err != nil {
				return err
			}
			return boom
		})
		require.ErrorIs(t, err, boom)

		_, err = db.Users().GetUserByUsername(ctx, "alice")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("constraint errors map inside a transaction", func(t *testing.T) {
		db := newTestStore(t)
		require.NoError(t, db.Users().CreateUser(ctx, newUser("alice", "alice@example.com")))

		err := db.WithTx(ctx, func(tx store.Tx) error {
			return tx.Users().CreateUser(ctx, newUser("alice", "other@example.com"))
		})
		require.ErrorIs(t, err, store.ErrAlreadyExists)
	})
}
