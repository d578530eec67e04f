package outlay_test

import (
	"context"
	"testing"
	"time"

	"github.com/outlay-labs/outlay/pkg/outlaysdk"

	"github.com/stretchr/testify/require"
)

func TestExpenseLifecycle(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := outlaysdk.NewClient(baseURL)
	session := signupAndLogin(t, client)

	var created *outlaysdk.ExpenseResponse

	t.Run("create with defaults", func(t *testing.T) {
		var err error
		created, err = session.CreateExpense(ctx, outlaysdk.ExpenseRequest{Amount: 12.50})
		require.NoError(t, err)
		require.NotEmpty(t, created.ID)
		require.Equal(t, 12.50, created.Amount)
		require.Equal(t, "others", created.Category)
		require.False(t, created.Date.IsZero())
	})

	t.Run("create with explicit fields", func(t *testing.T) {
		date := time.Now().UTC().Add(-48 * time.Hour).Truncate(time.Second)
		expense, err := session.CreateExpense(ctx, outlaysdk.ExpenseRequest{
			Amount:      99.95,
			Category:    "housing",
			Description: "rent",
			Date:        &date,
		})
		require.NoError(t, err)
		require.Equal(t, "housing", expense.Category)
		require.Equal(t, "rent", expense.Description)
		require.True(t, expense.Date.Equal(date))
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := session.CreateExpense(ctx, outlaysdk.ExpenseRequest{
			Amount:   1,
			Category: "gambling",
		})
		assertAPIError(t, err, outlaysdk.ErrorCodeInvalidCategory, "create with unknown category")
	})

	t.Run("update overwrites and keeps the date", func(t *testing.T) {
		updated, err := session.UpdateExpense(ctx, created.ID, outlaysdk.ExpenseRequest{
			Amount:      20,
			Category:    "shopping",
			Description: "groceries",
		})
		require.NoError(t, err)
		require.Equal(t, created.ID, updated.ID)
		require.Equal(t, 20.0, updated.Amount)
		require.Equal(t, "shopping", updated.Category)
		require.True(t, updated.Date.Equal(created.Date))
	})

	t.Run("update of a missing expense is 404", func(t *testing.T) {
		_, err := session.UpdateExpense(ctx, "01ARZ3NDEKTSV4RRFFQ69G5FAV", outlaysdk.ExpenseRequest{Amount: 1})
		assertAPIError(t, err, outlaysdk.ErrorCodeNotFound, "update missing expense")
	})

	t.Run("delete returns the final record", func(t *testing.T) {
		deleted, err := session.DeleteExpense(ctx, created.ID)
		require.NoError(t, err)
		require.Equal(t, created.ID, deleted.ID)
		require.Equal(t, "groceries", deleted.Description)

		_, err = session.DeleteExpense(ctx, created.ID)
		assertAPIError(t, err, outlaysdk.ErrorCodeNotFound, "double delete")
	})
}

func TestExpenseFiltering(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := outlaysdk.NewClient(baseURL)
	session := signupAndLogin(t, client)

	now := time.Now().UTC()
	mk := func(age time.Duration, category string) *outlaysdk.ExpenseResponse {
		t.Helper()
		date := now.Add(-age)
		expense, err := session.CreateExpense(ctx, outlaysdk.ExpenseRequest{
			Amount:   10,
			Category: category,
			Date:     &date,
		})
		require.NoError(t, err)
		return expense
	}

	recent := mk(2*time.Hour, "food")
	lastWeek := mk(5*24*time.Hour, "housing")
	old := mk(60*24*time.Hour, "food")

	ids := func(es []outlaysdk.ExpenseResponse) []string {
		out := make([]string, 0, len(es))
		for _, e := range es {
			out = append(out, e.ID)
		}
		return out
	}

	t.Run("no filter returns everything", func(t *testing.T) {
		es, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, lastWeek.ID, old.ID}, ids(es))
	})

	t.Run("day window", func(t *testing.T) {
		es, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{FilterType: "day"})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID}, ids(es))
	})

	t.Run("week window", func(t *testing.T) {
		es, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{FilterType: "week"})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, lastWeek.ID}, ids(es))
	})

	t.Run("explicit date range", func(t *testing.T) {
		start := now.Add(-10 * 24 * time.Hour)
		end := now.Add(-3 * 24 * time.Hour)
		es, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{
			StartDate: &start,
			EndDate:   &end,
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{lastWeek.ID}, ids(es))
	})

	t.Run("category filter", func(t *testing.T) {
		es, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{
			Categories: []string{"food"},
		})
		require.NoError(t, err)
		require.ElementsMatch(t, []string{recent.ID, old.ID}, ids(es))
	})

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{
			Categories: []string{"gambling"},
		})
		assertAPIError(t, err, outlaysdk.ErrorCodeInvalidCategory, "list with unknown category")
	})
}

func TestExpensesAreScopedToOwner(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := outlaysdk.NewClient(baseURL)

	alice := signupAndLogin(t, client)

	_, err := client.Signup(ctx, "bob", "bob@example.com", testPassword)
	require.NoError(t, err)
	bob, err := client.Login(ctx, "bob", testPassword)
	require.NoError(t, err)

	_, err = alice.CreateExpense(ctx, outlaysdk.ExpenseRequest{Amount: 50, Category: "food"})
	require.NoError(t, err)

	es, err := bob.ListExpenses(ctx, outlaysdk.ListExpensesOptions{})
	require.NoError(t, err)
	require.Empty(t, es, "Bob should not see Alice's expenses")
}
