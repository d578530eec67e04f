package outlay_test

import (
	"context"
	"testing"

	"github.com/outlay-labs/outlay/pkg/outlaysdk"

	"github.com/stretchr/testify/require"
)

func TestSignupAndLogin(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := outlaysdk.NewClient(baseURL)

	t.Run("signup returns the created user", func(t *testing.T) {
		user, err := client.Signup(ctx, testUsername, testEmail, testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, user.ID)
		require.Equal(t, testUsername, user.Username)
		require.Equal(t, testEmail, user.Email)
	})

	t.Run("duplicate username is rejected", func(t *testing.T) {
		_, err := client.Signup(ctx, testUsername, "other@example.com", testPassword)
		assertAPIError(t, err, outlaysdk.ErrorCodeDuplicateUsername, "duplicate username signup")
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		_, err := client.Signup(ctx, "someone-else", testEmail, testPassword)
		assertAPIError(t, err, outlaysdk.ErrorCodeDuplicateEmail, "duplicate email signup")
	})

	t.Run("login issues a bearer token", func(t *testing.T) {
		token, err := client.LoginToken(ctx, testUsername, testPassword)
		require.NoError(t, err)
		require.NotEmpty(t, token.AccessToken)
		require.Equal(t, "bearer", token.TokenType)
		require.Positive(t, token.ExpiresIn)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		_, err := client.LoginToken(ctx, testUsername, "wrong-password")
		assertAPIError(t, err, outlaysdk.ErrorCodeInvalidCredentials, "wrong password login")
	})

	t.Run("unknown user gets the same error as wrong password", func(t *testing.T) {
		_, err := client.LoginToken(ctx, "nobody", testPassword)
		assertAPIError(t, err, outlaysdk.ErrorCodeInvalidCredentials, "unknown user login")
	})
}

func TestBearerTokenRequired(t *testing.T) {
	baseURL, cleanup := setupAPIContainer(t)
	defer cleanup()

	ctx := context.Background()
	client := outlaysdk.NewClient(baseURL)

	t.Run("missing token", func(t *testing.T) {
		session := client.SessionFromToken("")
		_, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{})
		assertAPIError(t, err, outlaysdk.ErrorCodeInvalidToken, "request without token")
	})

	t.Run("garbage token", func(t *testing.T) {
		session := client.SessionFromToken("not-a-real-token")
		_, err := session.ListExpenses(ctx, outlaysdk.ListExpensesOptions{})
		assertAPIError(t, err, outlaysdk.ErrorCodeInvalidToken, "request with garbage token")
	})
}
