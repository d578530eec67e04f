package service

import (
	"testing"
	"time"

	"github.com/outlay-labs/outlay/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func TestTokenServiceRoundTrip(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	token, err := svc.Issue("alice", time.Now())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	subject, err := svc.Verify(token)
	require.NoError(t, err)
	require.Equal(t, "alice", subject)
}

func TestTokenServiceVerifyCollapsesFailures(t *testing.T) {
	t.Parallel()

	svc := newTestTokenService(t)

	t.Run("garbage", func(t *testing.T) {
		_, err := svc.Verify("not-a-token")
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		short := *svc
		short.AccessTTL = time.Minute

		token, err := short.Issue("alice", time.Now().Add(-2*time.Minute))
		require.NoError(t, err)

		_, err = svc.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong key", func(t *testing.T) {
		other, err := jwtx.NewSignerHS256([]byte("ffffffffffffffffffffffffffffffff"))
		require.NoError(t, err)

		forged := *svc
		forged.Signer = other

		token, err := forged.Issue("alice", time.Now())
		require.NoError(t, err)

		_, err = svc.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("wrong issuer", func(t *testing.T) {
		foreign := newTestTokenService(t)
		foreign.Issuer = "someone-else"

		token, err := foreign.Issue("alice", time.Now())
		require.NoError(t, err)

		_, err = svc.Verify(token)
		require.ErrorIs(t, err, ErrInvalidToken)
	})
}
