package service

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/outlay-labs/outlay/internal/expense/store"
	"github.com/outlay-labs/outlay/internal/expense/store/drivers/sqlite"
	"github.com/outlay-labs/outlay/pkg/cryptox"
	"github.com/outlay-labs/outlay/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "outlay-service-test")
	if err != nil {
		os.Exit(1)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))

	code := m.Run()
	_ = os.RemoveAll(dir)
	os.Exit(code)
}

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	s, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

func newTestTokenService(t *testing.T) *TokenService {
	t.Helper()

	secret := []byte("0123456789abcdef0123456789abcdef")

	signer, err := jwtx.NewSignerHS256(secret)
	require.NoError(t, err)

	return &TokenService{
		Signer:    signer,
		Verifier:  jwtx.NewVerifierHS256(secret, "outlay-test"),
		Issuer:    "outlay-test",
		AccessTTL: 30 * time.Minute,
	}
}
