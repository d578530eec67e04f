package cryptox_test

import (
	"path/filepath"
	"testing"

	"github.com/outlay-labs/outlay/pkg/cryptox"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Point the pepper at a throwaway location so tests never touch a real one.
	dir, err := filepath.Abs("testdata")
	if err != nil {
		panic(err)
	}
	cryptox.SetPepperPath(filepath.Join(dir, "pepper"))
	m.Run()
}

func TestHashPasswordIsSalted(t *testing.T) {
	a, err := cryptox.HashPassword("hunter2")
	require.NoError(t, err)
	b, err := cryptox.HashPassword("hunter2")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.Contains(t, a, "$argon2id$v=19$")
}

func TestVerifyPasswordRoundTrip(t *testing.T) {
	hash, err := cryptox.HashPassword("correct horse battery staple")
	require.NoError(t, err)

	require.NoError(t, cryptox.VerifyPassword("correct horse battery staple", hash))
	require.ErrorIs(t, cryptox.VerifyPassword("wrong", hash), cryptox.ErrPasswordMismatch)
}

func TestVerifyPasswordRejectsMalformedDigests(t *testing.T) {
	for _, digest := range []string{
		"",
		"plaintext",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$not-base64!$aGFzaA",
	} {
		require.Error(t, cryptox.VerifyPassword("pw", digest), "digest %q", digest)
	}
}
