package app

import (
	"bytes"
	"crypto/rand"
	"fmt"
	"log/slog"
	"os"

	"github.com/outlay-labs/outlay/pkg/jwtx"
)

// loadTokenSecret resolves the HS256 signing secret, in order of preference:
// a secret file, the raw env value, or an ephemeral random secret. The
// ephemeral fallback keeps dev setups zero-config; issued tokens then die
// with the process.
func loadTokenSecret(cfg Config, logger *slog.Logger) ([]byte, error) {
	if cfg.TokenSecretFile != "" {
		raw, err := os.ReadFile(cfg.TokenSecretFile)
		if err != nil {
			return nil, fmt.Errorf("read token secret file: %w", err)
		}

		secret := bytes.TrimSpace(raw)
		if len(secret) < jwtx.MinSecretLength {
			return nil, fmt.Errorf("token secret in %s is shorter than %d bytes", cfg.TokenSecretFile, jwtx.MinSecretLength)
		}
		return secret, nil
	}

	if cfg.TokenSecret != "" {
		secret := []byte(cfg.TokenSecret)
		if len(secret) < jwtx.MinSecretLength {
			return nil, fmt.Errorf("OUTLAY_TOKEN_SECRET is shorter than %d bytes", jwtx.MinSecretLength)
		}
		return secret, nil
	}

	if cfg.Env == "prod" {
		return nil, fmt.Errorf("no token secret configured; set OUTLAY_TOKEN_SECRET or OUTLAY_TOKEN_SECRET_FILE")
	}

	secret := make([]byte, jwtx.MinSecretLength)
	if _, err := rand.Read(secret); err != nil {
		return nil, fmt.Errorf("generate ephemeral token secret: %w", err)
	}

	logger.Warn("no token secret configured, generated an ephemeral one; tokens will not survive restarts")
	return secret, nil
}
