package service

import (
	"context"
	"errors"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"github.com/outlay-labs/outlay/internal/expense/domain"
	"github.com/outlay-labs/outlay/internal/expense/store"
	"github.com/outlay-labs/outlay/pkg/cryptox"
	"github.com/outlay-labs/outlay/pkg/idx"
	"github.com/outlay-labs/outlay/pkg/slogx"
)

// MinPasswordLength is enforced at signup only. Existing hashes keep
// verifying regardless of policy changes.
const MinPasswordLength = 8

var (
	// ErrInvalidCredentials is deliberately generic: unknown username and
	// wrong password are indistinguishable to the caller.
	ErrInvalidCredentials = errors.New("invalid_credentials")

	ErrUsernameTaken   = errors.New("duplicate_username")
	ErrEmailTaken      = errors.New("duplicate_email")
	ErrInvalidUsername = errors.New("invalid_username")
	ErrInvalidEmail    = errors.New("invalid_email")
	ErrInvalidPassword = errors.New("invalid_password")
)

// AuthService owns the credential store operations: signup, login and
// resolving a bearer token back to its user.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Signup registers a new user. The uniqueness checks and the insert run in a
// single transaction so a failed signup never leaves a partial user behind.
func (s *AuthService) Signup(ctx context.Context, username, email, password string) (domain.User, error) {
	l := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" {
		return domain.User{}, ErrInvalidUsername
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return domain.User{}, ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return domain.User{}, ErrInvalidPassword
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return domain.User{}, err
	}

	now := time.Now().UTC()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if _, err := tx.Users().GetUserByUsername(ctx, username); err == nil {
			return ErrUsernameTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if _, err := tx.Users().GetUserByEmail(ctx, email); err == nil {
			return ErrEmailTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		if err := tx.Users().CreateUser(ctx, user); err != nil {
			// A concurrent signup can still win the race between the checks
			// and the insert; the unique index is the real arbiter.
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrUsernameTaken
			}
			return err
		}

		return nil
	})
	if err != nil {
		return domain.User{}, err
	}

	l.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username),
	)

	return user, nil
}

// Login verifies the credentials and returns a fresh bearer token.
func (s *AuthService) Login(ctx context.Context, username, password string) (domain.TokenResponse, error) {
	l := slogx.FromContext(ctx)

	user, err := s.Store.Users().GetUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.TokenResponse{}, ErrInvalidCredentials
		}
		return domain.TokenResponse{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login password verification failed", slog.String("username", user.Username))
		return domain.TokenResponse{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.Username, time.Now())
	if err != nil {
		return domain.TokenResponse{}, err
	}

	return domain.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int64(s.Tokens.TTL().Seconds()),
	}, nil
}

// CurrentUser resolves a bearer token to the user it was issued for. Any
// failure, including a subject that no longer exists, surfaces as
// ErrInvalidToken.
func (s *AuthService) CurrentUser(ctx context.Context, token string) (domain.User, error) {
	subject, err := s.Tokens.Verify(token)
	if err != nil {
		return domain.User{}, err
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.User{}, ErrInvalidToken
		}
		return domain.User{}, err
	}

	return user, nil
}
