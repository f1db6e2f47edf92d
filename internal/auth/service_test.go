package auth

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/credstack/credstack/internal/apperrors"
	"github.com/credstack/credstack/internal/config"
	"github.com/credstack/credstack/internal/db"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "credstack-auth-test.db")
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if errMigrate := db.Migrate(conn); errMigrate != nil {
		t.Fatalf("migrate: %v", errMigrate)
	}
	return NewService(conn, config.JWTConfig{Secret: "test-secret", Expiry: time.Hour})
}

func TestRegisterAndAuthenticate(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	registered, err := s.Register(ctx, "alice", "correct horse")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if registered.Token == "" {
		t.Fatalf("expected session token on registration")
	}
	if registered.User.Password == "correct horse" {
		t.Fatalf("account password must be stored hashed")
	}

	authed, err := s.Authenticate(ctx, "alice", "correct horse")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if authed.User.ID != registered.User.ID {
		t.Fatalf("expected same user, got %d vs %d", authed.User.ID, registered.User.ID)
	}
}

func TestRegisterUsernameTaken(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "pw-one"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Register(ctx, "alice", "pw-two"); !errors.Is(err, apperrors.ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestAuthenticateInvalidCredentials(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	if _, err := s.Register(ctx, "alice", "right"); err != nil {
		t.Fatalf("register: %v", err)
	}
	if _, err := s.Authenticate(ctx, "alice", "wrong"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for wrong password, got %v", err)
	}
	if _, err := s.Authenticate(ctx, "nobody", "right"); !errors.Is(err, apperrors.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown user, got %v", err)
	}
}

func TestUserFromToken(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	session, err := s.Register(ctx, "alice", "pw")
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	user, err := s.UserFromToken(ctx, session.Token)
	if err != nil {
		t.Fatalf("resolve token: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected alice, got %q", user.Username)
	}

	if _, err := s.UserFromToken(ctx, "not-a-token"); !errors.Is(err, apperrors.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for garbage token, got %v", err)
	}
}
