// Package auth implements the session collaborator: registration, login,
// and token resolution for record ownership.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/credstack/credstack/internal/apperrors"
	"github.com/credstack/credstack/internal/config"
	"github.com/credstack/credstack/internal/models"
	"github.com/credstack/credstack/internal/security"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// pgUniqueViolation is the PostgreSQL error code for unique constraint hits.
const pgUniqueViolation = "23505"

// Session pairs an issued token with its user.
type Session struct {
	Token string
	User  models.User
}

// Service authenticates users against the database and issues JWTs.
type Service struct {
	db     *gorm.DB
	jwtCfg config.JWTConfig
}

// NewService constructs a Service.
func NewService(db *gorm.DB, jwtCfg config.JWTConfig) *Service {
	return &Service{db: db, jwtCfg: jwtCfg}
}

// Register creates an account and returns a fresh session. A username
// already in use fails with apperrors.ErrUsernameTaken.
func (s *Service) Register(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, apperrors.ErrInvalidCredentials
	}

	hash, errHash := security.HashPassword(password)
	if errHash != nil {
		return nil, errHash
	}

	user := models.User{
		Username: username,
		Password: hash,
		Active:   true,
	}
	if errCreate := s.db.WithContext(ctx).Create(&user).Error; errCreate != nil {
		if isUniqueViolation(errCreate) {
			return nil, apperrors.ErrUsernameTaken
		}
		return nil, fmt.Errorf("auth: create user: %w: %v", apperrors.ErrTransport, errCreate)
	}

	return s.session(user)
}

// Authenticate checks a username/password pair and returns a session.
func (s *Service) Authenticate(ctx context.Context, username, password string) (*Session, error) {
	username = strings.TrimSpace(username)

	var user models.User
	errFind := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error
	if errFind != nil {
		if errors.Is(errFind, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("auth: find user: %w: %v", apperrors.ErrTransport, errFind)
	}
	if !user.Active {
		return nil, apperrors.ErrInvalidCredentials
	}
	if !security.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.session(user)
}

// UserFromToken resolves a bearer token to its active user.
func (s *Service) UserFromToken(ctx context.Context, token string) (*models.User, error) {
	claims, errParse := security.ParseUserToken(s.jwtCfg.Secret, token)
	if errParse != nil {
		return nil, apperrors.ErrUnauthorized
	}

	var user models.User
	if errFind := s.db.WithContext(ctx).First(&user, claims.UserID).Error; errFind != nil {
		return nil, apperrors.ErrUnauthorized
	}
	if !user.Active {
		return nil, apperrors.ErrUnauthorized
	}
	return &user, nil
}

// session issues a signed token for the user.
func (s *Service) session(user models.User) (*Session, error) {
	token, errSign := security.SignUserToken(s.jwtCfg.Secret, s.jwtCfg.Expiry, user.ID, user.Username)
	if errSign != nil {
		return nil, errSign
	}
	return &Session{Token: token, User: user}, nil
}

// isUniqueViolation reports whether the database rejected a duplicate key.
// Postgres reports a typed error code; the SQLite driver only exposes the
// constraint message.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	return strings.Contains(strings.ToUpper(err.Error()), "UNIQUE")
}
