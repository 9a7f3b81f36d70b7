// Package admin gates the operator-only listing endpoints behind a single
// shared credential.
package admin

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned for any login failure.
var ErrInvalidCredentials = errors.New("invalid credentials")

// TokenGenerator issues a session token for an authenticated operator.
type TokenGenerator interface {
	Generate(ctx context.Context, subject string, isAdmin bool) (string, error)
}

// AuthResult is a successful login.
type AuthResult struct {
	Token string
}

// UseCase describes operator authentication behavior.
type UseCase interface {
	Login(ctx context.Context, password string) (AuthResult, error)
}

type service struct {
	passwordHash []byte
	tokens       TokenGenerator
}

// NewService returns the default implementation of UseCase. passwordHash is a
// bcrypt hash of the shared operator password.
func NewService(passwordHash string, tokens TokenGenerator) UseCase {
	return &service{passwordHash: []byte(passwordHash), tokens: tokens}
}

func (s *service) Login(ctx context.Context, password string) (AuthResult, error) {
	if password == "" || len(s.passwordHash) == 0 {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword(s.passwordHash, []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(ctx, "admin", true)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{Token: token}, nil
}
