package admin

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type fakeTokens struct {
	token string
	err   error

	subject string
	isAdmin bool
}

func (f *fakeTokens) Generate(_ context.Context, subject string, isAdmin bool) (string, error) {
	f.subject = subject
	f.isAdmin = isAdmin
	return f.token, f.err
}

func TestLogin(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("correct password yields an admin token", func(t *testing.T) {
		tokens := &fakeTokens{token: "jwt-abc"}
		svc := NewService(string(hash), tokens)

		res, err := svc.Login(context.Background(), "hunter2")
		require.NoError(t, err)
		assert.Equal(t, "jwt-abc", res.Token)
		assert.Equal(t, "admin", tokens.subject)
		assert.True(t, tokens.isAdmin)
	})

	t.Run("wrong password is rejected", func(t *testing.T) {
		svc := NewService(string(hash), &fakeTokens{token: "jwt-abc"})
		_, err := svc.Login(context.Background(), "letmein")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("empty password is rejected", func(t *testing.T) {
		svc := NewService(string(hash), &fakeTokens{})
		_, err := svc.Login(context.Background(), "")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("unset hash disables login entirely", func(t *testing.T) {
		svc := NewService("", &fakeTokens{})
		_, err := svc.Login(context.Background(), "hunter2")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("token generation failure propagates", func(t *testing.T) {
		svc := NewService(string(hash), &fakeTokens{err: errors.New("boom")})
		_, err := svc.Login(context.Background(), "hunter2")
		assert.EqualError(t, err, "boom")
	})
}
