package waitlist

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlessmarkets/site-backend/pkg/logger"
)

type fakeRepo struct {
	emails []string
	err    error
}

func (f *fakeRepo) Subscribe(_ context.Context, email string) error {
	if f.err != nil {
		return f.err
	}
	f.emails = append(f.emails, email)
	return nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]Subscriber, error) { return nil, nil }

func TestSubscribe(t *testing.T) {
	t.Run("accepts valid addresses and lowercases them", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, logger.NewNop())
		msg, err := svc.Subscribe(context.Background(), "User.Name@Example.COM")
		require.NoError(t, err)
		assert.NotEmpty(t, msg)
		assert.Equal(t, []string{"user.name@example.com"}, repo.emails)
	})

	t.Run("rejects malformed addresses", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, logger.NewNop())
		for _, email := range []string{
			"notanemail", "missing@tld", "@nodomain.com", "spaces in@email.com",
			"no@dots", "trailing@dot.",
		} {
			_, err := svc.Subscribe(context.Background(), email)
			var verr ErrInvalidEmail
			assert.ErrorAs(t, err, &verr, "email %q", email)
		}
	})

	t.Run("requires an email", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, logger.NewNop())
		_, err := svc.Subscribe(context.Background(), "  ")
		var verr ErrInvalidEmail
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Email is required", verr.Error())
	})

	t.Run("storage failure still reads as success", func(t *testing.T) {
		repo := &fakeRepo{err: errors.New("db down")}
		svc := NewService(repo, logger.NewNop())
		msg, err := svc.Subscribe(context.Background(), "a@b.co")
		require.NoError(t, err)
		assert.Contains(t, msg, "Thanks for subscribing")
	})
}
