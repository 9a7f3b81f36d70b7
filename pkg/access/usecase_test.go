package access

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlessmarkets/site-backend/pkg/logger"
	"github.com/headlessmarkets/site-backend/pkg/mailer"
)

type fakeRepo struct {
	byEmail    map[string]Access
	upserted   []Access
	upsertErr  error
	viewsByKey map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{byEmail: map[string]Access{}, viewsByKey: map[string]int{}}
}

func (f *fakeRepo) GetByEmail(_ context.Context, email string) (Access, error) {
	a, ok := f.byEmail[email]
	if !ok {
		return Access{}, ErrNotFound
	}
	return a, nil
}

func (f *fakeRepo) Upsert(_ context.Context, a Access) error {
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserted = append(f.upserted, a)
	f.byEmail[a.Email] = a
	return nil
}

func (f *fakeRepo) VerifyToken(_ context.Context, token string, maxAge time.Duration) (Access, error) {
	for email, a := range f.byEmail {
		if a.VerificationToken == token && a.Status == StatusPendingVerification &&
			time.Since(a.VerificationSentAt) <= maxAge {
			a.Status = StatusVerified
			f.byEmail[email] = a
			return a, nil
		}
	}
	return Access{}, ErrNotFound
}

func (f *fakeRepo) TrackView(_ context.Context, email string) error {
	f.viewsByKey[email]++
	return nil
}

func (f *fakeRepo) List(_ context.Context, _, _ int) ([]Access, error) { return nil, nil }

type fakeMailer struct {
	sent []mailer.Email
	err  error
}

func (f *fakeMailer) Send(_ context.Context, email mailer.Email) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.sent = append(f.sent, email)
	return "msg-1", nil
}

func testOptions() Options {
	return Options{
		AppURL:      "https://headlessmarket.xyz",
		FromAddress: "Headless Markets <noreply@headlessmarket.xyz>",
		VerifyPath:  "/pitchdeck/verify",
		Subject:     "{firstName}, verify to view the Headless Markets Pitch Deck",
		Tagline:     "Agents form businesses. Humans trade what they like.",
	}
}

func validInput() RequestInput {
	return RequestInput{
		Email:          "Jordan@Example.com",
		FirstName:      "Jordan",
		LastName:       "Li",
		InvestmentSize: "25k_50k",
	}
}

func TestRequestAccessValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeMailer{}, testOptions(), logger.NewNop())

	t.Run("requires all mandatory fields", func(t *testing.T) {
		in := validInput()
		in.LastName = ""
		_, err := svc.RequestAccess(context.Background(), in)
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Missing required fields", verr.Error())
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		in := validInput()
		in.Email = "not-an-email"
		_, err := svc.RequestAccess(context.Background(), in)
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid email format", verr.Error())
	})

	t.Run("rejects unknown investment size", func(t *testing.T) {
		in := validInput()
		in.InvestmentSize = "1_billion"
		_, err := svc.RequestAccess(context.Background(), in)
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Invalid investment size", verr.Error())
	})
}

func TestRequestAccessFlow(t *testing.T) {
	t.Run("stores pending record and emails a verify link", func(t *testing.T) {
		repo := newFakeRepo()
		mail := &fakeMailer{}
		svc := NewService(repo, mail, testOptions(), logger.NewNop())

		out, err := svc.RequestAccess(context.Background(), validInput())
		require.NoError(t, err)
		assert.False(t, out.AlreadyVerified)
		assert.Contains(t, out.Message, "Verification email sent")

		require.Len(t, repo.upserted, 1)
		stored := repo.upserted[0]
		assert.Equal(t, "jordan@example.com", stored.Email)
		assert.Equal(t, StatusPendingVerification, stored.Status)
		assert.Len(t, stored.VerificationToken, 64)
		assert.Regexp(t, `^[A-Za-z0-9]{64}$`, stored.VerificationToken)

		require.Len(t, mail.sent, 1)
		assert.Equal(t, []string{"jordan@example.com"}, mail.sent[0].To)
		assert.Equal(t, "Jordan, verify to view the Headless Markets Pitch Deck", mail.sent[0].Subject)
		assert.Contains(t, mail.sent[0].HTML, "/pitchdeck/verify?token="+stored.VerificationToken)
	})

	t.Run("short-circuits when already verified", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byEmail["jordan@example.com"] = Access{Email: "jordan@example.com", Status: StatusVerified}
		mail := &fakeMailer{}
		svc := NewService(repo, mail, testOptions(), logger.NewNop())

		out, err := svc.RequestAccess(context.Background(), validInput())
		require.NoError(t, err)
		assert.True(t, out.AlreadyVerified)
		assert.Empty(t, mail.sent)
	})

	t.Run("cc address gets a copy", func(t *testing.T) {
		opts := testOptions()
		opts.CCAddress = "founders@headlessmarket.xyz"
		mail := &fakeMailer{}
		svc := NewService(newFakeRepo(), mail, opts, logger.NewNop())

		_, err := svc.RequestAccess(context.Background(), validInput())
		require.NoError(t, err)
		require.Len(t, mail.sent, 1)
		assert.Equal(t, []string{"jordan@example.com", "founders@headlessmarket.xyz"}, mail.sent[0].To)
	})

	t.Run("email provider failure surfaces as delivery error", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeMailer{err: errors.New("provider down")}, testOptions(), logger.NewNop())
		_, err := svc.RequestAccess(context.Background(), validInput())
		assert.ErrorIs(t, err, ErrEmailDelivery)
	})
}

func TestVerify(t *testing.T) {
	t.Run("requires a token", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeMailer{}, testOptions(), logger.NewNop())
		_, err := svc.Verify(context.Background(), "")
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Missing verification token", verr.Error())
	})

	t.Run("consumes a pending token", func(t *testing.T) {
		repo := newFakeRepo()
		mail := &fakeMailer{}
		svc := NewService(repo, mail, testOptions(), logger.NewNop())
		_, err := svc.RequestAccess(context.Background(), validInput())
		require.NoError(t, err)

		id, err := svc.Verify(context.Background(), repo.upserted[0].VerificationToken)
		require.NoError(t, err)
		assert.Equal(t, "jordan@example.com", id.Email)
		assert.Equal(t, "Jordan", id.FirstName)
		assert.Equal(t, "Li", id.LastName)
	})

	t.Run("unknown token is rejected", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeMailer{}, testOptions(), logger.NewNop())
		_, err := svc.Verify(context.Background(), "nope")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestCheckAccess(t *testing.T) {
	t.Run("requires an email", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeMailer{}, testOptions(), logger.NewNop())
		_, err := svc.CheckAccess(context.Background(), "")
		var verr ErrValidation
		assert.ErrorAs(t, err, &verr)
	})

	t.Run("unknown email has no access", func(t *testing.T) {
		svc := NewService(newFakeRepo(), &fakeMailer{}, testOptions(), logger.NewNop())
		res, err := svc.CheckAccess(context.Background(), "ghost@example.com")
		require.NoError(t, err)
		assert.False(t, res.HasAccess)
	})

	t.Run("verified email has access and gets a view tracked", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byEmail["jordan@example.com"] = Access{
			Email: "jordan@example.com", FirstName: "Jordan", Status: StatusVerified,
		}
		svc := NewService(repo, &fakeMailer{}, testOptions(), logger.NewNop())
		res, err := svc.CheckAccess(context.Background(), "Jordan@Example.com")
		require.NoError(t, err)
		assert.True(t, res.HasAccess)
		assert.Equal(t, "Jordan", res.FirstName)
		assert.Equal(t, 1, repo.viewsByKey["jordan@example.com"])
	})

	t.Run("pending email has no access yet", func(t *testing.T) {
		repo := newFakeRepo()
		repo.byEmail["jordan@example.com"] = Access{
			Email: "jordan@example.com", FirstName: "Jordan", Status: StatusPendingVerification,
		}
		svc := NewService(repo, &fakeMailer{}, testOptions(), logger.NewNop())
		res, err := svc.CheckAccess(context.Background(), "jordan@example.com")
		require.NoError(t, err)
		assert.False(t, res.HasAccess)
		assert.Empty(t, repo.viewsByKey)
	})
}

func TestNewToken(t *testing.T) {
	a, err := newToken()
	require.NoError(t, err)
	b, err := newToken()
	require.NoError(t, err)
	assert.Len(t, a, 64)
	assert.Regexp(t, `^[A-Za-z0-9]{64}$`, a)
	assert.NotEqual(t, a, b)
}
