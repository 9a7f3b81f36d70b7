package consent

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlessmarkets/site-backend/pkg/logger"
)

type fakeRepo struct {
	last Record
	err  error
}

func (f *fakeRepo) Record(_ context.Context, rec Record) (uuid.UUID, error) {
	if f.err != nil {
		return uuid.Nil, f.err
	}
	f.last = rec
	return uuid.New(), nil
}

func TestRecord(t *testing.T) {
	t.Run("requires a session id", func(t *testing.T) {
		svc := NewService(&fakeRepo{}, logger.NewNop())
		_, _, err := svc.Record(context.Background(), Record{ConsentGiven: true})
		var verr ErrValidation
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "Session ID is required", verr.Error())
	})

	t.Run("defaults consent type to analytics", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, logger.NewNop())
		id, stored, err := svc.Record(context.Background(), Record{SessionID: "sess-1", ConsentGiven: true})
		require.NoError(t, err)
		assert.True(t, stored)
		assert.NotEqual(t, uuid.Nil, id)
		assert.Equal(t, "analytics", repo.last.ConsentType)
	})

	t.Run("keeps attribution fields", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, logger.NewNop())
		_, _, err := svc.Record(context.Background(), Record{
			SessionID:   "sess-2",
			ConsentType: "marketing",
			UTMSource:   "moltbook",
			UTMCampaign: "launch",
			LandingPage: "/invest",
		})
		require.NoError(t, err)
		assert.Equal(t, "marketing", repo.last.ConsentType)
		assert.Equal(t, "moltbook", repo.last.UTMSource)
		assert.Equal(t, "launch", repo.last.UTMCampaign)
		assert.Equal(t, "/invest", repo.last.LandingPage)
	})

	t.Run("storage failure is swallowed", func(t *testing.T) {
		svc := NewService(&fakeRepo{err: errors.New("db down")}, logger.NewNop())
		id, stored, err := svc.Record(context.Background(), Record{SessionID: "sess-3"})
		require.NoError(t, err)
		assert.False(t, stored)
		assert.Equal(t, uuid.Nil, id)
	})
}
