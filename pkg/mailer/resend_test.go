package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlessmarkets/site-backend/pkg/logger"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c, err := New(logger.NewNop(), Config{APIKey: "re_test", BaseURL: srv.URL, Timeout: 2 * time.Second, MaxRetries: 2})
	require.NoError(t, err)
	return c
}

func testEmail() Email {
	return Email{
		From:    "Headless Markets <noreply@headlessmarket.xyz>",
		To:      []string{"agent@example.com"},
		Subject: "Verify your email",
		HTML:    "<p>hello</p>",
	}
}

func TestNew(t *testing.T) {
	t.Run("requires an api key", func(t *testing.T) {
		_, err := New(logger.NewNop(), Config{})
		assert.Error(t, err)
	})
}

func TestSend(t *testing.T) {
	t.Run("posts the payload with bearer auth", func(t *testing.T) {
		var gotAuth string
		var gotBody sendRequest
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			require.Equal(t, "/emails", r.URL.Path)
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
			_ = json.NewEncoder(w).Encode(sendResponse{ID: "msg-123"})
		})

		id, err := c.Send(context.Background(), testEmail())
		require.NoError(t, err)
		assert.Equal(t, "msg-123", id)
		assert.Equal(t, "Bearer re_test", gotAuth)
		assert.Equal(t, []string{"agent@example.com"}, gotBody.To)
	})

	t.Run("rejects incomplete emails before any request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Fatal("no request expected")
		})
		e := testEmail()
		e.To = nil
		_, err := c.Send(context.Background(), e)
		assert.Error(t, err)
	})

	t.Run("retries 429 then succeeds", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if calls.Add(1) == 1 {
				w.WriteHeader(http.StatusTooManyRequests)
				return
			}
			_ = json.NewEncoder(w).Encode(sendResponse{ID: "msg-2"})
		})

		id, err := c.Send(context.Background(), testEmail())
		require.NoError(t, err)
		assert.Equal(t, "msg-2", id)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusUnprocessableEntity)
			_, _ = w.Write([]byte(`{"message":"invalid from"}`))
		})

		_, err := c.Send(context.Background(), testEmail())
		require.Error(t, err)
		var he *HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnprocessableEntity, he.StatusCode)
		assert.Equal(t, int32(1), calls.Load())
	})

	t.Run("gives up after max retries on server errors", func(t *testing.T) {
		var calls atomic.Int32
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			calls.Add(1)
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := c.Send(context.Background(), testEmail())
		require.Error(t, err)
		assert.Equal(t, int32(3), calls.Load())
	})
}
