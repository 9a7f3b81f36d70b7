package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/headlessmarkets/site-backend/pkg/interest"
)

type stubInterestUseCase struct {
	result interest.SubmitResult
	err    error

	gotReq interest.SubmitRequest
}

func (s *stubInterestUseCase) Submit(_ context.Context, req interest.SubmitRequest) (interest.SubmitResult, error) {
	s.gotReq = req
	return s.result, s.err
}

func (s *stubInterestUseCase) List(_ context.Context, _, _ int) ([]interest.Interest, error) {
	return nil, nil
}

func newInterestApp(uc interest.UseCase) *fiber.App {
	app := fiber.New()
	h := NewInterestHandler(uc)
	app.Get("/api/v1/agent-interest", h.Describe)
	app.Post("/api/v1/agent-interest", h.Submit)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string, headers map[string]string) (*http.Response, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestInterestSubmitHandler(t *testing.T) {
	t.Run("successful submission returns 201 with match info", func(t *testing.T) {
		uc := &stubInterestUseCase{result: interest.SubmitResult{
			InterestID:   "id-1",
			MatchedCount: 2,
			NextSteps:    []string{"step one"},
			Message:      "Interest registered! Found 2 potential match(es).",
		}}
		app := newInterestApp(uc)

		resp, body := postJSON(t, app, "/api/v1/agent-interest",
			`{"moltbook_handle":"@bot","skills":["copy"],"description":"I write copy for protocols"}`,
			map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1", "User-Agent": "curl/8"})

		assert.Equal(t, http.StatusCreated, resp.StatusCode)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "id-1", body["interest_id"])
		assert.Equal(t, float64(2), body["matched_count"])
		assert.Equal(t, "Interest registered! Found 2 potential match(es).", body["message"])

		// Transport metadata flows into the use case.
		assert.Equal(t, "203.0.113.9", uc.gotReq.ClientIP)
		assert.Equal(t, "curl/8", uc.gotReq.UserAgent)
		assert.Equal(t, "@bot", uc.gotReq.MoltbookHandle)
	})

	t.Run("x-real-ip is the fallback and unknown the last resort", func(t *testing.T) {
		uc := &stubInterestUseCase{result: interest.SubmitResult{InterestID: "id-2"}}
		app := newInterestApp(uc)

		_, _ = postJSON(t, app, "/api/v1/agent-interest",
			`{"skills":["copy"],"description":"long enough text"}`,
			map[string]string{"X-Real-Ip": "198.51.100.7"})
		assert.Equal(t, "198.51.100.7", uc.gotReq.ClientIP)

		_, _ = postJSON(t, app, "/api/v1/agent-interest",
			`{"skills":["copy"],"description":"long enough text"}`, nil)
		assert.Equal(t, "unknown", uc.gotReq.ClientIP)
	})

	t.Run("validation failure returns 400 with the error field", func(t *testing.T) {
		uc := &stubInterestUseCase{err: interest.ErrValidation("skills array is required and must not be empty")}
		app := newInterestApp(uc)

		resp, body := postJSON(t, app, "/api/v1/agent-interest", `{"description":"long enough text"}`, nil)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "skills array is required and must not be empty", body["error"])
	})

	t.Run("rate limit returns 429", func(t *testing.T) {
		uc := &stubInterestUseCase{err: interest.ErrRateLimited}
		app := newInterestApp(uc)

		resp, body := postJSON(t, app, "/api/v1/agent-interest",
			`{"skills":["copy"],"description":"long enough text"}`, nil)
		assert.Equal(t, http.StatusTooManyRequests, resp.StatusCode)
		assert.Equal(t, "Rate limited. Max 10 submissions per hour.", body["error"])
	})

	t.Run("unexpected failure returns 500", func(t *testing.T) {
		uc := &stubInterestUseCase{err: io.ErrUnexpectedEOF}
		app := newInterestApp(uc)

		resp, body := postJSON(t, app, "/api/v1/agent-interest",
			`{"skills":["copy"],"description":"long enough text"}`, nil)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Failed to process interest submission", body["error"])
	})
}

func TestInterestDescribeHandler(t *testing.T) {
	app := newInterestApp(&stubInterestUseCase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/agent-interest", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))

	assert.Equal(t, "/api/v1/agent-interest", body["endpoint"])
	assert.Equal(t, "POST", body["method"])
	assert.Equal(t, "/llms.txt", body["more_info"])

	cats, ok := body["skill_categories"].(map[string]any)
	require.True(t, ok)
	assert.Len(t, cats, 12)

	total, ok := body["total_skills"].(float64)
	require.True(t, ok)
	assert.Greater(t, total, float64(60))
}
