// Package mailer delivers transactional email through the Resend HTTP API.
package mailer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/headlessmarkets/site-backend/pkg/logger"
)

// Email is one outbound message. HTML-only; the site sends no plain-text mail.
type Email struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Client sends transactional email. Send returns the provider message id.
type Client interface {
	Send(ctx context.Context, email Email) (string, error)
}

type Config struct {
	APIKey     string
	BaseURL    string
	Timeout    time.Duration
	MaxRetries int
}

type client struct {
	log        *logger.Logger
	cfg        Config
	httpClient *http.Client
}

// New builds a Resend client. The API key is required; everything else has
// workable defaults.
func New(log *logger.Logger, cfg Config) (Client, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, errors.New("mailer: missing RESEND_API_KEY")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.resend.com"
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.Timeout <= 0 {
		cfg.Timeout = 15 * time.Second
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}
	return &client{
		log:        log.With("client", "resend"),
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

type sendResponse struct {
	ID string `json:"id"`
}

// HTTPError carries a non-2xx provider response.
type HTTPError struct {
	StatusCode int
	Body       string
}

func (e *HTTPError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		body = "<empty body>"
	}
	if len(body) > 2000 {
		body = body[:2000] + "..."
	}
	return fmt.Sprintf("resend http %d: %s", e.StatusCode, body)
}

func (c *client) Send(ctx context.Context, email Email) (string, error) {
	if email.From == "" {
		return "", errors.New("mailer: From is required")
	}
	if len(email.To) == 0 {
		return "", errors.New("mailer: To is required")
	}
	if email.Subject == "" {
		return "", errors.New("mailer: Subject is required")
	}

	payload := sendRequest{From: email.From, To: email.To, Subject: email.Subject, HTML: email.HTML}

	backoff := time.Second
	var lastErr error
	for attempt := 0; attempt <= c.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		id, err := c.sendOnce(ctx, payload)
		if err == nil {
			return id, nil
		}
		lastErr = err
		if !isRetryable(err) || attempt == c.cfg.MaxRetries {
			return "", err
		}
		c.log.Warn("email send retrying",
			"attempt", attempt+1,
			"max_retries", c.cfg.MaxRetries,
			"sleep", backoff.String(),
			"error", err.Error(),
		)
		select {
		case <-time.After(backoff):
		case <-ctx.Done():
			return "", ctx.Err()
		}
		backoff *= 2
	}
	return "", lastErr
}

func (c *client) sendOnce(ctx context.Context, payload sendRequest) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(payload); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.cfg.BaseURL+"/emails", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	raw, readErr := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if readErr != nil {
		return "", readErr
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &HTTPError{StatusCode: resp.StatusCode, Body: string(raw)}
	}
	var out sendResponse
	_ = json.Unmarshal(raw, &out)
	return out.ID, nil
}

func isRetryable(err error) bool {
	var he *HTTPError
	if errors.As(err, &he) {
		return he.StatusCode == http.StatusTooManyRequests || he.StatusCode >= 500
	}
	// Network-level failures are worth one more try.
	return !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded)
}
