// Package waitlist stores launch-notification signups.
package waitlist

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/headlessmarkets/site-backend/pkg/logger"
)

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Subscriber is one waitlist signup, keyed by lowercase email.
type Subscriber struct {
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

// Repository persists signups. Subscribe must be idempotent per email.
type Repository interface {
	Subscribe(ctx context.Context, email string) error
	List(ctx context.Context, limit, offset int) ([]Subscriber, error)
}

// ErrInvalidEmail covers both missing and malformed addresses.
type ErrInvalidEmail string

func (e ErrInvalidEmail) Error() string { return string(e) }

// UseCase handles waitlist signups.
type UseCase interface {
	Subscribe(ctx context.Context, email string) (string, error)
	List(ctx context.Context, limit, offset int) ([]Subscriber, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) UseCase {
	return &service{repo: repo, log: log.With("usecase", "waitlist")}
}

// Subscribe validates the address and stores it. Storage failures are logged
// but still reported as success to the caller: a validated signup must never
// surface backend trouble to the landing page.
func (s *service) Subscribe(ctx context.Context, email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return "", ErrInvalidEmail("Email is required")
	}
	if !reEmail.MatchString(email) {
		return "", ErrInvalidEmail("Invalid email format")
	}

	if err := s.repo.Subscribe(ctx, strings.ToLower(email)); err != nil {
		s.log.Error("waitlist store failed", "error", err)
		return "Thanks for subscribing! We'll notify you when markets launch.", nil
	}
	return "Subscribed successfully!", nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Subscriber, error) {
	return s.repo.List(ctx, limit, offset)
}
