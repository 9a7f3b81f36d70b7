package access

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status of one access request.
type Status string

const (
	StatusPendingVerification Status = "pending_verification"
	StatusVerified            Status = "verified"
)

// InvestmentSizes is the closed set of accepted ticket ranges.
var InvestmentSizes = []string{
	"under_25k",
	"25k_50k",
	"50k_100k",
	"100k_250k",
	"250k_500k",
	"500k_plus",
}

// Access is one gated-content access request, keyed by lowercase email.
type Access struct {
	ID                 uuid.UUID  `json:"id"`
	Email              string     `json:"email"`
	FirstName          string     `json:"firstName"`
	LastName           string     `json:"lastName"`
	Company            string     `json:"company,omitempty"`
	InvestmentSize     string     `json:"investmentSize"`
	Status             Status     `json:"status"`
	VerificationToken  string     `json:"-"`
	VerificationSentAt time.Time  `json:"verificationSentAt"`
	VerifiedAt         *time.Time `json:"verifiedAt,omitempty"`
	ViewCount          int        `json:"viewCount"`
	CreatedAt          time.Time  `json:"createdAt"`
}

// ErrNotFound is returned when no record exists for an email or token.
var ErrNotFound = errors.New("access record not found")

// Repository persists access requests. Upsert replaces any pending record for
// the same email; VerifyToken consumes a still-valid token, transitioning the
// record to verified.
type Repository interface {
	GetByEmail(ctx context.Context, email string) (Access, error)
	Upsert(ctx context.Context, a Access) error
	VerifyToken(ctx context.Context, token string, maxAge time.Duration) (Access, error)
	TrackView(ctx context.Context, email string) error
	List(ctx context.Context, limit, offset int) ([]Access, error)
}
