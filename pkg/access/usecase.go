// Package access implements the email-verification gate in front of the pitch
// deck and investor materials. Two audiences share the flow; each gets its own
// repository table and verify link.
package access

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/headlessmarkets/site-backend/pkg/logger"
	"github.com/headlessmarkets/site-backend/pkg/mailer"
)

const verificationTTL = 24 * time.Hour

var reEmail = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ErrValidation is a client-input error safe to show to the caller.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// ErrInvalidToken covers unknown, consumed and expired verification tokens.
var ErrInvalidToken = errors.New("invalid or expired verification token")

// ErrEmailDelivery marks a failure in the email provider, after the access
// record was already stored.
var ErrEmailDelivery = errors.New("failed to send verification email")

// Options configure one audience of the flow.
type Options struct {
	AppURL      string
	FromAddress string
	CCAddress   string
	VerifyPath  string // e.g. "/pitchdeck/verify"
	Subject     string // "{firstName}" is replaced with the requester's name
	Tagline     string // email footer line
}

type RequestInput struct {
	Email          string
	FirstName      string
	LastName       string
	Company        string
	InvestmentSize string
}

type RequestOutcome struct {
	AlreadyVerified bool
	Message         string
}

type VerifiedIdentity struct {
	Email     string
	FirstName string
	LastName  string
}

type CheckResult struct {
	HasAccess bool
	FirstName string
}

// UseCase is the gated-access flow for one audience.
type UseCase interface {
	RequestAccess(ctx context.Context, in RequestInput) (RequestOutcome, error)
	Verify(ctx context.Context, token string) (VerifiedIdentity, error)
	CheckAccess(ctx context.Context, email string) (CheckResult, error)
	List(ctx context.Context, limit, offset int) ([]Access, error)
}

type service struct {
	repo Repository
	mail mailer.Client
	opts Options
	log  *logger.Logger
}

func NewService(repo Repository, mail mailer.Client, opts Options, log *logger.Logger) UseCase {
	return &service{repo: repo, mail: mail, opts: opts, log: log.With("usecase", "access", "verify_path", opts.VerifyPath)}
}

func (s *service) RequestAccess(ctx context.Context, in RequestInput) (RequestOutcome, error) {
	if in.Email == "" || in.FirstName == "" || in.LastName == "" || in.InvestmentSize == "" {
		return RequestOutcome{}, ErrValidation("Missing required fields")
	}
	if !reEmail.MatchString(in.Email) {
		return RequestOutcome{}, ErrValidation("Invalid email format")
	}
	if !validInvestmentSize(in.InvestmentSize) {
		return RequestOutcome{}, ErrValidation("Invalid investment size")
	}

	email := strings.ToLower(in.Email)

	existing, err := s.repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, ErrNotFound) {
		s.log.Error("existing access lookup failed", "error", err)
	}
	if err == nil && existing.Status == StatusVerified {
		return RequestOutcome{AlreadyVerified: true, Message: "Already verified"}, nil
	}

	token, err := newToken()
	if err != nil {
		return RequestOutcome{}, fmt.Errorf("generate token: %w", err)
	}
	verifyURL := strings.TrimRight(s.opts.AppURL, "/") + s.opts.VerifyPath + "?token=" + token

	if err := s.repo.Upsert(ctx, Access{
		Email:              email,
		FirstName:          in.FirstName,
		LastName:           in.LastName,
		Company:            in.Company,
		InvestmentSize:     in.InvestmentSize,
		Status:             StatusPendingVerification,
		VerificationToken:  token,
		VerificationSentAt: time.Now().UTC(),
	}); err != nil {
		return RequestOutcome{}, fmt.Errorf("store access request: %w", err)
	}

	to := []string{email}
	if s.opts.CCAddress != "" {
		to = append(to, s.opts.CCAddress)
	}
	subject := strings.ReplaceAll(s.opts.Subject, "{firstName}", in.FirstName)
	if _, err := s.mail.Send(ctx, mailer.Email{
		From:    s.opts.FromAddress,
		To:      to,
		Subject: subject,
		HTML:    verificationEmailHTML(in.FirstName, verifyURL, s.opts.Tagline),
	}); err != nil {
		s.log.Error("verification email failed", "error", err)
		return RequestOutcome{}, ErrEmailDelivery
	}

	return RequestOutcome{Message: "Verification email sent. Please check your inbox."}, nil
}

func (s *service) Verify(ctx context.Context, token string) (VerifiedIdentity, error) {
	if token == "" {
		return VerifiedIdentity{}, ErrValidation("Missing verification token")
	}
	a, err := s.repo.VerifyToken(ctx, token, verificationTTL)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return VerifiedIdentity{}, ErrInvalidToken
		}
		return VerifiedIdentity{}, err
	}
	return VerifiedIdentity{Email: a.Email, FirstName: a.FirstName, LastName: a.LastName}, nil
}

func (s *service) CheckAccess(ctx context.Context, email string) (CheckResult, error) {
	if email == "" {
		return CheckResult{}, ErrValidation("Email is required")
	}
	a, err := s.repo.GetByEmail(ctx, strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return CheckResult{}, nil
		}
		return CheckResult{}, err
	}
	if a.Status != StatusVerified {
		return CheckResult{FirstName: a.FirstName}, nil
	}
	// View tracking is best effort.
	if err := s.repo.TrackView(ctx, a.Email); err != nil {
		s.log.Error("view tracking failed", "error", err)
	}
	return CheckResult{HasAccess: true, FirstName: a.FirstName}, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Access, error) {
	return s.repo.List(ctx, limit, offset)
}

func validInvestmentSize(size string) bool {
	for _, s := range InvestmentSizes {
		if s == size {
			return true
		}
	}
	return false
}
