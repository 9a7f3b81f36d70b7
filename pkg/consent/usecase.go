// Package consent tracks cookie-consent decisions with marketing attribution.
package consent

import (
	"context"

	"github.com/google/uuid"

	"github.com/headlessmarkets/site-backend/pkg/logger"
)

const defaultConsentType = "analytics"

// ErrValidation is a client-input error safe to show to the caller.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// UseCase records consent decisions.
type UseCase interface {
	Record(ctx context.Context, rec Record) (uuid.UUID, bool, error)
}

type service struct {
	repo Repository
	log  *logger.Logger
}

func NewService(repo Repository, log *logger.Logger) UseCase {
	return &service{repo: repo, log: log.With("usecase", "consent")}
}

// Record validates and persists one consent decision. The bool result reports
// whether an id was actually stored: persistence failures are logged and
// swallowed so the consent banner never breaks the page.
func (s *service) Record(ctx context.Context, rec Record) (uuid.UUID, bool, error) {
	if rec.SessionID == "" {
		return uuid.Nil, false, ErrValidation("Session ID is required")
	}
	if rec.ConsentType == "" {
		rec.ConsentType = defaultConsentType
	}

	id, err := s.repo.Record(ctx, rec)
	if err != nil {
		s.log.Error("consent store failed", "session", rec.SessionID, "error", err)
		return uuid.Nil, false, nil
	}
	return id, true, nil
}
