package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/headlessmarkets/site-backend/pkg/consent"
)

// ConsentRepository stores cookie-consent decisions with attribution data.
type ConsentRepository struct {
	pool *pgxpool.Pool
}

func NewConsentRepository(pool *pgxpool.Pool) (*ConsentRepository, error) {
	r := &ConsentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ConsentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS cookie_consents (
	id UUID PRIMARY KEY,
	session_id TEXT NOT NULL,
	consent_given BOOLEAN NOT NULL,
	consent_type TEXT NOT NULL,
	fingerprint_hash TEXT NOT NULL DEFAULT '',
	user_agent TEXT NOT NULL DEFAULT '',
	referrer TEXT NOT NULL DEFAULT '',
	landing_page TEXT NOT NULL DEFAULT '',
	utm_source TEXT NOT NULL DEFAULT '',
	utm_medium TEXT NOT NULL DEFAULT '',
	utm_campaign TEXT NOT NULL DEFAULT '',
	utm_term TEXT NOT NULL DEFAULT '',
	utm_content TEXT NOT NULL DEFAULT '',
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_cookie_consents_session ON cookie_consents (session_id);
`)
	return err
}

func (r *ConsentRepository) Record(ctx context.Context, rec consent.Record) (uuid.UUID, error) {
	if rec.ID == uuid.Nil {
		rec.ID = uuid.New()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO cookie_consents (id, session_id, consent_given, consent_type, fingerprint_hash, user_agent,
	referrer, landing_page, utm_source, utm_medium, utm_campaign, utm_term, utm_content, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
`, rec.ID, rec.SessionID, rec.ConsentGiven, rec.ConsentType, rec.FingerprintHash, rec.UserAgent,
		rec.Referrer, rec.LandingPage, rec.UTMSource, rec.UTMMedium, rec.UTMCampaign, rec.UTMTerm, rec.UTMContent, rec.CreatedAt)
	if err != nil {
		return uuid.Nil, err
	}
	return rec.ID, nil
}
