package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/headlessmarkets/site-backend/pkg/access"
)

// AccessRepository stores gated-content access requests. The deck and investor
// audiences share the implementation and differ only in table name.
type AccessRepository struct {
	pool  *pgxpool.Pool
	table string
}

func NewDeckAccessRepository(pool *pgxpool.Pool) (*AccessRepository, error) {
	return newAccessRepository(pool, "deck_access")
}

func NewInvestorAccessRepository(pool *pgxpool.Pool) (*AccessRepository, error) {
	return newAccessRepository(pool, "investor_access")
}

func newAccessRepository(pool *pgxpool.Pool, table string) (*AccessRepository, error) {
	r := &AccessRepository{pool: pool, table: table}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AccessRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
CREATE TABLE IF NOT EXISTS %[1]s (
	id UUID PRIMARY KEY,
	email TEXT NOT NULL UNIQUE,
	first_name TEXT NOT NULL,
	last_name TEXT NOT NULL,
	company TEXT NOT NULL DEFAULT '',
	investment_size TEXT NOT NULL,
	status TEXT NOT NULL,
	verification_token TEXT NOT NULL DEFAULT '',
	verification_sent_at TIMESTAMPTZ NOT NULL,
	verified_at TIMESTAMPTZ,
	view_count INT NOT NULL DEFAULT 0,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_%[1]s_token ON %[1]s (verification_token);
`, r.table))
	return err
}

func (r *AccessRepository) GetByEmail(ctx context.Context, email string) (access.Access, error) {
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
SELECT id, email, first_name, last_name, company, investment_size, status,
	verification_token, verification_sent_at, verified_at, view_count, created_at
FROM %s WHERE email = $1
`, r.table), email)
	return scanAccess(row)
}

// Upsert replaces any existing pending record for the email with the new
// request and verification token.
func (r *AccessRepository) Upsert(ctx context.Context, a access.Access) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.CreatedAt.IsZero() {
		a.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
INSERT INTO %s (id, email, first_name, last_name, company, investment_size, status,
	verification_token, verification_sent_at, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
ON CONFLICT (email) DO UPDATE SET
	first_name = EXCLUDED.first_name,
	last_name = EXCLUDED.last_name,
	company = EXCLUDED.company,
	investment_size = EXCLUDED.investment_size,
	status = EXCLUDED.status,
	verification_token = EXCLUDED.verification_token,
	verification_sent_at = EXCLUDED.verification_sent_at
`, r.table), a.ID, a.Email, a.FirstName, a.LastName, a.Company, a.InvestmentSize, a.Status,
		a.VerificationToken, a.VerificationSentAt, a.CreatedAt)
	return err
}

// VerifyToken consumes a still-valid token: the row transitions to verified
// and the token is cleared, so a second call with the same token fails.
func (r *AccessRepository) VerifyToken(ctx context.Context, token string, maxAge time.Duration) (access.Access, error) {
	cutoff := time.Now().UTC().Add(-maxAge)
	row := r.pool.QueryRow(ctx, fmt.Sprintf(`
UPDATE %s
SET status = $2, verified_at = now(), verification_token = ''
WHERE verification_token = $1
	AND verification_token != ''
	AND status = $3
	AND verification_sent_at >= $4
RETURNING id, email, first_name, last_name, company, investment_size, status,
	verification_token, verification_sent_at, verified_at, view_count, created_at
`, r.table), token, access.StatusVerified, access.StatusPendingVerification, cutoff)
	return scanAccess(row)
}

func (r *AccessRepository) TrackView(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, fmt.Sprintf(`
UPDATE %s SET view_count = view_count + 1 WHERE email = $1
`, r.table), email)
	return err
}

func (r *AccessRepository) List(ctx context.Context, limit, offset int) ([]access.Access, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, fmt.Sprintf(`
SELECT id, email, first_name, last_name, company, investment_size, status,
	verification_token, verification_sent_at, verified_at, view_count, created_at
FROM %s
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, r.table), limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []access.Access
	for rows.Next() {
		a, err := scanAccess(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}

func scanAccess(row pgx.Row) (access.Access, error) {
	var a access.Access
	var sentAt, createdAt time.Time
	var verifiedAt *time.Time
	if err := row.Scan(&a.ID, &a.Email, &a.FirstName, &a.LastName, &a.Company, &a.InvestmentSize,
		&a.Status, &a.VerificationToken, &sentAt, &verifiedAt, &a.ViewCount, &createdAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return access.Access{}, access.ErrNotFound
		}
		return access.Access{}, err
	}
	a.VerificationSentAt = sentAt.UTC()
	a.CreatedAt = createdAt.UTC()
	if verifiedAt != nil {
		t := verifiedAt.UTC()
		a.VerifiedAt = &t
	}
	return a, nil
}
