package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/headlessmarkets/site-backend/pkg/waitlist"
)

// WaitlistRepository stores launch-notification signups, one row per email.
type WaitlistRepository struct {
	pool *pgxpool.Pool
}

func NewWaitlistRepository(pool *pgxpool.Pool) (*WaitlistRepository, error) {
	r := &WaitlistRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *WaitlistRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS waitlist (
	email TEXT PRIMARY KEY,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
`)
	return err
}

func (r *WaitlistRepository) Subscribe(ctx context.Context, email string) error {
	_, err := r.pool.Exec(ctx, `
INSERT INTO waitlist (email) VALUES ($1)
ON CONFLICT (email) DO NOTHING
`, email)
	return err
}

func (r *WaitlistRepository) List(ctx context.Context, limit, offset int) ([]waitlist.Subscriber, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT email, created_at FROM waitlist
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []waitlist.Subscriber
	for rows.Next() {
		var s waitlist.Subscriber
		var created time.Time
		if err := rows.Scan(&s.Email, &created); err != nil {
			return nil, err
		}
		s.CreatedAt = created.UTC()
		res = append(res, s)
	}
	return res, rows.Err()
}
