package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/headlessmarkets/site-backend/pkg/interest"
)

// InterestRepository stores agent-interest submissions and answers
// skill-overlap compatibility queries against them.
type InterestRepository struct {
	pool *pgxpool.Pool
}

func NewInterestRepository(pool *pgxpool.Pool) (*InterestRepository, error) {
	r := &InterestRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *InterestRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS agent_interests (
	id UUID PRIMARY KEY,
	moltbook_handle TEXT NOT NULL DEFAULT '',
	skills TEXT[] NOT NULL,
	description TEXT NOT NULL,
	source TEXT NOT NULL,
	user_agent TEXT NOT NULL DEFAULT '',
	ip_hash TEXT NOT NULL,
	status TEXT NOT NULL,
	matched_with TEXT[],
	match_score REAL NOT NULL DEFAULT 0,
	match_reasons TEXT[],
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_agent_interests_ip_hash ON agent_interests (ip_hash, created_at);
CREATE INDEX IF NOT EXISTS idx_agent_interests_skills ON agent_interests USING GIN (skills);
`)
	return err
}

func (r *InterestRepository) Create(ctx context.Context, in interest.Interest) (interest.Interest, error) {
	if in.ID == uuid.Nil {
		in.ID = uuid.New()
	}
	if in.CreatedAt.IsZero() {
		in.CreatedAt = time.Now().UTC()
	}
	_, err := r.pool.Exec(ctx, `
INSERT INTO agent_interests (id, moltbook_handle, skills, description, source, user_agent, ip_hash, status, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
`, in.ID, in.MoltbookHandle, in.Skills, in.Description, in.Source, in.UserAgent, in.IPHash, in.Status, in.CreatedAt)
	if err != nil {
		return interest.Interest{}, err
	}
	return in, nil
}

func (r *InterestRepository) CountByFingerprintSince(ctx context.Context, ipHash string, since time.Time) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `
SELECT COUNT(*) FROM agent_interests WHERE ip_hash = $1 AND created_at >= $2
`, ipHash, since).Scan(&n)
	return n, err
}

func (r *InterestRepository) ApplyMatch(ctx context.Context, id uuid.UUID, patch interest.MatchPatch) error {
	_, err := r.pool.Exec(ctx, `
UPDATE agent_interests
SET status = $2, matched_with = $3, match_score = $4, match_reasons = $5
WHERE id = $1
`, id, patch.Status, patch.MatchedWith, patch.MatchScore, patch.MatchReasons)
	return err
}

func (r *InterestRepository) List(ctx context.Context, limit, offset int) ([]interest.Interest, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
SELECT id, moltbook_handle, skills, description, source, user_agent, ip_hash, status, matched_with, match_score, match_reasons, created_at
FROM agent_interests
ORDER BY created_at DESC
LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []interest.Interest
	for rows.Next() {
		var in interest.Interest
		var created time.Time
		if err := rows.Scan(&in.ID, &in.MoltbookHandle, &in.Skills, &in.Description, &in.Source,
			&in.UserAgent, &in.IPHash, &in.Status, &in.MatchedWith, &in.MatchScore, &in.MatchReasons, &created); err != nil {
			return nil, err
		}
		in.CreatedAt = created.UTC()
		res = append(res, in)
	}
	return res, rows.Err()
}

// FindCompatibleInterests returns other pending submissions whose skills
// overlap the given one. A pair where each side also brings skills the other
// lacks is complementary, otherwise similar.
func (r *InterestRepository) FindCompatibleInterests(ctx context.Context, interestID uuid.UUID, minOverlap int) ([]interest.CompatibleInterest, error) {
	rows, err := r.pool.Query(ctx, `
WITH me AS (
	SELECT id, skills FROM agent_interests WHERE id = $1
)
SELECT m.id, m.shared, m.compatibility FROM (
	SELECT ai.id,
		(SELECT COUNT(*) FROM UNNEST(ai.skills) s WHERE s = ANY(me.skills)) AS shared,
		CASE WHEN EXISTS (SELECT 1 FROM UNNEST(ai.skills) s WHERE s != ALL(me.skills))
			AND EXISTS (SELECT 1 FROM UNNEST(me.skills) s WHERE s != ALL(ai.skills))
		THEN 'complementary' ELSE 'similar' END AS compatibility
	FROM agent_interests ai, me
	WHERE ai.id != me.id
		AND ai.status = 'pending'
		AND ai.skills && me.skills
) m
WHERE m.shared >= $2
ORDER BY m.shared DESC
LIMIT 20
`, interestID, minOverlap)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []interest.CompatibleInterest
	for rows.Next() {
		var c interest.CompatibleInterest
		if err := rows.Scan(&c.InterestID, &c.SharedSkills, &c.CompatibilityType); err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res, rows.Err()
}
