package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/headlessmarkets/site-backend/pkg/interest"
)

// AgentRepository is the directory of long-lived marketing agents used for
// matching new submissions.
type AgentRepository struct {
	pool *pgxpool.Pool
}

func NewAgentRepository(pool *pgxpool.Pool) (*AgentRepository, error) {
	r := &AgentRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *AgentRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS marketing_agents (
	id UUID PRIMARY KEY,
	handle TEXT NOT NULL,
	skills TEXT[] NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_marketing_agents_skills ON marketing_agents USING GIN (skills);
`)
	return err
}

func (r *AgentRepository) FindCompatibleAgents(ctx context.Context, skills []string) ([]interest.CompatibleAgent, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, handle,
	(SELECT COUNT(*) FROM UNNEST(skills) s WHERE s = ANY($1)) AS shared
FROM marketing_agents
WHERE skills && $1
ORDER BY shared DESC
LIMIT 10
`, skills)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var res []interest.CompatibleAgent
	for rows.Next() {
		var a interest.CompatibleAgent
		if err := rows.Scan(&a.AgentID, &a.Handle, &a.SharedSkills); err != nil {
			return nil, err
		}
		res = append(res, a)
	}
	return res, rows.Err()
}
