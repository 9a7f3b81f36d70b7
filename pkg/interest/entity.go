package interest

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a submission. The only transition is
// pending -> matched, applied at most once during the submitting request.
type Status string

const (
	StatusPending Status = "pending"
	StatusMatched Status = "matched"
)

// Interest is one agent-interest submission. Immutable after creation except
// for the match patch.
type Interest struct {
	ID             uuid.UUID `json:"id"`
	MoltbookHandle string    `json:"moltbookHandle,omitempty"`
	Skills         []string  `json:"skills"`
	Description    string    `json:"description"`
	Source         string    `json:"source"`
	UserAgent      string    `json:"userAgent,omitempty"`
	IPHash         string    `json:"-"`
	Status         Status    `json:"status"`
	MatchedWith    []string  `json:"matchedWith,omitempty"`
	MatchScore     float32   `json:"matchScore,omitempty"`
	MatchReasons   []string  `json:"matchReasons,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// MatchPatch records the outcome of a successful match pass.
type MatchPatch struct {
	Status       Status
	MatchedWith  []string
	MatchScore   float32
	MatchReasons []string
}

// Repository is the persistence port for submissions.
type Repository interface {
	Create(ctx context.Context, in Interest) (Interest, error)
	CountByFingerprintSince(ctx context.Context, ipHash string, since time.Time) (int, error)
	ApplyMatch(ctx context.Context, id uuid.UUID, patch MatchPatch) error
	List(ctx context.Context, limit, offset int) ([]Interest, error)
}

// CompatibleInterest is another pending submission that overlaps in skills.
type CompatibleInterest struct {
	InterestID        uuid.UUID
	SharedSkills      int
	CompatibilityType string // "complementary" or "similar"
}

// CompatibleAgent is a long-lived marketing agent with overlapping skills.
type CompatibleAgent struct {
	AgentID      uuid.UUID
	Handle       string
	SharedSkills int
}

// Matcher finds pending submissions compatible with a newly created one.
type Matcher interface {
	FindCompatibleInterests(ctx context.Context, interestID uuid.UUID, minOverlap int) ([]CompatibleInterest, error)
}

// AgentDirectory looks up existing agents by skill overlap.
type AgentDirectory interface {
	FindCompatibleAgents(ctx context.Context, skills []string) ([]CompatibleAgent, error)
}
