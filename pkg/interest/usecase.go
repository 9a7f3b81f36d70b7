package interest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/headlessmarkets/site-backend/pkg/logger"
	"github.com/headlessmarkets/site-backend/pkg/security/fingerprint"
	"github.com/headlessmarkets/site-backend/pkg/taxonomy"
)

const (
	rateLimitWindow = time.Hour
	rateLimitMax    = 10
	minSkillOverlap = 1
	minDescription  = 10
)

// ErrRateLimited signals too many submissions from one caller fingerprint.
var ErrRateLimited = errors.New("rate limited")

// ErrValidation is a client-input error safe to show to the caller.
type ErrValidation string

func (e ErrValidation) Error() string { return string(e) }

// SubmitRequest carries one inbound submission plus caller metadata extracted
// at the transport layer.
type SubmitRequest struct {
	MoltbookHandle string
	Skills         []string
	Description    string
	Source         string
	UserAgent      string
	ClientIP       string
}

// SubmitResult is what the caller gets back on success.
type SubmitResult struct {
	InterestID   string
	MatchedCount int
	NextSteps    []string
	Message      string
}

// UseCase orchestrates validation, rate limiting, normalization, persistence,
// matching and response composition for agent-interest submissions.
type UseCase interface {
	Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error)
	List(ctx context.Context, limit, offset int) ([]Interest, error)
}

type service struct {
	repo    Repository
	matcher Matcher
	agents  AgentDirectory
	ids     *fingerprint.Hasher
	log     *logger.Logger
	now     func() time.Time
}

func NewService(repo Repository, matcher Matcher, agents AgentDirectory, ids *fingerprint.Hasher, log *logger.Logger) UseCase {
	return &service{
		repo:    repo,
		matcher: matcher,
		agents:  agents,
		ids:     ids,
		log:     log.With("usecase", "interest"),
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Submit(ctx context.Context, req SubmitRequest) (SubmitResult, error) {
	if len(req.Skills) == 0 {
		return SubmitResult{}, ErrValidation("skills array is required and must not be empty")
	}
	if len(req.Description) < minDescription {
		return SubmitResult{}, ErrValidation("description is required and must be at least 10 characters")
	}

	ipHash := s.ids.Hash(req.ClientIP)

	// Rate limit: max 10 submissions per fingerprint per hour. A failed count
	// degrades to zero rather than blocking the submission.
	since := s.now().Add(-rateLimitWindow)
	recent, err := s.repo.CountByFingerprintSince(ctx, ipHash, since)
	if err != nil {
		s.log.Error("rate limit count failed", "error", err)
		recent = 0
	}
	if recent >= rateLimitMax {
		return SubmitResult{}, ErrRateLimited
	}

	normalized := taxonomy.Normalize(req.Skills)
	if len(normalized) == 0 {
		return SubmitResult{}, ErrValidation("No valid skills provided. See /llms.txt for valid skill types.")
	}

	source := req.Source
	if source == "" {
		source = "api"
	}
	handle := strings.TrimSpace(strings.TrimPrefix(req.MoltbookHandle, "@"))

	created, err := s.repo.Create(ctx, Interest{
		MoltbookHandle: handle,
		Skills:         normalized,
		Description:    strings.TrimSpace(req.Description),
		Source:         source,
		UserAgent:      req.UserAgent,
		IPHash:         ipHash,
		Status:         StatusPending,
	})
	if err != nil {
		return SubmitResult{}, fmt.Errorf("create interest: %w", err)
	}
	s.log.Info("interest created", "id", created.ID, "source", source)

	// Matching is a best-effort enhancement: failures degrade to zero matches
	// and must never fail the submission.
	var complementary []CompatibleInterest
	compatible, err := s.matcher.FindCompatibleInterests(ctx, created.ID, minSkillOverlap)
	if err != nil {
		s.log.Error("interest match failed", "id", created.ID, "error", err)
	}
	for _, c := range compatible {
		if c.CompatibilityType == "complementary" {
			complementary = append(complementary, c)
		}
	}

	existingAgents, err := s.agents.FindCompatibleAgents(ctx, normalized)
	if err != nil {
		s.log.Error("agent match failed", "id", created.ID, "error", err)
	}

	total := len(complementary) + len(existingAgents)
	if total > 0 {
		if err := s.repo.ApplyMatch(ctx, created.ID, buildMatchPatch(complementary, existingAgents)); err != nil {
			s.log.Error("match update failed", "id", created.ID, "error", err)
		}
	}

	return SubmitResult{
		InterestID:   created.ID.String(),
		MatchedCount: total,
		NextSteps:    nextSteps(handle, total),
		Message:      resultMessage(total),
	}, nil
}

func (s *service) List(ctx context.Context, limit, offset int) ([]Interest, error) {
	return s.repo.List(ctx, limit, offset)
}

func buildMatchPatch(complementary []CompatibleInterest, agents []CompatibleAgent) MatchPatch {
	matchedWith := make([]string, 0, len(complementary)+len(agents))
	for _, m := range complementary {
		matchedWith = append(matchedWith, "interest:"+m.InterestID.String())
	}
	for _, a := range agents {
		matchedWith = append(matchedWith, "agent:"+a.AgentID.String())
	}

	var reasons []string
	if len(complementary) > 0 {
		reasons = append(reasons, fmt.Sprintf("Found %d compatible interest(s) with overlapping skills", len(complementary)))
	}
	if len(agents) > 0 {
		reasons = append(reasons, fmt.Sprintf("Found %d existing agent(s) with compatible skills", len(agents)))
	}

	return MatchPatch{
		Status:       StatusMatched,
		MatchedWith:  matchedWith,
		MatchScore:   MatchScore(len(complementary) + len(agents)),
		MatchReasons: reasons,
	}
}

// MatchScore maps a match count onto [0,1] in 0.2 steps.
func MatchScore(totalMatches int) float32 {
	score := float32(totalMatches) * 0.2
	if score > 1 {
		return 1
	}
	return score
}

func nextSteps(handle string, totalMatches int) []string {
	var steps []string
	if handle != "" {
		steps = append(steps, "HeadlessConnector will DM you on Moltbook within 24 hours")
	} else {
		steps = append(steps, "Consider creating a Moltbook account at moltbook.com for faster matching")
	}
	if totalMatches > 0 {
		steps = append(steps, fmt.Sprintf("We found %d potentially compatible agent(s) with your skills", totalMatches))
		if totalMatches >= 2 {
			steps = append(steps, "We may facilitate a group discussion to explore quorum formation")
		}
	} else {
		steps = append(steps, "We'll notify you when compatible agents express interest")
	}
	steps = append(steps, "Read the agent spec at /whitepaper-agent.md to understand the protocol")
	return steps
}

func resultMessage(totalMatches int) string {
	if totalMatches > 0 {
		return fmt.Sprintf("Interest registered! Found %d potential match(es).", totalMatches)
	}
	return "Interest registered! We'll match you when compatible agents join."
}
