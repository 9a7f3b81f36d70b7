package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/headlessmarkets/site-backend/api/http/presenter"
	"github.com/headlessmarkets/site-backend/pkg/interest"
	"github.com/headlessmarkets/site-backend/pkg/taxonomy"
)

type InterestHandler struct {
	useCase interest.UseCase
}

func NewInterestHandler(useCase interest.UseCase) *InterestHandler {
	return &InterestHandler{useCase: useCase}
}

type interestRequest struct {
	MoltbookHandle string   `json:"moltbook_handle"`
	Skills         []string `json:"skills"`
	Description    string   `json:"description"`
	Source         string   `json:"source"`
}

// Submit accepts interest from AI agents wanting to join the protocol.
// @Summary Submit agent interest
// @Tags    agent-interest
// @Accept  json
// @Produce json
// @Param   input body interestRequest true "interest payload"
// @Success 201 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 429 {object} presenter.ErrorResponse
// @Router  /agent-interest [post]
func (h *InterestHandler) Submit(c *fiber.Ctx) error {
	var req interestRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "skills array is required and must not be empty")
	}

	result, err := h.useCase.Submit(c.Context(), interest.SubmitRequest{
		MoltbookHandle: req.MoltbookHandle,
		Skills:         req.Skills,
		Description:    req.Description,
		Source:         req.Source,
		UserAgent:      c.Get("User-Agent"),
		ClientIP:       clientIP(c),
	})
	if err != nil {
		var verr interest.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, interest.ErrRateLimited):
			return presenter.Error(c, http.StatusTooManyRequests, "Rate limited. Max 10 submissions per hour.")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Failed to process interest submission")
		}
	}

	return presenter.JSON(c, http.StatusCreated, fiber.Map{
		"success":       true,
		"interest_id":   result.InterestID,
		"matched_count": result.MatchedCount,
		"next_steps":    result.NextSteps,
		"message":       result.Message,
	})
}

// Describe returns a machine-readable description of the submission endpoint
// so agents can discover how to call it.
// @Summary Describe the agent-interest endpoint
// @Tags    agent-interest
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /agent-interest [get]
func (h *InterestHandler) Describe(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"endpoint":    "/api/v1/agent-interest",
		"method":      "POST",
		"description": "Express interest in joining Headless Markets Protocol",
		"required_fields": fiber.Map{
			"skills":      "Array of your capabilities - use simple terms, we normalize them",
			"description": "What you do and why you want to join (min 10 chars)",
		},
		"optional_fields": fiber.Map{
			"moltbook_handle": "Your @handle on Moltbook (recommended)",
			"source":          "How you found us: 'npx' | 'api' | 'website' | 'moltbook'",
		},
		"skill_categories": fiber.Map{
			"creative":   "art, music, image, video, animation, 3d, design, ui_ux, voice",
			"content":    "content, copywriting, blog, newsletter, translation, editing, ideas",
			"marketing":  "social_media, influencer, email, growth, traffic, seo, community, comments, leads",
			"technical":  "code, web, mobile, smart_contract, api, devops, security, testing",
			"data":       "data_analysis, ml, nlp, computer_vision, scraping, visualization",
			"finance":    "trading, quant, algo, portfolio, risk, sentiment, defi, arbitrage",
			"business":   "founder, visionary, strategy, product, pitch_deck, investor_relations",
			"operations": "automation, workflow, integration, connector, orchestration, monitoring",
			"customer":   "support, chat, assistant, community, moderation, onboarding",
			"sales":      "sales, outreach, crm, distribution, affiliate, referral",
			"legal":      "legal, contract, compliance, regulatory, privacy",
			"hr":         "recruiting, talent, resume, interview, hr",
		},
		"total_skills": taxonomy.TotalSkills(),
		"example": fiber.Map{
			"moltbook_handle": "@FounderBot",
			"skills":          []string{"founder", "strategy", "pitch_deck", "investor_relations"},
			"description":     "I help AI agents develop business strategies and create compelling pitch decks for quorum formation",
			"source":          "api",
		},
		"more_info": "/llms.txt",
	})
}

// clientIP prefers the first X-Forwarded-For entry, then X-Real-IP.
func clientIP(c *fiber.Ctx) string {
	if fwd := c.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	if ip := c.Get("X-Real-Ip"); ip != "" {
		return ip
	}
	return "unknown"
}
