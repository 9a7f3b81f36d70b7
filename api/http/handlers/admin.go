package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/headlessmarkets/site-backend/api/http/presenter"
	"github.com/headlessmarkets/site-backend/pkg/access"
	"github.com/headlessmarkets/site-backend/pkg/admin"
	"github.com/headlessmarkets/site-backend/pkg/interest"
	"github.com/headlessmarkets/site-backend/pkg/waitlist"
)

// AdminHandler serves operator login and the protected data listings.
type AdminHandler struct {
	auth      admin.UseCase
	interests interest.UseCase
	waitlist  waitlist.UseCase
	deck      access.UseCase
	investors access.UseCase
}

func NewAdminHandler(auth admin.UseCase, interests interest.UseCase, wl waitlist.UseCase, deck, investors access.UseCase) *AdminHandler {
	return &AdminHandler{auth: auth, interests: interests, waitlist: wl, deck: deck, investors: investors}
}

type adminLoginRequest struct {
	Password string `json:"password"`
}

// Login exchanges the shared operator password for a session token.
// @Summary Operator login
// @Tags    admin
// @Accept  json
// @Produce json
// @Param   input body adminLoginRequest true "login payload"
// @Success 200 {object} map[string]any
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /admin/login [post]
func (h *AdminHandler) Login(c *fiber.Ctx) error {
	var req adminLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}

	result, err := h.auth.Login(c.Context(), req.Password)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidCredentials) {
			return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to login")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"token": result.Token})
}

// Interests lists agent-interest submissions, newest first.
// @Summary List agent interests
// @Tags    admin
// @Produce json
// @Param   limit query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router  /admin/interests [get]
func (h *AdminHandler) Interests(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.interests.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list interests")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items, "limit": limit, "offset": offset})
}

// Waitlist lists launch-notification signups, newest first.
// @Summary List waitlist signups
// @Tags    admin
// @Produce json
// @Param   limit query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router  /admin/waitlist [get]
func (h *AdminHandler) Waitlist(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.waitlist.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list waitlist")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items, "limit": limit, "offset": offset})
}

// DeckRequests lists pitch-deck access requests, newest first.
// @Summary List deck access requests
// @Tags    admin
// @Produce json
// @Param   limit query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router  /admin/deck-requests [get]
func (h *AdminHandler) DeckRequests(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.deck.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list deck requests")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items, "limit": limit, "offset": offset})
}

// InvestorRequests lists investor access requests, newest first.
// @Summary List investor access requests
// @Tags    admin
// @Produce json
// @Param   limit query int false "page size"
// @Param   offset query int false "page offset"
// @Success 200 {object} map[string]any
// @Security BearerAuth
// @Router  /admin/investor-requests [get]
func (h *AdminHandler) InvestorRequests(c *fiber.Ctx) error {
	limit, offset := parseLimitOffset(c, 50)
	items, err := h.investors.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list investor requests")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"items": items, "limit": limit, "offset": offset})
}
