package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/headlessmarkets/site-backend/api/http/presenter"
	"github.com/headlessmarkets/site-backend/pkg/waitlist"
)

type WaitlistHandler struct {
	useCase waitlist.UseCase
}

func NewWaitlistHandler(useCase waitlist.UseCase) *WaitlistHandler {
	return &WaitlistHandler{useCase: useCase}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe adds an email to the launch waitlist.
// @Summary Subscribe to the waitlist
// @Tags    waitlist
// @Accept  json
// @Produce json
// @Param   input body subscribeRequest true "subscription payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /subscribe [post]
func (h *WaitlistHandler) Subscribe(c *fiber.Ctx) error {
	var req subscribeRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Email is required")
	}

	msg, err := h.useCase.Subscribe(c.Context(), req.Email)
	if err != nil {
		var verr waitlist.ErrInvalidEmail
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "Failed to process subscription")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"success": true, "message": msg})
}
