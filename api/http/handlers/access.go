package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/headlessmarkets/site-backend/api/http/presenter"
	"github.com/headlessmarkets/site-backend/pkg/access"
)

// AccessHandler serves one gated-content audience (pitch deck or investor
// materials). The deck and invest route groups each get their own instance.
type AccessHandler struct {
	useCase access.UseCase
}

func NewAccessHandler(useCase access.UseCase) *AccessHandler {
	return &AccessHandler{useCase: useCase}
}

type requestAccessRequest struct {
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Company        string `json:"company"`
	InvestmentSize string `json:"investmentSize"`
}

// RequestAccess starts the email-verification flow for gated content.
// @Summary Request gated-content access
// @Tags    access
// @Accept  json
// @Produce json
// @Param   input body requestAccessRequest true "access request payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /deck/request-access [post]
func (h *AccessHandler) RequestAccess(c *fiber.Ctx) error {
	var req requestAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Missing required fields")
	}

	out, err := h.useCase.RequestAccess(c.Context(), access.RequestInput{
		Email:          req.Email,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Company:        req.Company,
		InvestmentSize: req.InvestmentSize,
	})
	if err != nil {
		var verr access.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, access.ErrEmailDelivery):
			return presenter.Error(c, http.StatusInternalServerError, "Failed to send verification email")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Failed to process request")
		}
	}

	resp := fiber.Map{"success": true, "message": out.Message}
	if out.AlreadyVerified {
		resp["alreadyVerified"] = true
	}
	return presenter.JSON(c, http.StatusOK, resp)
}

// Verify consumes a verification token from the emailed link.
// @Summary Verify gated-content access
// @Tags    access
// @Produce json
// @Param   token query string true "verification token"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /deck/verify [get]
func (h *AccessHandler) Verify(c *fiber.Ctx) error {
	id, err := h.useCase.Verify(c.Context(), c.Query("token"))
	if err != nil {
		var verr access.ErrValidation
		switch {
		case errors.As(err, &verr):
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		case errors.Is(err, access.ErrInvalidToken):
			return presenter.Error(c, http.StatusBadRequest, "Invalid or expired verification link")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "Failed to verify")
		}
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"success": true,
		"investor": fiber.Map{
			"email":     id.Email,
			"firstName": id.FirstName,
			"lastName":  id.LastName,
		},
	})
}

type checkAccessRequest struct {
	Email string `json:"email"`
}

// CheckAccess reports whether an email has verified access. A verified hit
// also counts as a content view.
// @Summary Check gated-content access
// @Tags    access
// @Accept  json
// @Produce json
// @Param   input body checkAccessRequest true "check payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /deck/check-access [post]
func (h *AccessHandler) CheckAccess(c *fiber.Ctx) error {
	var req checkAccessRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Email is required")
	}

	res, err := h.useCase.CheckAccess(c.Context(), req.Email)
	if err != nil {
		var verr access.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "Failed to check access")
	}

	resp := fiber.Map{"hasAccess": res.HasAccess}
	if res.FirstName != "" {
		resp["firstName"] = res.FirstName
	} else {
		resp["firstName"] = nil
	}
	return presenter.JSON(c, http.StatusOK, resp)
}
