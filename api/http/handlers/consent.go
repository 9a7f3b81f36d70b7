package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/headlessmarkets/site-backend/api/http/presenter"
	"github.com/headlessmarkets/site-backend/pkg/consent"
)

type ConsentHandler struct {
	useCase consent.UseCase
}

func NewConsentHandler(useCase consent.UseCase) *ConsentHandler {
	return &ConsentHandler{useCase: useCase}
}

type consentRequest struct {
	SessionID       string `json:"sessionId"`
	ConsentGiven    *bool  `json:"consentGiven"`
	ConsentType     string `json:"consentType"`
	FingerprintHash string `json:"fingerprintHash"`
	Referrer        string `json:"referrer"`
	LandingPage     string `json:"landingPage"`
	UTMSource       string `json:"utmSource"`
	UTMMedium       string `json:"utmMedium"`
	UTMCampaign     string `json:"utmCampaign"`
	UTMTerm         string `json:"utmTerm"`
	UTMContent      string `json:"utmContent"`
}

// Record stores one cookie-consent decision with attribution data.
// @Summary Record cookie consent
// @Tags    consent
// @Accept  json
// @Produce json
// @Param   input body consentRequest true "consent payload"
// @Success 200 {object} map[string]any
// @Failure 400 {object} presenter.ErrorResponse
// @Router  /consent [post]
func (h *ConsentHandler) Record(c *fiber.Ctx) error {
	var req consentRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "Session ID is required")
	}
	if req.ConsentGiven == nil {
		return presenter.Error(c, http.StatusBadRequest, "Consent status is required")
	}

	id, stored, err := h.useCase.Record(c.Context(), consent.Record{
		SessionID:       req.SessionID,
		ConsentGiven:    *req.ConsentGiven,
		ConsentType:     req.ConsentType,
		FingerprintHash: req.FingerprintHash,
		UserAgent:       c.Get("User-Agent"),
		Referrer:        req.Referrer,
		LandingPage:     req.LandingPage,
		UTMSource:       req.UTMSource,
		UTMMedium:       req.UTMMedium,
		UTMCampaign:     req.UTMCampaign,
		UTMTerm:         req.UTMTerm,
		UTMContent:      req.UTMContent,
	})
	if err != nil {
		var verr consent.ErrValidation
		if errors.As(err, &verr) {
			return presenter.Error(c, http.StatusBadRequest, verr.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "Failed to record consent")
	}

	resp := fiber.Map{"success": true, "message": "Consent recorded"}
	if stored && id != uuid.Nil {
		resp["consentId"] = id.String()
	}
	return presenter.JSON(c, http.StatusOK, resp)
}
