package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/headlessmarkets/site-backend/api/http/presenter"
	"github.com/headlessmarkets/site-backend/pkg/ogimage"
)

type OGHandler struct {
	renderer *ogimage.Renderer
}

func NewOGHandler(renderer *ogimage.Renderer) *OGHandler {
	return &OGHandler{renderer: renderer}
}

// Image renders a social preview card for the given page parameters.
// @Summary Render social preview image
// @Tags    og
// @Produce png
// @Param   title query string false "page title"
// @Param   description query string false "page description"
// @Param   type query string false "card type: default, market, whitepaper, invest, legal"
// @Success 200 {file} binary
// @Router  /og [get]
func (h *OGHandler) Image(c *fiber.Ctx) error {
	raw, err := h.renderer.Render(ogimage.Params{
		Title:       c.Query("title"),
		Description: c.Query("description"),
		Type:        c.Query("type"),
	})
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "Failed to render image")
	}
	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Status(http.StatusOK).Send(raw)
}
