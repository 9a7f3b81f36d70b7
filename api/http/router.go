package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"

	"github.com/headlessmarkets/site-backend/api/http/handlers"
	"github.com/headlessmarkets/site-backend/pkg/security/jwt"
)

// Handlers bundles everything Register wires onto the app.
type Handlers struct {
	Health   *handlers.HealthHandler
	Interest *handlers.InterestHandler
	Waitlist *handlers.WaitlistHandler
	Consent  *handlers.ConsentHandler
	Deck     *handlers.AccessHandler
	Invest   *handlers.AccessHandler
	OG       *handlers.OGHandler
	Admin    *handlers.AdminHandler
}

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, h Handlers, jwtSecret, jwtIssuer string) {
	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", h.Health.Health)
	v1.Get("/ready", h.Health.Ready)

	// Public marketing surface
	v1.Post("/subscribe", h.Waitlist.Subscribe)
	v1.Post("/consent", h.Consent.Record)
	v1.Get("/agent-interest", h.Interest.Describe)
	v1.Post("/agent-interest", h.Interest.Submit)
	v1.Get("/og", h.OG.Image)

	// Gated content, one group per audience
	deck := v1.Group("/deck")
	deck.Post("/request-access", h.Deck.RequestAccess)
	deck.Get("/verify", h.Deck.Verify)
	deck.Post("/check-access", h.Deck.CheckAccess)

	invest := v1.Group("/invest")
	invest.Post("/request-access", h.Invest.RequestAccess)
	invest.Get("/verify", h.Invest.Verify)
	invest.Post("/check-access", h.Invest.CheckAccess)

	// Operator surface
	adm := v1.Group("/admin")
	adm.Post("/login", h.Admin.Login)

	protected := adm.Group("", jwt.NewAuthMiddleware(jwtSecret, jwtIssuer), jwt.RequireAdmin())
	protected.Get("/interests", h.Admin.Interests)
	protected.Get("/waitlist", h.Admin.Waitlist)
	protected.Get("/deck-requests", h.Admin.DeckRequests)
	protected.Get("/investor-requests", h.Admin.InvestorRequests)
}
