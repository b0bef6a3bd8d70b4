package handlers_fiber

import "github.com/gofiber/fiber/v2"

// RegisterRoutes attaches all API routes. Everything under /api requires a
// session; the auth group is public.
func RegisterRoutes(app *fiber.App, h *Handler, session fiber.Handler) {
	authGroup := app.Group("/auth")
	authGroup.Post("/sign-up", h.PostSignUp)
	authGroup.Post("/sign-in", h.PostSignIn)
	authGroup.Post("/sign-out", h.PostSignOut)

	apiGroup := app.Group("/api", session)

	apiGroup.Get("/players", h.GetPlayers)
	apiGroup.Post("/players", h.PostPlayer)
	apiGroup.Put("/players/:id", h.PutPlayer)
	apiGroup.Delete("/players/:id", h.DeletePlayer)
	apiGroup.Post("/players/avatar", h.PostAvatar)

	apiGroup.Post("/draw", h.PostDraw)

	apiGroup.Get("/payments", h.GetPayments)
	apiGroup.Post("/payments", h.PostPayment)
	apiGroup.Get("/payments/summary", h.GetPaymentSummary)

	apiGroup.Get("/transactions", h.GetTransactions)
	apiGroup.Post("/transactions", h.PostTransaction)
	apiGroup.Get("/balance", h.GetBalance)

	apiGroup.Get("/profile", h.GetProfile)
	apiGroup.Put("/profile", h.PutProfile)

	apiGroup.Get("/settings", h.GetSettings)
	apiGroup.Put("/settings", h.PutSettings)

	apiGroup.Get("/stats", h.GetStats)
	apiGroup.Get("/export/players", h.GetExportPlayers)
}
