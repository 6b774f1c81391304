package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	registerPageRoutes(app, handler)
	registerAPIRoutes(app, handler)
}

func registerPageRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)
	app.Get("/metrics", handler.metricsHandler())
	app.Get("/favicon.ico", sendNoContent)
	app.Get("/lang/:lang", handler.SetLanguage)

	app.Get("/", handler.ShowIndex)
	app.Get("/substances/:slug", handler.ShowSubstance)
	app.Get("/substances/:slug/interactions", handler.InteractionsPartial)
	app.Post("/substances/:slug/feedback", handler.SubmitFeedback)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/substances", handler.ListSubstances)
	api.Get("/substances/:slug", handler.GetSubstance)
	api.Get("/substances/:slug/interactions", handler.ListInteractions)

	admin := api.Group("/admin", handler.AdminRequired)
	admin.Get("/feedback", handler.ListFeedback)
	admin.Get("/feedback/counts", handler.FeedbackCounts)
}
