package routes

import (
	"github.com/accredia/naac_services/handlers"
	"github.com/gofiber/fiber/v2"
)

func DemoRoutes(app *fiber.App, h *handlers.DemoHandler) {
	demo := app.Group("/api/v1/demo")

	demo.Post("/request", h.Submit)
	demo.Get("/requests", h.List)
	demo.Patch("/requests/:id/status", h.UpdateStatus)
}
