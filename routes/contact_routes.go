package routes

import (
	"github.com/accredia/naac_services/handlers"
	"github.com/gofiber/fiber/v2"
)

func ContactRoutes(app *fiber.App, h *handlers.ContactHandler) {
	contact := app.Group("/api/v1/contact")

	contact.Post("", h.Submit)
	contact.Get("/messages", h.List)
}
