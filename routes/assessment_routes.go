package routes

import (
	"github.com/accredia/naac_services/handlers"
	"github.com/gofiber/fiber/v2"
)

func AssessmentRoutes(app *fiber.App, h *handlers.AssessmentHandler) {
	api := app.Group("/api/v1")

	api.Get("/assessment/questions", h.GetQuestions)
	api.Post("/assessment/score", h.Score)
	api.Post("/assessment", h.Submit)

	api.Get("/assessments", h.List)
	api.Get("/assessments/stats", h.Stats)
}
