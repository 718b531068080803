package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ServiceHandler serves the API banner and health check.
type ServiceHandler struct {
	DB        *gorm.DB
	StartedAt time.Time
}

func NewServiceHandler(db *gorm.DB, startedAt time.Time) *ServiceHandler {
	return &ServiceHandler{DB: db, StartedAt: startedAt}
}

func (h *ServiceHandler) Banner(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "NAAC NBA Services Backend API",
		"version": "1.0.0",
		"status":  "Running",
		"endpoints": fiber.Map{
			"health":               "GET /health",
			"assessment_questions": "GET /api/v1/assessment/questions",
			"assessment_score":     "POST /api/v1/assessment/score",
			"assessment_submit":    "POST /api/v1/assessment",
			"assessment_list":      "GET /api/v1/assessments",
			"assessment_stats":     "GET /api/v1/assessments/stats",
			"demo_request":         "POST /api/v1/demo/request",
			"demo_list":            "GET /api/v1/demo/requests",
			"contact":              "POST /api/v1/contact",
		},
	})
}

func (h *ServiceHandler) Health(c *fiber.Ctx) error {
	dbStatus := "Connected"
	if sqlDB, err := h.DB.DB(); err != nil || sqlDB.Ping() != nil {
		dbStatus = "Disconnected"
	}

	return c.JSON(fiber.Map{
		"status":    "OK",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.StartedAt).String(),
		"database":  dbStatus,
	})
}
