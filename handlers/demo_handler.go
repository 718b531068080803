package handlers

import (
	"log"
	"time"

	"github.com/accredia/naac_services/models"
	"github.com/accredia/naac_services/notifications"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DemoHandler struct {
	DB         *gorm.DB
	Mailer     notifications.Sender
	AdminEmail string
}

func NewDemoHandler(db *gorm.DB, mailer notifications.Sender, adminEmail string) *DemoHandler {
	return &DemoHandler{DB: db, Mailer: mailer, AdminEmail: adminEmail}
}

type DemoRequestBody struct {
	Name            string  `json:"name" validate:"required"`
	Email           string  `json:"email" validate:"required,email"`
	Phone           *string `json:"phone"`
	InstitutionName string  `json:"institution_name" validate:"required"`
	Designation     *string `json:"designation"`
	ServiceType     string  `json:"service_type" validate:"required,oneof=NAAC NBA NIRF 'All Services'"`
	Message         *string `json:"message"`
}

type DemoStatusBody struct {
	Status string `json:"status" validate:"required,oneof=pending contacted completed"`
}

// Submit stores a demo request and sends the confirmation and admin
// notification emails. Insert and each email fail independently.
func (h *DemoHandler) Submit(c *fiber.Ctx) error {
	var req DemoRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	demo := models.DemoRequest{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		InstitutionName: req.InstitutionName,
		Designation:     req.Designation,
		ServiceType:     req.ServiceType,
		Message:         req.Message,
		Status:          models.DemoStatusPending,
		CreatedAt:       time.Now(),
	}

	savedToDatabase := false
	if err := h.DB.Create(&demo).Error; err != nil {
		log.Printf("❌ Database save failed: %v", err)
	} else {
		savedToDatabase = true
		log.Printf("✅ Demo request saved to database: %d", demo.ID)
	}

	emailData := notifications.DemoEmailData{
		Name:            req.Name,
		Email:           req.Email,
		InstitutionName: req.InstitutionName,
		ServiceType:     req.ServiceType,
		SubmittedAt:     demo.CreatedAt,
	}
	if req.Phone != nil {
		emailData.Phone = *req.Phone
	}
	if req.Designation != nil {
		emailData.Designation = *req.Designation
	}
	if req.Message != nil {
		emailData.Message = *req.Message
	}

	confirmMsg, confirmRender := notifications.DemoConfirmation(emailData)
	confirmErr := sendEmail(h.Mailer, req.Name, req.Email, confirmMsg, confirmRender)

	notifyMsg, notifyRender := notifications.DemoNotification(emailData)
	notifyErr := sendEmail(h.Mailer, "Admin", h.AdminEmail, notifyMsg, notifyRender)

	message := "Demo request submitted successfully"
	var id interface{}
	if demo.ID != 0 {
		id = demo.ID
	}
	response := fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":                id,
			"name":              demo.Name,
			"email":             demo.Email,
			"institution_name":  demo.InstitutionName,
			"service_type":      demo.ServiceType,
			"submitted_at":      demo.CreatedAt.UTC().Format(time.RFC3339),
			"saved_to_database": savedToDatabase,
		},
		"emails": fiber.Map{
			"confirmation_sent": confirmErr == nil,
			"notification_sent": notifyErr == nil,
		},
	}
	if confirmErr != nil || notifyErr != nil {
		message += " (Note: Some emails may not have been delivered)"
		response["email_errors"] = fiber.Map{
			"confirmation_error": errMessage(confirmErr),
			"notification_error": errMessage(notifyErr),
		}
	}
	response["message"] = message

	return c.Status(fiber.StatusCreated).JSON(response)
}

// List returns stored demo requests with optional status and service-type
// filters, newest first.
func (h *DemoHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	status := c.Query("status")
	serviceType := c.Query("service_type")
	filtered := func() *gorm.DB {
		query := h.DB.Model(&models.DemoRequest{})
		if status != "" {
			query = query.Where("status = ?", status)
		}
		if serviceType != "" {
			query = query.Where("service_type = ?", serviceType)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch demo requests"})
	}

	var requests []models.DemoRequest
	if err := filtered().Order("created_at DESC").Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch demo requests"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    requests,
		"pagination": fiber.Map{
			"total":    total,
			"limit":    limit,
			"offset":   offset,
			"has_more": int64(offset+limit) < total,
		},
	})
}

// UpdateStatus moves a demo request through pending → contacted → completed.
func (h *DemoHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")

	var req DemoStatusBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": "Invalid status. Must be one of: pending, contacted, completed",
		})
	}

	result := h.DB.Model(&models.DemoRequest{}).Where("id = ?", id).Update("status", req.Status)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to update demo request"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"success": false, "message": "Demo request not found"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Demo request status updated successfully",
		"data":    fiber.Map{"id": id, "status": req.Status},
	})
}
