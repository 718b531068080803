package handlers

import (
	"log"
	"time"

	"github.com/accredia/naac_services/models"
	"github.com/accredia/naac_services/notifications"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ContactHandler struct {
	DB         *gorm.DB
	Mailer     notifications.Sender
	AdminEmail string
}

func NewContactHandler(db *gorm.DB, mailer notifications.Sender, adminEmail string) *ContactHandler {
	return &ContactHandler{DB: db, Mailer: mailer, AdminEmail: adminEmail}
}

type ContactRequestBody struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// Submit stores a contact-form message, notifies the admin, and acknowledges
// the sender. As with the other forms, the three side effects are independent.
func (h *ContactHandler) Submit(c *fiber.Ctx) error {
	var req ContactRequestBody
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	subject := req.Subject
	if subject == "" {
		subject = "General Inquiry"
	}

	contact := models.ContactMessage{
		Name:      req.Name,
		Email:     req.Email,
		Subject:   subject,
		Message:   req.Message,
		Status:    "pending",
		CreatedAt: time.Now(),
	}

	savedToDatabase := false
	if err := h.DB.Create(&contact).Error; err != nil {
		log.Printf("❌ Database save failed: %v", err)
	} else {
		savedToDatabase = true
		log.Printf("✅ Contact form saved to database: %d", contact.ID)
	}

	emailData := notifications.ContactEmailData{
		Name:        req.Name,
		Email:       req.Email,
		Subject:     subject,
		Message:     req.Message,
		SubmittedAt: contact.CreatedAt,
	}

	notifyMsg, notifyRender := notifications.ContactNotification(emailData)
	notifyErr := sendEmail(h.Mailer, "Admin", h.AdminEmail, notifyMsg, notifyRender)

	ackMsg, ackRender := notifications.ContactAcknowledgement(emailData)
	ackErr := sendEmail(h.Mailer, req.Name, req.Email, ackMsg, ackRender)

	message := "Contact form submitted successfully"
	var id interface{}
	if contact.ID != 0 {
		id = contact.ID
	}
	response := fiber.Map{
		"success": true,
		"data": fiber.Map{
			"id":                id,
			"name":              contact.Name,
			"email":             contact.Email,
			"subject":           contact.Subject,
			"submitted_at":      contact.CreatedAt.UTC().Format(time.RFC3339),
			"saved_to_database": savedToDatabase,
		},
		"emails": fiber.Map{
			"acknowledgement_sent": ackErr == nil,
			"notification_sent":    notifyErr == nil,
		},
	}
	if ackErr != nil || notifyErr != nil {
		message += " (Note: Some emails may not have been delivered)"
		response["email_errors"] = fiber.Map{
			"acknowledgement_error": errMessage(ackErr),
			"notification_error":    errMessage(notifyErr),
		}
	}
	response["message"] = message

	return c.Status(fiber.StatusCreated).JSON(response)
}

// List returns stored contact messages with an optional status filter.
func (h *ContactHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}

	status := c.Query("status")
	filtered := func() *gorm.DB {
		query := h.DB.Model(&models.ContactMessage{})
		if status != "" {
			query = query.Where("status = ?", status)
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch contact messages"})
	}

	var messages []models.ContactMessage
	if err := filtered().Order("created_at DESC").Limit(limit).Offset(offset).Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch contact messages"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    messages,
		"pagination": fiber.Map{
			"total":    total,
			"limit":    limit,
			"offset":   offset,
			"has_more": int64(offset+limit) < total,
		},
	})
}
