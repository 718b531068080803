package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/accredia/naac_services/models"
	"github.com/accredia/naac_services/notifications"
	"github.com/accredia/naac_services/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var validate = validator.New()

type AssessmentHandler struct {
	DB         *gorm.DB
	Mailer     notifications.Sender
	AdminEmail string
}

func NewAssessmentHandler(db *gorm.DB, mailer notifications.Sender, adminEmail string) *AssessmentHandler {
	return &AssessmentHandler{DB: db, Mailer: mailer, AdminEmail: adminEmail}
}

type AssessmentRequest struct {
	SubmissionID    string          `json:"submission_id" validate:"omitempty,uuid"`
	InstitutionName string          `json:"institution_name" validate:"required"`
	ContactEmail    string          `json:"contact_email" validate:"required,email"`
	ContactName     string          `json:"contact_name" validate:"required"`
	ContactNumber   *string         `json:"contact_number"`
	TotalScore      *int            `json:"total_score" validate:"required"`
	ReadinessLevel  string          `json:"readiness_level" validate:"required"`
	RankBand        string          `json:"rank_band" validate:"required"`
	Answers         json.RawMessage `json:"answers" validate:"required"`
}

// GetQuestions returns the fixed question catalog the quiz renders from.
func (h *AssessmentHandler) GetQuestions(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"questions": services.QuestionCatalog(),
			"max_score": services.MaxScore,
		},
	})
}

type ScoreRequest struct {
	Answers map[int]string `json:"answers"`
}

// Score runs the scoring engine server-side. Out-of-catalog answers are
// rejected, never scored as zero.
func (h *AssessmentHandler) Score(c *fiber.Ctx) error {
	var req ScoreRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if req.Answers == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Missing required field: answers"})
	}

	result, err := services.ScoreAssessment(req.Answers)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}

	return c.JSON(fiber.Map{"success": true, "data": result})
}

// Submit persists an assessment and sends the two notification emails. The
// insert and each email are independent: one failing never blocks the others,
// and every outcome is reported in the response.
func (h *AssessmentHandler) Submit(c *fiber.Ctx) error {
	var req AssessmentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": err.Error()})
	}
	if *req.TotalScore < 0 || *req.TotalScore > services.MaxScore {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"message": fmt.Sprintf("Invalid total score. Must be between 0 and %d", services.MaxScore),
		})
	}

	// Client-generated idempotency key. A retried submission with the same id
	// returns the stored row instead of inserting a duplicate.
	submissionID := req.SubmissionID
	if submissionID == "" {
		submissionID = uuid.NewString()
	}

	var existing models.Assessment
	err := h.DB.Where("submission_id = ?", submissionID).First(&existing).Error
	if err == nil {
		return c.JSON(fiber.Map{
			"success": true,
			"message": "Assessment already submitted",
			"data":    assessmentData(existing, true),
			"emails":  fiber.Map{"results_sent": false, "notification_sent": false},
		})
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("❌ Duplicate check failed: %v", err)
	}

	assessment := models.Assessment{
		SubmissionID:    submissionID,
		InstitutionName: req.InstitutionName,
		ContactEmail:    req.ContactEmail,
		ContactName:     req.ContactName,
		ContactNumber:   req.ContactNumber,
		TotalScore:      *req.TotalScore,
		ReadinessLevel:  req.ReadinessLevel,
		RankBand:        req.RankBand,
		Answers:         string(req.Answers),
		CreatedAt:       time.Now(),
	}

	savedToDatabase := false
	if err := h.DB.Create(&assessment).Error; err != nil {
		log.Printf("❌ Database save failed: %v", err)
	} else {
		savedToDatabase = true
		log.Printf("✅ NIRF assessment saved to database: %d", assessment.ID)
	}

	emailData := notifications.AssessmentEmailData{
		InstitutionName: req.InstitutionName,
		ContactName:     req.ContactName,
		ContactEmail:    req.ContactEmail,
		TotalScore:      *req.TotalScore,
		MaxScore:        services.MaxScore,
		Percentage:      services.Percentage(*req.TotalScore),
		ReadinessLevel:  req.ReadinessLevel,
		RankBand:        req.RankBand,
		SubmittedAt:     assessment.CreatedAt,
	}
	if req.ContactNumber != nil {
		emailData.ContactNumber = *req.ContactNumber
	}

	resultsMsg, resultsRender := notifications.AssessmentResults(emailData)
	resultsErr := sendEmail(h.Mailer, req.ContactName, req.ContactEmail, resultsMsg, resultsRender)

	notifyMsg, notifyRender := notifications.AssessmentNotification(emailData)
	notifyErr := sendEmail(h.Mailer, "Admin", h.AdminEmail, notifyMsg, notifyRender)

	message := "NIRF assessment submitted successfully"
	response := fiber.Map{
		"success": true,
		"data":    assessmentData(assessment, savedToDatabase),
		"emails": fiber.Map{
			"results_sent":      resultsErr == nil,
			"notification_sent": notifyErr == nil,
		},
	}
	if resultsErr != nil || notifyErr != nil {
		message += " (Note: Some emails may not have been delivered)"
		response["email_errors"] = fiber.Map{
			"results_error":      errMessage(resultsErr),
			"notification_error": errMessage(notifyErr),
		}
	}
	response["message"] = message

	return c.Status(fiber.StatusCreated).JSON(response)
}

type assessmentRow struct {
	models.Assessment
	Answers json.RawMessage `json:"answers"`
}

// List returns stored assessments, newest first, with an optional
// readiness-level filter.
func (h *AssessmentHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 50)
	if limit <= 0 {
		limit = 50
	}
	offset := c.QueryInt("offset", 0)
	if offset < 0 {
		offset = 0
	}
	readinessLevel := c.Query("readiness_level")

	filtered := func() *gorm.DB {
		query := h.DB.Model(&models.Assessment{})
		if readinessLevel != "" {
			query = query.Where("readiness_level LIKE ?", "%"+readinessLevel+"%")
		}
		return query
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch assessments"})
	}

	var assessments []models.Assessment
	if err := filtered().Order("created_at DESC").Limit(limit).Offset(offset).Find(&assessments).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch assessments"})
	}

	rows := make([]assessmentRow, 0, len(assessments))
	for _, a := range assessments {
		rows = append(rows, assessmentRow{Assessment: a, Answers: json.RawMessage(a.Answers)})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    rows,
		"pagination": fiber.Map{
			"total":    total,
			"limit":    limit,
			"offset":   offset,
			"has_more": int64(offset+limit) < total,
		},
	})
}

type readinessStat struct {
	ReadinessLevel string  `json:"readiness_level"`
	Count          int64   `json:"count"`
	AvgScore       float64 `json:"avg_score"`
}

type scoreRangeStat struct {
	ScoreRange string `json:"score_range"`
	Count      int64  `json:"count"`
}

type recentAssessment struct {
	InstitutionName string    `json:"institution_name"`
	TotalScore      int       `json:"total_score"`
	ReadinessLevel  string    `json:"readiness_level"`
	CreatedAt       time.Time `json:"created_at"`
}

// Stats aggregates submission counts, readiness-level and score-range
// distributions, and the ten most recent assessments.
func (h *AssessmentHandler) Stats(c *fiber.Ctx) error {
	var total int64
	if err := h.DB.Model(&models.Assessment{}).Count(&total).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch statistics"})
	}

	var readinessStats []readinessStat
	if err := h.DB.Model(&models.Assessment{}).
		Select("readiness_level, COUNT(*) AS count, ROUND(AVG(total_score), 2) AS avg_score").
		Group("readiness_level").
		Order("avg_score DESC").
		Scan(&readinessStats).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch statistics"})
	}

	var scoreStats []scoreRangeStat
	if err := h.DB.Model(&models.Assessment{}).
		Select(`CASE
			WHEN total_score >= 85 THEN 'Excellent (85–100)'
			WHEN total_score >= 70 THEN 'Strong (70–84)'
			WHEN total_score >= 50 THEN 'Average (50–69)'
			WHEN total_score >= 30 THEN 'Developing (30–49)'
			ELSE 'Foundational (0–29)'
		END AS score_range, COUNT(*) AS count`).
		Group("score_range").
		Order("MIN(total_score) DESC").
		Scan(&scoreStats).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch statistics"})
	}

	var recent []recentAssessment
	if err := h.DB.Model(&models.Assessment{}).
		Select("institution_name, total_score, readiness_level, created_at").
		Order("created_at DESC").
		Limit(10).
		Scan(&recent).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch statistics"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"total_assessments":      total,
			"readiness_distribution": readinessStats,
			"score_distribution":     scoreStats,
			"recent_assessments":     recent,
			"generated_at":           time.Now().UTC().Format(time.RFC3339),
		},
	})
}

func assessmentData(a models.Assessment, savedToDatabase bool) fiber.Map {
	var id interface{}
	if a.ID != 0 {
		id = a.ID
	}
	return fiber.Map{
		"id":                id,
		"submission_id":     a.SubmissionID,
		"institution_name":  a.InstitutionName,
		"contact_email":     a.ContactEmail,
		"contact_name":      a.ContactName,
		"total_score":       a.TotalScore,
		"readiness_level":   a.ReadinessLevel,
		"rank_band":         a.RankBand,
		"percentage":        services.Percentage(a.TotalScore),
		"submitted_at":      a.CreatedAt.UTC().Format(time.RFC3339),
		"saved_to_database": savedToDatabase,
	}
}
