package handlers

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAssessmentApp(t *testing.T, sender *fakeSender) (*fiber.App, sqlmock.Sqlmock) {
	t.Helper()

	db, mock := newTestDB(t)
	h := NewAssessmentHandler(db, sender, "admin@naacservices.in")

	app := fiber.New()
	app.Get("/api/v1/assessment/questions", h.GetQuestions)
	app.Post("/api/v1/assessment/score", h.Score)
	app.Post("/api/v1/assessment", h.Submit)
	app.Get("/api/v1/assessments", h.List)
	app.Get("/api/v1/assessments/stats", h.Stats)
	return app, mock
}

func validSubmission() map[string]interface{} {
	return map[string]interface{}{
		"submission_id":    "7a9d2c9e-45a1-4c2e-8f1a-3b6d9e8c0f21",
		"institution_name": "Sunrise Institute of Technology",
		"contact_email":    "dean@sunrise.edu.in",
		"contact_name":     "Dr. Mehta",
		"contact_number":   "+91-9876543210",
		"total_score":      88,
		"readiness_level":  "Excellent – NIRF Ready",
		"rank_band":        "Top 100",
		"answers":          map[string]string{"1": "A", "2": "A", "3": "B"},
	}
}

func expectNoDuplicate(mock sqlmock.Sqlmock) {
	mock.ExpectQuery("SELECT (.+) FROM `nirf_assessments`").
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
}

func TestSubmitAssessmentSuccess(t *testing.T) {
	sender := &fakeSender{}
	app, mock := newAssessmentApp(t, sender)

	expectNoDuplicate(mock)
	mock.ExpectExec("INSERT INTO `nirf_assessments`").
		WillReturnResult(sqlmock.NewResult(7, 1))

	status, body := doJSON(t, app, "POST", "/api/v1/assessment", validSubmission())

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(7), data["id"])
	assert.Equal(t, true, data["saved_to_database"])
	assert.Equal(t, float64(88), data["total_score"])
	assert.Equal(t, float64(88), data["percentage"])

	emails := body["emails"].(map[string]interface{})
	assert.Equal(t, true, emails["results_sent"])
	assert.Equal(t, true, emails["notification_sent"])
	assert.Nil(t, body["email_errors"])

	require.Len(t, sender.sent, 2)
	assert.Equal(t, "dean@sunrise.edu.in", sender.sent[0].ToEmail)
	assert.Equal(t, "admin@naacservices.in", sender.sent[1].ToEmail)
	assert.Contains(t, sender.sent[1].Subject, "Sunrise Institute of Technology")

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAssessmentEmailFailureStillSucceeds(t *testing.T) {
	sender := &fakeSender{failAll: true}
	app, mock := newAssessmentApp(t, sender)

	expectNoDuplicate(mock)
	mock.ExpectExec("INSERT INTO `nirf_assessments`").
		WillReturnResult(sqlmock.NewResult(3, 1))

	status, body := doJSON(t, app, "POST", "/api/v1/assessment", validSubmission())

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])
	assert.Contains(t, body["message"], "Some emails may not have been delivered")

	data := body["data"].(map[string]interface{})
	assert.Equal(t, true, data["saved_to_database"])

	emails := body["emails"].(map[string]interface{})
	assert.Equal(t, false, emails["results_sent"])
	assert.Equal(t, false, emails["notification_sent"])

	errs := body["email_errors"].(map[string]interface{})
	assert.NotNil(t, errs["results_error"])
	assert.NotNil(t, errs["notification_error"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAssessmentPersistenceFailureStillSendsEmails(t *testing.T) {
	sender := &fakeSender{}
	app, mock := newAssessmentApp(t, sender)

	expectNoDuplicate(mock)
	mock.ExpectExec("INSERT INTO `nirf_assessments`").
		WillReturnError(errors.New("connection refused"))

	status, body := doJSON(t, app, "POST", "/api/v1/assessment", validSubmission())

	require.Equal(t, fiber.StatusCreated, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["saved_to_database"])
	assert.Nil(t, data["id"])

	emails := body["emails"].(map[string]interface{})
	assert.Equal(t, true, emails["results_sent"])
	assert.Equal(t, true, emails["notification_sent"])
	require.Len(t, sender.sent, 2)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAssessmentDuplicateReturnsExisting(t *testing.T) {
	sender := &fakeSender{}
	app, mock := newAssessmentApp(t, sender)

	rows := sqlmock.NewRows([]string{
		"id", "submission_id", "institution_name", "contact_email", "contact_name",
		"total_score", "readiness_level", "rank_band", "answers",
	}).AddRow(
		12, "7a9d2c9e-45a1-4c2e-8f1a-3b6d9e8c0f21", "Sunrise Institute of Technology",
		"dean@sunrise.edu.in", "Dr. Mehta", 88, "Excellent – NIRF Ready", "Top 100", `{"1":"A"}`,
	)
	mock.ExpectQuery("SELECT (.+) FROM `nirf_assessments`").WillReturnRows(rows)

	status, body := doJSON(t, app, "POST", "/api/v1/assessment", validSubmission())

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Assessment already submitted", body["message"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(12), data["id"])

	assert.Empty(t, sender.sent)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitAssessmentValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(map[string]interface{})
	}{
		{"missing institution name", func(m map[string]interface{}) { delete(m, "institution_name") }},
		{"missing contact name", func(m map[string]interface{}) { delete(m, "contact_name") }},
		{"malformed email", func(m map[string]interface{}) { m["contact_email"] = "not-an-email" }},
		{"missing score", func(m map[string]interface{}) { delete(m, "total_score") }},
		{"score above maximum", func(m map[string]interface{}) { m["total_score"] = 150 }},
		{"negative score", func(m map[string]interface{}) { m["total_score"] = -5 }},
		{"missing answers", func(m map[string]interface{}) { delete(m, "answers") }},
		{"malformed submission id", func(m map[string]interface{}) { m["submission_id"] = "not-a-uuid" }},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			sender := &fakeSender{}
			app, mock := newAssessmentApp(t, sender)

			body := validSubmission()
			c.mutate(body)

			status, resp := doJSON(t, app, "POST", "/api/v1/assessment", body)

			require.Equal(t, fiber.StatusBadRequest, status)
			assert.Equal(t, false, resp["success"])
			assert.Empty(t, sender.sent)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestScoreEndpoint(t *testing.T) {
	app, _ := newAssessmentApp(t, &fakeSender{})

	answers := map[string]string{}
	for i := 1; i <= 10; i++ {
		answers[fmt.Sprint(i)] = "A"
	}

	status, body := doJSON(t, app, "POST", "/api/v1/assessment/score",
		map[string]interface{}{"answers": answers})

	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["total_score"])
	assert.Equal(t, "Excellent – NIRF Ready", data["readiness_level"])
	assert.Equal(t, "Top 100", data["rank_band"])
}

func TestScoreEndpointRejectsOutOfCatalogAnswers(t *testing.T) {
	app, _ := newAssessmentApp(t, &fakeSender{})

	status, body := doJSON(t, app, "POST", "/api/v1/assessment/score",
		map[string]interface{}{"answers": map[string]string{"42": "A"}})

	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["message"], "unknown question id 42")
}

func TestScoreEndpointRequiresAnswers(t *testing.T) {
	app, _ := newAssessmentApp(t, &fakeSender{})

	status, body := doJSON(t, app, "POST", "/api/v1/assessment/score", map[string]interface{}{})

	require.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, body["message"], "answers")
}

func TestGetQuestions(t *testing.T) {
	app, _ := newAssessmentApp(t, &fakeSender{})

	status, body := doJSON(t, app, "GET", "/api/v1/assessment/questions", nil)

	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(100), data["max_score"])
	assert.Len(t, data["questions"].([]interface{}), 10)
}

func TestStats(t *testing.T) {
	app, mock := newAssessmentApp(t, &fakeSender{})

	mock.ExpectQuery("SELECT count(.+) FROM `nirf_assessments`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	mock.ExpectQuery("SELECT readiness_level, COUNT(.+) FROM `nirf_assessments`").
		WillReturnRows(sqlmock.NewRows([]string{"readiness_level", "count", "avg_score"}).
			AddRow("Excellent – NIRF Ready", 2, 91.5).
			AddRow("Developing – Needs Major Improvement", 3, 38.33))

	mock.ExpectQuery("WHEN total_score >= 85 THEN 'Excellent").
		WillReturnRows(sqlmock.NewRows([]string{"score_range", "count"}).
			AddRow("Excellent (85–100)", 2).
			AddRow("Developing (30–49)", 3))

	mock.ExpectQuery("SELECT institution_name, total_score, readiness_level, created_at FROM `nirf_assessments`").
		WillReturnRows(sqlmock.NewRows([]string{"institution_name", "total_score", "readiness_level", "created_at"}).
			AddRow("Sunrise Institute of Technology", 88, "Excellent – NIRF Ready", time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)))

	status, body := doJSON(t, app, "GET", "/api/v1/assessments/stats", nil)

	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(5), data["total_assessments"])
	assert.NotEmpty(t, data["generated_at"])

	readiness := data["readiness_distribution"].([]interface{})
	require.Len(t, readiness, 2)
	top := readiness[0].(map[string]interface{})
	assert.Equal(t, "Excellent – NIRF Ready", top["readiness_level"])
	assert.Equal(t, float64(2), top["count"])
	assert.Equal(t, 91.5, top["avg_score"])

	scores := data["score_distribution"].([]interface{})
	require.Len(t, scores, 2)
	assert.Equal(t, "Excellent (85–100)", scores[0].(map[string]interface{})["score_range"])
	assert.Equal(t, "Developing (30–49)", scores[1].(map[string]interface{})["score_range"])

	recent := data["recent_assessments"].([]interface{})
	require.Len(t, recent, 1)
	first := recent[0].(map[string]interface{})
	assert.Equal(t, "Sunrise Institute of Technology", first["institution_name"])
	assert.Equal(t, float64(88), first["total_score"])

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssessments(t *testing.T) {
	sender := &fakeSender{}
	app, mock := newAssessmentApp(t, sender)

	mock.ExpectQuery("SELECT count(.+) FROM `nirf_assessments`").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	rows := sqlmock.NewRows([]string{"id", "institution_name", "total_score", "readiness_level", "answers"}).
		AddRow(2, "Sunrise Institute of Technology", 88, "Excellent – NIRF Ready", `{"1":"A"}`).
		AddRow(1, "Lakeside College", 42, "Developing – Needs Major Improvement", `{"1":"D"}`)
	mock.ExpectQuery("SELECT (.+) FROM `nirf_assessments`").WillReturnRows(rows)

	status, body := doJSON(t, app, "GET", "/api/v1/assessments?limit=10", nil)

	require.Equal(t, fiber.StatusOK, status)
	data := body["data"].([]interface{})
	require.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	answers, ok := first["answers"].(map[string]interface{})
	require.True(t, ok, "answers should round-trip as a JSON object")
	assert.Equal(t, "A", answers["1"])

	pagination := body["pagination"].(map[string]interface{})
	assert.Equal(t, float64(2), pagination["total"])
	assert.Equal(t, float64(10), pagination["limit"])
	assert.Equal(t, false, pagination["has_more"])

	require.NoError(t, mock.ExpectationsWereMet())
}
