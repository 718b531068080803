package notifications

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
	texttemplate "text/template"
	"time"
)

// Message is a rendered email ready for delivery.
type Message struct {
	Subject string
	HTML    string
	Text    string
}

type AssessmentEmailData struct {
	InstitutionName string
	ContactName     string
	ContactEmail    string
	ContactNumber   string
	TotalScore      int
	MaxScore        int
	Percentage      int
	ReadinessLevel  string
	RankBand        string
	SubmittedAt     time.Time
}

type DemoEmailData struct {
	Name            string
	Email           string
	Phone           string
	InstitutionName string
	Designation     string
	ServiceType     string
	Message         string
	SubmittedAt     time.Time
}

type ContactEmailData struct {
	Name        string
	Email       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}

type DigestEmailData struct {
	Date            string
	Assessments     int64
	DemoRequests    int64
	ContactMessages int64
}

var htmlFuncs = template.FuncMap{
	// multi-line form input rendered with visible line breaks, content escaped
	"nl2br": func(s string) template.HTML {
		escaped := template.HTMLEscapeString(s)
		return template.HTML(strings.ReplaceAll(escaped, "\n", "<br>"))
	},
	"date": func(t time.Time) string {
		return t.Format("2 Jan 2006 15:04 MST")
	},
}

var textFuncs = texttemplate.FuncMap{
	"date": func(t time.Time) string {
		return t.Format("2 Jan 2006 15:04 MST")
	},
}

const emailStyle = `
  body { font-family: Arial, sans-serif; line-height: 1.6; color: #333; }
  .container { max-width: 600px; margin: 0 auto; padding: 20px; }
  .header { background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 30px; text-align: center; border-radius: 10px 10px 0 0; }
  .content { background: #f9f9f9; padding: 30px; border-radius: 0 0 10px 10px; }
  .info-box { background: white; padding: 20px; margin: 20px 0; border-radius: 8px; border-left: 4px solid #667eea; }
  .score { font-size: 32px; font-weight: bold; color: #667eea; }
  .footer { text-align: center; margin-top: 30px; color: #666; font-size: 14px; }
`

func htmlTmpl(name, body string) *template.Template {
	page := `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><style>` + emailStyle + `</style></head>
<body><div class="container">` + body + `</div></body>
</html>`
	return template.Must(template.New(name).Funcs(htmlFuncs).Parse(page))
}

func textTmpl(name, body string) *texttemplate.Template {
	return texttemplate.Must(texttemplate.New(name).Funcs(textFuncs).Parse(body))
}

var assessmentResultsHTML = htmlTmpl("assessment_results", `
<div class="header">
  <h1>Your NIRF Readiness Results</h1>
  <p>Thank you for completing the self-assessment</p>
</div>
<div class="content">
  <p>Dear {{.ContactName}},</p>
  <p>Here are the results of the NIRF readiness self-assessment for <strong>{{.InstitutionName}}</strong>:</p>
  <div class="info-box">
    <p class="score">{{.TotalScore}} / {{.MaxScore}}</p>
    <p><strong>Readiness Level:</strong> {{.ReadinessLevel}}</p>
    <p><strong>Indicative Rank Band:</strong> {{.RankBand}}</p>
    <p><strong>Percentage:</strong> {{.Percentage}}%</p>
  </div>
  <p>Our accreditation consultants will review your responses and reach out with a detailed improvement roadmap within 24 hours.</p>
  <div class="footer">Best regards,<br>NAAC NBA Services Team</div>
</div>`)

var assessmentResultsText = textTmpl("assessment_results_text", `Your NIRF Readiness Results

Dear {{.ContactName}},

Institution: {{.InstitutionName}}
Total Score: {{.TotalScore}} / {{.MaxScore}} ({{.Percentage}}%)
Readiness Level: {{.ReadinessLevel}}
Indicative Rank Band: {{.RankBand}}

Our accreditation consultants will reach out with a detailed improvement roadmap within 24 hours.

Best regards,
NAAC NBA Services Team
`)

var assessmentNotificationHTML = htmlTmpl("assessment_notification", `
<div class="header"><h1>New NIRF Assessment Submission</h1></div>
<div class="content">
  <div class="info-box">
    <p><strong>Institution:</strong> {{.InstitutionName}}</p>
    <p><strong>Contact:</strong> {{.ContactName}} ({{.ContactEmail}})</p>
    {{if .ContactNumber}}<p><strong>Phone:</strong> {{.ContactNumber}}</p>{{end}}
    <p><strong>Score:</strong> {{.TotalScore}} / {{.MaxScore}} ({{.Percentage}}%)</p>
    <p><strong>Readiness Level:</strong> {{.ReadinessLevel}}</p>
    <p><strong>Rank Band:</strong> {{.RankBand}}</p>
    <p><strong>Submitted At:</strong> {{date .SubmittedAt}}</p>
  </div>
</div>`)

var assessmentNotificationText = textTmpl("assessment_notification_text", `New NIRF Assessment Submission

Institution: {{.InstitutionName}}
Contact: {{.ContactName}} ({{.ContactEmail}})
{{if .ContactNumber}}Phone: {{.ContactNumber}}
{{end}}Score: {{.TotalScore}} / {{.MaxScore}} ({{.Percentage}}%)
Readiness Level: {{.ReadinessLevel}}
Rank Band: {{.RankBand}}
Submitted At: {{date .SubmittedAt}}
`)

var demoConfirmationHTML = htmlTmpl("demo_confirmation", `
<div class="header">
  <h1>Demo Request Received</h1>
  <p>Thank you for your interest in our accreditation services</p>
</div>
<div class="content">
  <p>Dear {{.Name}},</p>
  <p>We have successfully received your demo request for <strong>{{.ServiceType}}</strong> services. Our team will review your requirements and get back to you within 24 hours.</p>
  <div class="info-box">
    <p><strong>Institution:</strong> {{.InstitutionName}}</p>
    <p><strong>Service:</strong> {{.ServiceType}}</p>
    {{if .Message}}<p><strong>Your message:</strong><br>{{nl2br .Message}}</p>{{end}}
  </div>
  <div class="footer">Best regards,<br>NAAC NBA Services Team</div>
</div>`)

var demoConfirmationText = textTmpl("demo_confirmation_text", `Demo Request Received

Dear {{.Name}},

We have received your demo request for {{.ServiceType}} services and will get back to you within 24 hours.

Institution: {{.InstitutionName}}
Service: {{.ServiceType}}

Best regards,
NAAC NBA Services Team
`)

var demoNotificationHTML = htmlTmpl("demo_notification", `
<div class="header"><h1>New Demo Request</h1></div>
<div class="content">
  <div class="info-box">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> {{.Email}}</p>
    {{if .Phone}}<p><strong>Phone:</strong> {{.Phone}}</p>{{end}}
    <p><strong>Institution:</strong> {{.InstitutionName}}</p>
    {{if .Designation}}<p><strong>Designation:</strong> {{.Designation}}</p>{{end}}
    <p><strong>Service Type:</strong> {{.ServiceType}}</p>
    {{if .Message}}<p><strong>Message:</strong><br>{{nl2br .Message}}</p>{{end}}
    <p><strong>Submitted At:</strong> {{date .SubmittedAt}}</p>
  </div>
</div>`)

var demoNotificationText = textTmpl("demo_notification_text", `New Demo Request

Name: {{.Name}}
Email: {{.Email}}
{{if .Phone}}Phone: {{.Phone}}
{{end}}Institution: {{.InstitutionName}}
{{if .Designation}}Designation: {{.Designation}}
{{end}}Service Type: {{.ServiceType}}
{{if .Message}}Message: {{.Message}}
{{end}}Submitted At: {{date .SubmittedAt}}
`)

var contactAcknowledgementHTML = htmlTmpl("contact_ack", `
<div class="header"><h1>Thank you for your message</h1></div>
<div class="content">
  <p>Dear {{.Name}},</p>
  <p>We have received your message and will get back to you within 24 hours.</p>
  <div class="info-box">
    <p><strong>Your message:</strong><br>{{nl2br .Message}}</p>
  </div>
  <div class="footer">Best regards,<br>NAAC NBA Services Team</div>
</div>`)

var contactAcknowledgementText = textTmpl("contact_ack_text", `Thank you for your message

Dear {{.Name}},

We have received your message and will get back to you within 24 hours.

Your message:
{{.Message}}

Best regards,
NAAC NBA Services Team
`)

var contactNotificationHTML = htmlTmpl("contact_notification", `
<div class="header"><h1>New Contact Form Submission</h1></div>
<div class="content">
  <div class="info-box">
    <p><strong>Name:</strong> {{.Name}}</p>
    <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
    <p><strong>Subject:</strong> {{.Subject}}</p>
    <p><strong>Message:</strong><br>{{nl2br .Message}}</p>
    <p><strong>Submitted At:</strong> {{date .SubmittedAt}}</p>
  </div>
</div>`)

var contactNotificationText = textTmpl("contact_notification_text", `New Contact Form Submission

Name: {{.Name}}
Email: {{.Email}}
Subject: {{.Subject}}
Message: {{.Message}}
Submitted At: {{date .SubmittedAt}}
`)

var dailyDigestHTML = htmlTmpl("daily_digest", `
<div class="header"><h1>Daily Submissions Digest</h1><p>{{.Date}}</p></div>
<div class="content">
  <div class="info-box">
    <p><strong>NIRF Assessments:</strong> {{.Assessments}}</p>
    <p><strong>Demo Requests:</strong> {{.DemoRequests}}</p>
    <p><strong>Contact Messages:</strong> {{.ContactMessages}}</p>
  </div>
</div>`)

var dailyDigestText = textTmpl("daily_digest_text", `Daily Submissions Digest ({{.Date}})

NIRF Assessments: {{.Assessments}}
Demo Requests: {{.DemoRequests}}
Contact Messages: {{.ContactMessages}}
`)

func render(name string, html *template.Template, text *texttemplate.Template, subject string, data any) (Message, error) {
	var htmlBuf, textBuf bytes.Buffer
	if err := html.Execute(&htmlBuf, data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s html: %w", name, err)
	}
	if err := text.Execute(&textBuf, data); err != nil {
		return Message{}, fmt.Errorf("failed to render %s text: %w", name, err)
	}
	return Message{Subject: subject, HTML: htmlBuf.String(), Text: textBuf.String()}, nil
}

func AssessmentResults(d AssessmentEmailData) (Message, error) {
	return render("assessment results", assessmentResultsHTML, assessmentResultsText,
		"Your NIRF Readiness Assessment Results - NAAC NBA Services", d)
}

func AssessmentNotification(d AssessmentEmailData) (Message, error) {
	return render("assessment notification", assessmentNotificationHTML, assessmentNotificationText,
		fmt.Sprintf("New NIRF Assessment - %s (Score: %d/%d)", d.InstitutionName, d.TotalScore, d.MaxScore), d)
}

func DemoConfirmation(d DemoEmailData) (Message, error) {
	return render("demo confirmation", demoConfirmationHTML, demoConfirmationText,
		"Demo Request Confirmation - NAAC NBA Services", d)
}

func DemoNotification(d DemoEmailData) (Message, error) {
	return render("demo notification", demoNotificationHTML, demoNotificationText,
		fmt.Sprintf("New Demo Request - %s (%s)", d.InstitutionName, d.ServiceType), d)
}

func ContactAcknowledgement(d ContactEmailData) (Message, error) {
	return render("contact acknowledgement", contactAcknowledgementHTML, contactAcknowledgementText,
		"Thank you for contacting us - NAAC NBA Services", d)
}

func ContactNotification(d ContactEmailData) (Message, error) {
	return render("contact notification", contactNotificationHTML, contactNotificationText,
		fmt.Sprintf("New Contact Form Submission - %s", d.Subject), d)
}

func DailyDigest(d DigestEmailData) (Message, error) {
	return render("daily digest", dailyDigestHTML, dailyDigestText,
		fmt.Sprintf("Daily Submissions Digest - %s", d.Date), d)
}
