package jobs

import (
	"log"
	"time"

	"github.com/accredia/naac_services/models"
	"github.com/accredia/naac_services/notifications"
	"gorm.io/gorm"
)

// DigestJob emails the admin a daily summary of new submissions.
type DigestJob struct {
	DB         *gorm.DB
	Mailer     notifications.Sender
	AdminEmail string
}

func (j *DigestJob) SendDailyDigest() {
	log.Println("Running job: SendDailyDigest...")

	since := time.Now().AddDate(0, 0, -1)

	var assessments, demos, contacts int64
	if err := j.DB.Model(&models.Assessment{}).Where("created_at >= ?", since).Count(&assessments).Error; err != nil {
		log.Printf("Error counting assessments for digest: %v", err)
		return
	}
	if err := j.DB.Model(&models.DemoRequest{}).Where("created_at >= ?", since).Count(&demos).Error; err != nil {
		log.Printf("Error counting demo requests for digest: %v", err)
		return
	}
	if err := j.DB.Model(&models.ContactMessage{}).Where("created_at >= ?", since).Count(&contacts).Error; err != nil {
		log.Printf("Error counting contact messages for digest: %v", err)
		return
	}

	if assessments == 0 && demos == 0 && contacts == 0 {
		return
	}

	msg, err := notifications.DailyDigest(notifications.DigestEmailData{
		Date:            time.Now().Format("2 Jan 2006"),
		Assessments:     assessments,
		DemoRequests:    demos,
		ContactMessages: contacts,
	})
	if err != nil {
		log.Printf("Error rendering digest email: %v", err)
		return
	}

	if err := j.Mailer.Send("Admin", j.AdminEmail, msg.Subject, msg.HTML, msg.Text); err != nil {
		log.Printf("🔥 Failed to send daily digest: %v", err)
		return
	}

	log.Println("✅ Daily digest sent successfully")
}
