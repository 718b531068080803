package models

import "time"

// Assessment is one completed NIRF readiness self-assessment. Answers holds
// the raw question→option selections as submitted, serialized as JSON.
type Assessment struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SubmissionID    string    `gorm:"size:36;uniqueIndex;not null" json:"submission_id"`
	InstitutionName string    `gorm:"size:255;not null;index" json:"institution_name"`
	ContactEmail    string    `gorm:"size:255;not null;index" json:"contact_email"`
	ContactName     string    `gorm:"size:255;not null" json:"contact_name"`
	ContactNumber   *string   `gorm:"size:20" json:"contact_number,omitempty"`
	TotalScore      int       `gorm:"not null;index" json:"total_score"`
	ReadinessLevel  string    `gorm:"size:100;not null;index" json:"readiness_level"`
	RankBand        string    `gorm:"size:50;not null" json:"rank_band"`
	Answers         string    `gorm:"type:json;not null" json:"answers"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (Assessment) TableName() string {
	return "nirf_assessments"
}
