package models

import "time"

const (
	DemoStatusPending   = "pending"
	DemoStatusContacted = "contacted"
	DemoStatusCompleted = "completed"
)

type DemoRequest struct {
	ID              uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name            string    `gorm:"size:255;not null" json:"name"`
	Email           string    `gorm:"size:255;not null;index" json:"email"`
	Phone           *string   `gorm:"size:20" json:"phone,omitempty"`
	InstitutionName string    `gorm:"size:255;not null" json:"institution_name"`
	Designation     *string   `gorm:"size:255" json:"designation,omitempty"`
	ServiceType     string    `gorm:"size:20;not null;index" json:"service_type"`
	Message         *string   `gorm:"type:text" json:"message,omitempty"`
	Status          string    `gorm:"size:20;not null;default:'pending';index" json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

func (DemoRequest) TableName() string {
	return "request_demo"
}
