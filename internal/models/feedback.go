package models

import "time"

// Feedback is a reader report about one record of a substance panel.
type Feedback struct {
	ID            uint      `gorm:"primaryKey" json:"-"`
	Reference     string    `gorm:"not null;uniqueIndex" json:"reference"`
	SubstanceSlug string    `gorm:"not null;index" json:"substance"`
	Panel         string    `gorm:"not null;default:interactions" json:"panel"`
	RecordID      string    `gorm:"not null" json:"record_id"`
	Message       string    `gorm:"not null" json:"message"`
	ReporterHash  string    `gorm:"not null" json:"-"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Feedback) TableName() string {
	return "feedback_reports"
}
