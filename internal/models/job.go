package models

import "time"

// Job is a posting. Salary stays free text on purpose (ranges, "TBD", etc.).
type Job struct {
	ID          uint   `gorm:"primaryKey"`
	Title       string `gorm:"not null"`
	Company     string `gorm:"not null;index"`
	Salary      string
	Description string `gorm:"not null"`
	Location    string `gorm:"index"`
	JobType     string `gorm:"index"`
	CreatedAt   time.Time

	PostedByID uint  `gorm:"index"`
	PostedBy   *User `gorm:"foreignKey:PostedByID;constraint:OnDelete:CASCADE"`
}
