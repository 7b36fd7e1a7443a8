package models

import "time"

// Application links an applicant to a job. The composite unique index is what
// actually guarantees one application per (applicant, job) pair; the service
// layer's existence check only exists to give a friendly message first.
type Application struct {
	ID          uint `gorm:"primaryKey"`
	ApplicantID uint `gorm:"not null;uniqueIndex:idx_applicant_job"`
	JobID       uint `gorm:"not null;uniqueIndex:idx_applicant_job"`
	CoverLetter string
	ResumeFile  string
	CreatedAt   time.Time

	Applicant *User `gorm:"foreignKey:ApplicantID;constraint:OnDelete:CASCADE"`
	Job       *Job  `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE"`
}
