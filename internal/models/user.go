package models

import "time"

// User is an account. Roles are two independent flags: an account can be an
// employer, an admin, both, or neither.
type User struct {
	ID           uint   `gorm:"primaryKey"`
	FullName     string `gorm:"not null"`
	Email        string `gorm:"unique;not null;index"`
	PasswordHash string `gorm:"not null"`
	IsAdmin      bool   `gorm:"default:false"`
	IsEmployer   bool   `gorm:"default:false"`
	CreatedAt    time.Time
}

// CanPostJobs reports whether the user may create job postings.
func (u *User) CanPostJobs() bool { return u.IsEmployer || u.IsAdmin }
