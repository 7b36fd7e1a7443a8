package db

import (
	"fmt"
	"log"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/models"
)

// EnsureAdmin makes sure the bootstrap admin account exists with both role
// flags set. It is idempotent and safe to run at every process start.
func EnsureAdmin(db *gorm.DB, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("admin bootstrap requires email and password")
	}

	var admin models.User
	err := db.Where("email = ?", email).First(&admin).Error
	if err == gorm.ErrRecordNotFound {
		hash, herr := auth.HashPassword(password)
		if herr != nil {
			return fmt.Errorf("hash admin password: %w", herr)
		}
		admin = models.User{FullName: "Site Admin", Email: email, PasswordHash: hash, IsAdmin: true, IsEmployer: true}
		if cerr := db.Create(&admin).Error; cerr != nil {
			return fmt.Errorf("create admin: %w", cerr)
		}
		log.Printf("[setup] Admin created: %s", email)
		return nil
	}
	if err != nil {
		return fmt.Errorf("lookup admin: %w", err)
	}

	// ensure flags are set
	updates := map[string]interface{}{}
	if !admin.IsAdmin {
		updates["is_admin"] = true
	}
	if !admin.IsEmployer {
		updates["is_employer"] = true
	}
	if len(updates) > 0 {
		if uerr := db.Model(&admin).Updates(updates).Error; uerr != nil {
			return fmt.Errorf("update admin flags: %w", uerr)
		}
	}
	return nil
}
