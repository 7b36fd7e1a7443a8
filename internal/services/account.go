package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/models"
	"github.com/diewo77/jobboard/internal/validation"
)

// AccountService covers registration and credential checks.
type AccountService struct{ db *gorm.DB }

func NewAccountService(db *gorm.DB) *AccountService { return &AccountService{db: db} }

type RegisterInput struct {
	FullName   string
	Email      string
	Password   string
	Confirm    string
	IsEmployer bool
}

// Register creates an account. Emails are stored lower-cased; the unique
// index on users.email is what enforces uniqueness, any duplicate (in any
// case) maps to Conflict.
func (s *AccountService) Register(in RegisterInput) (*models.User, error) {
	v := validation.Violations{}
	validation.Required("fullname", in.FullName, v)
	validation.Required("email", in.Email, v)
	validation.Required("password", in.Password, v)
	validation.Required("confirm", in.Confirm, v)
	if v.Empty() && in.Password != in.Confirm {
		v["confirm"] = "passwords_do_not_match"
	}
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	user := models.User{
		FullName:     strings.TrimSpace(in.FullName),
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		PasswordHash: hash,
		IsEmployer:   in.IsEmployer,
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			return nil, conflict("email already registered")
		}
		return nil, err
	}
	return &user, nil
}

// Authenticate returns the user for valid credentials, NotFound otherwise.
// Lookup and mismatch are deliberately indistinguishable to the caller.
func (s *AccountService) Authenticate(email, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, notFound("user")
	}
	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, notFound("user")
	}
	return &user, nil
}

// isDuplicate recognizes unique constraint violations across drivers. GORM's
// TranslateError covers the common cases; the string check catches sqlite
// messages that slip through.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
