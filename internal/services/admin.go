package services

import (
	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/models"
)

// AdminService backs the moderation console. Role gating happens at the
// router boundary (RequireAdmin); these methods trust the caller.
type AdminService struct{ db *gorm.DB }

func NewAdminService(db *gorm.DB) *AdminService { return &AdminService{db: db} }

// Stats are the admin landing page totals.
type Stats struct {
	TotalUsers int64
	TotalJobs  int64
}

func (s *AdminService) Stats() (*Stats, error) {
	var st Stats
	if err := s.db.Model(&models.User{}).Count(&st.TotalUsers).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Job{}).Count(&st.TotalJobs).Error; err != nil {
		return nil, err
	}
	return &st, nil
}

// Users dumps all accounts, newest-first.
func (s *AdminService) Users() ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at desc, id desc").Find(&users).Error
	return users, err
}

// Jobs dumps all postings, newest-first.
func (s *AdminService) Jobs() ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.Preload("PostedBy").Order("created_at desc, id desc").Find(&jobs).Error
	return jobs, err
}

// DeleteUser removes the target and everything they own: their applications,
// every application to their jobs, and the jobs themselves, all in one
// transaction. Self-deletion is refused.
func (s *AdminService) DeleteUser(actor *models.User, targetID uint) error {
	if actor.ID == targetID {
		return conflict("cannot delete your own account")
	}
	var target models.User
	if err := s.db.First(&target, targetID).Error; err != nil {
		return notFound("user")
	}
	return s.db.Transaction(func(tx *gorm.DB) error {
		var jobIDs []uint
		if err := tx.Model(&models.Job{}).Where("posted_by_id = ?", targetID).Pluck("id", &jobIDs).Error; err != nil {
			return err
		}
		if len(jobIDs) > 0 {
			if err := tx.Where("job_id IN ?", jobIDs).Delete(&models.Application{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("applicant_id = ?", targetID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		if err := tx.Where("posted_by_id = ?", targetID).Delete(&models.Job{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, targetID).Error
	})
}

// DeleteJob removes any job unconditionally, cascading its applications.
func (s *AdminService) DeleteJob(targetID uint) error {
	var job models.Job
	if err := s.db.First(&job, targetID).Error; err != nil {
		return notFound("job")
	}
	return deleteJobCascade(s.db, targetID)
}
