package services

import (
	"io"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/models"
	"github.com/diewo77/jobboard/internal/observability/metrics"
	"github.com/diewo77/jobboard/internal/storage"
	"github.com/diewo77/jobboard/internal/validation"
)

// ApplicationService owns the applicant side: submitting and listing
// applications.
type ApplicationService struct {
	db      *gorm.DB
	resumes *storage.Store
}

func NewApplicationService(db *gorm.DB, resumes *storage.Store) *ApplicationService {
	return &ApplicationService{db: db, resumes: resumes}
}

// Resume is an uploaded file as it arrives from a multipart form.
type Resume struct {
	Filename string
	Content  io.Reader
}

// Apply submits an application for actor to the job. The pre-check gives the
// friendly Conflict; the composite unique index on (applicant_id, job_id)
// closes the race a concurrent double-submit would otherwise win.
func (s *ApplicationService) Apply(actor *models.User, jobID uint, coverLetter string, resume *Resume) (*models.Application, error) {
	var job models.Job
	if err := s.db.First(&job, jobID).Error; err != nil {
		return nil, notFound("job")
	}
	applied, err := s.HasApplied(actor.ID, jobID)
	if err != nil {
		return nil, err
	}
	if applied {
		return nil, conflict("already applied to this job")
	}

	app := models.Application{
		ApplicantID: actor.ID,
		JobID:       job.ID,
		CoverLetter: strings.TrimSpace(coverLetter),
	}
	if resume != nil && resume.Filename != "" {
		if !storage.AllowedExt(resume.Filename) {
			return nil, &ValidationError{Violations: validation.Violations{"resume": "invalid_format"}}
		}
		app.ResumeFile = storage.GeneratedName(actor.ID, time.Now().UTC(), resume.Filename)
	}

	// Row before file: an insert that loses the duplicate race cannot leave an
	// orphaned resume on disk, and a failed write rolls the row back.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		if app.ResumeFile == "" {
			return nil
		}
		if err := s.resumes.Save(app.ResumeFile, resume.Content); err != nil {
			_ = s.resumes.Remove(app.ResumeFile)
			return err
		}
		return nil
	})
	if err != nil {
		if isDuplicate(err) {
			return nil, conflict("already applied to this job")
		}
		return nil, err
	}
	metrics.ObserveApplicationSubmitted()
	return &app, nil
}

// HasApplied reports whether the user already applied to the job.
func (s *ApplicationService) HasApplied(userID, jobID uint) (bool, error) {
	var count int64
	err := s.db.Model(&models.Application{}).
		Where("applicant_id = ? AND job_id = ?", userID, jobID).
		Count(&count).Error
	return count > 0, err
}

// ByApplicant lists the user's applications, newest-first, with jobs loaded
// for the dashboard.
func (s *ApplicationService) ByApplicant(userID uint) ([]models.Application, error) {
	var apps []models.Application
	err := s.db.Preload("Job").
		Where("applicant_id = ?", userID).
		Order("created_at desc, id desc").
		Find(&apps).Error
	return apps, err
}
