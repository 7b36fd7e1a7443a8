package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/models"
	"github.com/diewo77/jobboard/internal/observability/metrics"
	"github.com/diewo77/jobboard/internal/validation"
)

// JobService owns the job posting lifecycle.
type JobService struct{ db *gorm.DB }

func NewJobService(db *gorm.DB) *JobService { return &JobService{db: db} }

// Filters narrows the job listing. All fields are optional and AND-combined.
type Filters struct {
	Query    string // case-insensitive substring on title OR description
	Company  string // case-insensitive exact
	Location string // case-insensitive exact
	JobType  string // case-insensitive exact
}

// Listing is a filtered page of jobs plus the distinct facet values the
// filter UI offers.
type Listing struct {
	Jobs      []models.Job
	Companies []string
	JobTypes  []string
}

// List returns matching jobs newest-first.
func (s *JobService) List(f Filters) (*Listing, error) {
	q := s.db.Model(&models.Job{})
	if term := strings.TrimSpace(f.Query); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		q = q.Where("lower(title) LIKE ? OR lower(description) LIKE ?", like, like)
	}
	if c := strings.TrimSpace(f.Company); c != "" {
		q = q.Where("lower(company) = lower(?)", c)
	}
	if l := strings.TrimSpace(f.Location); l != "" {
		q = q.Where("lower(location) = lower(?)", l)
	}
	if t := strings.TrimSpace(f.JobType); t != "" {
		q = q.Where("lower(job_type) = lower(?)", t)
	}

	out := &Listing{}
	if err := q.Preload("PostedBy").Order("created_at desc, id desc").Find(&out.Jobs).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Job{}).Where("company <> ''").Distinct().Pluck("company", &out.Companies).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Job{}).Where("job_type <> ''").Distinct().Pluck("job_type", &out.JobTypes).Error; err != nil {
		return nil, err
	}
	return out, nil
}

type JobInput struct {
	Title       string
	Company     string
	Salary      string
	Description string
	Location    string
	JobType     string
}

// Create persists a new posting for actor. Only employers and admins may post.
func (s *JobService) Create(actor *models.User, in JobInput) (*models.Job, error) {
	if !actor.CanPostJobs() {
		return nil, forbidden("only employers can post jobs")
	}
	v := validation.Violations{}
	validation.Required("title", in.Title, v)
	validation.Required("company", in.Company, v)
	validation.Required("description", in.Description, v)
	if !v.Empty() {
		return nil, &ValidationError{Violations: v}
	}
	job := models.Job{
		Title:       strings.TrimSpace(in.Title),
		Company:     strings.TrimSpace(in.Company),
		Salary:      strings.TrimSpace(in.Salary),
		Description: strings.TrimSpace(in.Description),
		Location:    strings.TrimSpace(in.Location),
		JobType:     strings.TrimSpace(in.JobType),
		PostedByID:  actor.ID,
	}
	if err := s.db.Create(&job).Error; err != nil {
		return nil, err
	}
	metrics.ObserveJobCreated()
	return &job, nil
}

// Get fetches a job by id.
func (s *JobService) Get(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.db.Preload("PostedBy").First(&job, id).Error; err != nil {
		return nil, notFound("job")
	}
	return &job, nil
}

// Update applies a partial update: empty input fields keep current values.
// Only the original poster or an admin may edit.
func (s *JobService) Update(actor *models.User, id uint, in JobInput) (*models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if job.PostedByID != actor.ID && !actor.IsAdmin {
		return nil, forbidden("not allowed to edit this job")
	}
	job.Title = choose(in.Title, job.Title)
	job.Company = choose(in.Company, job.Company)
	job.Salary = choose(in.Salary, job.Salary)
	job.Description = choose(in.Description, job.Description)
	job.Location = choose(in.Location, job.Location)
	job.JobType = choose(in.JobType, job.JobType)
	if err := s.db.Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes the job and its applications in one transaction. Same
// authorization rule as Update.
func (s *JobService) Delete(actor *models.User, id uint) error {
	job, err := s.Get(id)
	if err != nil {
		return err
	}
	if job.PostedByID != actor.ID && !actor.IsAdmin {
		return forbidden("not allowed to delete this job")
	}
	return deleteJobCascade(s.db, id)
}

// PostedBy lists the actor's own postings, newest-first.
func (s *JobService) PostedBy(userID uint) ([]models.Job, error) {
	var jobs []models.Job
	err := s.db.Where("posted_by_id = ?", userID).Order("created_at desc, id desc").Find(&jobs).Error
	return jobs, err
}

// deleteJobCascade deletes a job child-first inside a transaction so the
// cascade does not depend on the store enforcing FK constraints.
func deleteJobCascade(db *gorm.DB, jobID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("job_id = ?", jobID).Delete(&models.Application{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Job{}, jobID).Error
	})
}

func choose(v, cur string) string {
	if strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return cur
}
