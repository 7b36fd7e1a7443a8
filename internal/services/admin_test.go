package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diewo77/jobboard/internal/models"
)

func TestAdminStatsAndDumps(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewAdminService(conn)
	admin := seedUser(t, conn, "admin@x.com", false, true)
	emp := seedUser(t, conn, "emp@x.com", true, false)
	seedJob(t, conn, emp, "J1", "Acme")
	seedJob(t, conn, emp, "J2", "Acme")

	stats, err := svc.Stats()
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.TotalUsers)
	assert.EqualValues(t, 2, stats.TotalJobs)

	users, err := svc.Users()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, emp.ID, users[0].ID, "newest user first")
	assert.Equal(t, admin.ID, users[1].ID)

	jobs, err := svc.Jobs()
	require.NoError(t, err)
	require.Len(t, jobs, 2)
	assert.Equal(t, "J2", jobs[0].Title, "newest job first")
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewAdminService(conn)
	admin := seedUser(t, conn, "admin@x.com", false, true)

	err := svc.DeleteUser(admin, admin.ID)
	assert.True(t, errors.Is(err, ErrConflict), "expected Conflict, got %v", err)

	var count int64
	conn.Model(&models.User{}).Where("id = ?", admin.ID).Count(&count)
	assert.EqualValues(t, 1, count, "admin row must survive")
}

func TestDeleteUserCascades(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewAdminService(conn)
	admin := seedUser(t, conn, "admin@x.com", false, true)
	target := seedUser(t, conn, "target@x.com", true, false)
	bystander := seedUser(t, conn, "bystander@x.com", false, false)

	// target posted a job, bystander applied to it; target also applied to a
	// job posted by someone else
	targetJob := seedJob(t, conn, target, "Target's job", "Acme")
	otherJob := seedJob(t, conn, admin, "Admin's job", "Globex")
	require.NoError(t, conn.Create(&models.Application{ApplicantID: bystander.ID, JobID: targetJob.ID}).Error)
	require.NoError(t, conn.Create(&models.Application{ApplicantID: target.ID, JobID: otherJob.ID}).Error)

	require.NoError(t, svc.DeleteUser(admin, target.ID))

	var userCount, jobCount, appCount int64
	conn.Model(&models.User{}).Where("id = ?", target.ID).Count(&userCount)
	conn.Model(&models.Job{}).Where("posted_by_id = ?", target.ID).Count(&jobCount)
	conn.Model(&models.Application{}).Count(&appCount)
	assert.Zero(t, userCount)
	assert.Zero(t, jobCount)
	assert.Zero(t, appCount, "both the target's applications and applications to the target's jobs are gone")

	// others untouched
	var otherJobCount int64
	conn.Model(&models.Job{}).Where("id = ?", otherJob.ID).Count(&otherJobCount)
	assert.EqualValues(t, 1, otherJobCount)
}

func TestAdminDeleteUserNotFound(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewAdminService(conn)
	admin := seedUser(t, conn, "admin@x.com", false, true)

	err := svc.DeleteUser(admin, 999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestAdminDeleteJobUnconditional(t *testing.T) {
	conn := setupTestDB(t)
	svc := NewAdminService(conn)
	emp := seedUser(t, conn, "emp@x.com", true, false)
	applicant := seedUser(t, conn, "app@x.com", false, false)
	job := seedJob(t, conn, emp, "Doomed", "Acme")
	require.NoError(t, conn.Create(&models.Application{ApplicantID: applicant.ID, JobID: job.ID}).Error)

	require.NoError(t, svc.DeleteJob(job.ID))

	var jobCount, appCount int64
	conn.Model(&models.Job{}).Where("id = ?", job.ID).Count(&jobCount)
	conn.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&appCount)
	assert.Zero(t, jobCount)
	assert.Zero(t, appCount)

	assert.True(t, errors.Is(svc.DeleteJob(job.ID), ErrNotFound))
}
