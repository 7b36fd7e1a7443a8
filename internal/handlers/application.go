package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/middleware"
	"github.com/diewo77/jobboard/internal/services"
)

// ApplicationHandler serves the apply flow and the user dashboard.
type ApplicationHandler struct {
	jobs *services.JobService
	apps *services.ApplicationService
}

func NewApplicationHandler(jobs *services.JobService, apps *services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{jobs: jobs, apps: apps}
}

// maxResumeSize bounds multipart memory use; larger files spill to disk.
const maxResumeSize = 10 << 20

func (h *ApplicationHandler) Apply(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	user, _ := auth.CurrentUser(r.Context())
	job, err := h.jobs.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	detail := fmt.Sprintf("/job/%d", job.ID)

	if applied, _ := h.apps.HasApplied(user.ID, job.ID); applied {
		middleware.Flash(w, "You have already applied to this job.")
		http.Redirect(w, r, detail, statusSeeOther)
		return
	}
	if r.Method == http.MethodGet {
		render(w, r, "apply.html", map[string]any{"Job": job})
		return
	}

	if err := r.ParseMultipartForm(maxResumeSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		middleware.Flash(w, "Invalid form submission.")
		http.Redirect(w, r, detail+"/apply", statusSeeOther)
		return
	}
	var resume *services.Resume
	if file, header, ferr := r.FormFile("resume"); ferr == nil && header.Filename != "" {
		defer file.Close()
		resume = &services.Resume{Filename: header.Filename, Content: file}
	}
	if _, err := h.apps.Apply(user, job.ID, r.FormValue("cover_letter"), resume); err != nil {
		if _, ok := services.AsValidation(err); ok {
			middleware.Flash(w, "Invalid resume format. Allowed: pdf, doc, docx")
			http.Redirect(w, r, detail+"/apply", statusSeeOther)
			return
		}
		if errors.Is(err, services.ErrConflict) {
			middleware.Flash(w, "You have already applied to this job.")
			http.Redirect(w, r, detail, statusSeeOther)
			return
		}
		failServiceError(w, r, err, detail, "")
		return
	}
	middleware.Flash(w, "Application submitted. Good luck!")
	http.Redirect(w, r, detail, statusSeeOther)
}

// Dashboard shows the user's own postings and submitted applications.
func (h *ApplicationHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())
	myJobs, err := h.jobs.PostedBy(user.ID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	myApps, err := h.apps.ByApplicant(user.ID)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, r, "dashboard.html", map[string]any{"MyJobs": myJobs, "MyApplications": myApps})
}
