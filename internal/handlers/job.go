package handlers

import (
	"fmt"
	"net/http"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/middleware"
	"github.com/diewo77/jobboard/internal/services"
)

// JobHandler serves the public listing and the posting lifecycle.
type JobHandler struct {
	jobs *services.JobService
	apps *services.ApplicationService
}

func NewJobHandler(jobs *services.JobService, apps *services.ApplicationService) *JobHandler {
	return &JobHandler{jobs: jobs, apps: apps}
}

// Index is the public search/list page.
func (h *JobHandler) Index(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filters := services.Filters{
		Query:    q.Get("q"),
		Company:  q.Get("company"),
		Location: q.Get("location"),
		JobType:  q.Get("job_type"),
	}
	listing, err := h.jobs.List(filters)
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, r, "index.html", map[string]any{
		"Jobs":      listing.Jobs,
		"Companies": listing.Companies,
		"JobTypes":  listing.JobTypes,
		"Q":         filters.Query,
		"Company":   filters.Company,
		"Location":  filters.Location,
		"JobType":   filters.JobType,
	})
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	user, _ := auth.CurrentUser(r.Context())
	if !user.CanPostJobs() {
		middleware.Flash(w, "Only employers can post jobs. Register as an employer or contact admin.")
		http.Redirect(w, r, "/", statusSeeOther)
		return
	}
	if r.Method == http.MethodGet {
		render(w, r, "create_job.html", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.Flash(w, "Invalid form submission.")
		http.Redirect(w, r, "/job/create", statusSeeOther)
		return
	}
	job, err := h.jobs.Create(user, jobInputFromForm(r))
	if err != nil {
		if _, ok := services.AsValidation(err); ok {
			middleware.Flash(w, "Please fill Title, Company and Description.")
			http.Redirect(w, r, "/job/create", statusSeeOther)
			return
		}
		failServiceError(w, r, err, "/", "")
		return
	}
	middleware.Flash(w, "Job posted successfully.")
	http.Redirect(w, r, fmt.Sprintf("/job/%d", job.ID), statusSeeOther)
}

// Detail is public; it also tells an authenticated viewer whether they
// already applied.
func (h *JobHandler) Detail(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	job, err := h.jobs.Get(id)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	applied := false
	if user, ok := auth.CurrentUser(r.Context()); ok {
		applied, _ = h.apps.HasApplied(user.ID, job.ID)
	}
	render(w, r, "job_detail.html", map[string]any{"Job": job, "Applied": applied})
}

func (h *JobHandler) Edit(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	user, _ := auth.CurrentUser(r.Context())
	detail := fmt.Sprintf("/job/%d", id)
	if r.Method == http.MethodGet {
		job, err := h.jobs.Get(id)
		if err != nil {
			http.NotFound(w, r)
			return
		}
		if job.PostedByID != user.ID && !user.IsAdmin {
			middleware.Flash(w, "You are not allowed to edit this job.")
			http.Redirect(w, r, detail, statusSeeOther)
			return
		}
		render(w, r, "edit_job.html", map[string]any{"Job": job})
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.Flash(w, "Invalid form submission.")
		http.Redirect(w, r, detail, statusSeeOther)
		return
	}
	if _, err := h.jobs.Update(user, id, jobInputFromForm(r)); err != nil {
		failServiceError(w, r, err, detail, "You are not allowed to edit this job.")
		return
	}
	middleware.Flash(w, "Job updated.")
	http.Redirect(w, r, detail, statusSeeOther)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	user, _ := auth.CurrentUser(r.Context())
	if err := h.jobs.Delete(user, id); err != nil {
		failServiceError(w, r, err, fmt.Sprintf("/job/%d", id), "You are not allowed to delete this job.")
		return
	}
	middleware.Flash(w, "Job deleted.")
	http.Redirect(w, r, "/", statusSeeOther)
}

func jobInputFromForm(r *http.Request) services.JobInput {
	return services.JobInput{
		Title:       r.FormValue("job_title"),
		Company:     r.FormValue("company"),
		Salary:      r.FormValue("salary"),
		Description: r.FormValue("description"),
		Location:    r.FormValue("location"),
		JobType:     r.FormValue("job_type"),
	}
}
