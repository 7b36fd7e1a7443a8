package handlers

import (
	"net/http"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/middleware"
	"github.com/diewo77/jobboard/internal/services"
)

// AdminHandler serves the moderation console. Routes are mounted behind
// RequireAdmin; handlers only deal with the happy path plus service errors.
type AdminHandler struct {
	admin *services.AdminService
}

func NewAdminHandler(admin *services.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

func (h *AdminHandler) Index(w http.ResponseWriter, r *http.Request) {
	stats, err := h.admin.Stats()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, r, "admin/index.html", map[string]any{"Stats": stats})
}

func (h *AdminHandler) Users(w http.ResponseWriter, r *http.Request) {
	users, err := h.admin.Users()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, r, "admin/users.html", map[string]any{"Users": users})
}

func (h *AdminHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	jobs, err := h.admin.Jobs()
	if err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	render(w, r, "admin/jobs.html", map[string]any{"Jobs": jobs})
}

func (h *AdminHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	actor, _ := auth.CurrentUser(r.Context())
	if err := h.admin.DeleteUser(actor, id); err != nil {
		failServiceError(w, r, err, "/admin/users", "You cannot delete your own admin account.")
		return
	}
	middleware.Flash(w, "User deleted.")
	http.Redirect(w, r, "/admin/users", statusSeeOther)
}

func (h *AdminHandler) DeleteJob(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	if err := h.admin.DeleteJob(id); err != nil {
		failServiceError(w, r, err, "/admin/jobs", "")
		return
	}
	middleware.Flash(w, "Job deleted.")
	http.Redirect(w, r, "/admin/jobs", statusSeeOther)
}
