package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/middleware"
	"github.com/diewo77/jobboard/internal/services"
	"github.com/diewo77/jobboard/internal/view"
)

// Explicit constant for 303 See Other (Post/Redirect/Get)
const statusSeeOther = http.StatusSeeOther

// render wraps view.Render, injecting the current user and any pending flash
// message so every page can show them.
func render(w http.ResponseWriter, r *http.Request, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	if user, ok := auth.CurrentUser(r.Context()); ok {
		data["User"] = user
	}
	if msg := middleware.PopFlash(w, r); msg != "" {
		data["Flash"] = msg
	}
	if err := view.Render(w, name, data); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		if _, werr := w.Write([]byte("template error")); werr != nil {
			_ = werr
		}
	}
}

// pathID pulls the numeric {id} route variable.
func pathID(r *http.Request) (uint, bool) {
	raw := mux.Vars(r)["id"]
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// failServiceError maps the service error taxonomy to the HTML surface:
// NotFound gets a 404, everything else becomes a flash message plus a
// redirect to back. msg overrides the flash text when non-empty.
func failServiceError(w http.ResponseWriter, r *http.Request, err error, back, msg string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		http.NotFound(w, r)
	case errors.Is(err, services.ErrForbidden), errors.Is(err, services.ErrConflict):
		if msg == "" {
			msg = err.Error()
		}
		middleware.Flash(w, msg)
		http.Redirect(w, r, back, statusSeeOther)
	default:
		if ve, ok := services.AsValidation(err); ok {
			if msg == "" {
				msg = ve.Error()
			}
			middleware.Flash(w, msg)
			http.Redirect(w, r, back, statusSeeOther)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
