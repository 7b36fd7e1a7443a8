package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/diewo77/jobboard/internal/storage"
)

// ResumeHandler serves stored resume files as attachments.
type ResumeHandler struct {
	resumes *storage.Store
}

func NewResumeHandler(resumes *storage.Store) *ResumeHandler {
	return &ResumeHandler{resumes: resumes}
}

// Download streams a resume by its generated filename. Mounted behind
// RequireAuth only: any logged-in user who knows the filename can fetch it.
// TODO: restrict downloads to the applicant and the job's poster once the
// intended access policy is confirmed.
func (h *ResumeHandler) Download(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["filename"]
	f, err := h.resumes.Open(name)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	defer f.Close()

	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(name))
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := io.Copy(w, f); err != nil {
		// client likely went away mid-transfer
		_ = err
	}
}
