package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/middleware"
	"github.com/diewo77/jobboard/internal/services"
)

// AuthHandler serves registration, login and logout.
type AuthHandler struct {
	accounts *services.AccountService
	sessions *auth.Manager
}

func NewAuthHandler(accounts *services.AccountService, sessions *auth.Manager) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	// Already logged in: nothing to register.
	if _, ok := auth.CurrentUser(r.Context()); ok {
		http.Redirect(w, r, "/", statusSeeOther)
		return
	}
	if r.Method == http.MethodGet {
		render(w, r, "register.html", nil)
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.Flash(w, "Invalid form submission.")
		http.Redirect(w, r, "/register", statusSeeOther)
		return
	}
	in := services.RegisterInput{
		FullName:   r.FormValue("fullname"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		Confirm:    r.FormValue("confirm"),
		IsEmployer: r.FormValue("is_employer") == "on",
	}
	user, err := h.accounts.Register(in)
	if err != nil {
		if errors.Is(err, services.ErrConflict) {
			middleware.Flash(w, "Email already registered. Please log in.")
			http.Redirect(w, r, "/login", statusSeeOther)
			return
		}
		if _, ok := services.AsValidation(err); ok {
			middleware.Flash(w, "Please fill all the required fields.")
			http.Redirect(w, r, "/register", statusSeeOther)
			return
		}
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	if err := h.sessions.Login(w, r, user.ID); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	middleware.Flash(w, "Registered and logged in successfully.")
	http.Redirect(w, r, "/", statusSeeOther)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.CurrentUser(r.Context()); ok {
		http.Redirect(w, r, "/", statusSeeOther)
		return
	}
	if r.Method == http.MethodGet {
		render(w, r, "login.html", map[string]any{"Next": r.URL.Query().Get("next")})
		return
	}
	if err := r.ParseForm(); err != nil {
		middleware.Flash(w, "Invalid form submission.")
		http.Redirect(w, r, "/login", statusSeeOther)
		return
	}
	user, err := h.accounts.Authenticate(r.FormValue("email"), r.FormValue("password"))
	if err != nil {
		middleware.Flash(w, "Invalid credentials.")
		http.Redirect(w, r, "/login", statusSeeOther)
		return
	}
	if err := h.sessions.Login(w, r, user.ID); err != nil {
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	middleware.Flash(w, "Logged in successfully.")
	http.Redirect(w, r, safeNext(r), statusSeeOther)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	_ = h.sessions.Logout(w, r)
	middleware.Flash(w, "Logged out.")
	http.Redirect(w, r, "/", statusSeeOther)
}

// safeNext returns the post-login destination, refusing absolute URLs so the
// next param cannot be used as an open redirect.
func safeNext(r *http.Request) string {
	next := r.URL.Query().Get("next")
	if next == "" {
		next = r.FormValue("next")
	}
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return "/"
	}
	return next
}
