package server

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/auth"
	"github.com/diewo77/jobboard/internal/handlers"
	"github.com/diewo77/jobboard/internal/httpx"
	"github.com/diewo77/jobboard/internal/middleware"
	"github.com/diewo77/jobboard/internal/observability/metrics"
	"github.com/diewo77/jobboard/internal/services"
	"github.com/diewo77/jobboard/internal/storage"
)

// New constructs the root http.Handler with all routes and middlewares applied.
func New(db *gorm.DB, sessions *auth.Manager, resumes *storage.Store) http.Handler {
	r := mux.NewRouter()

	accounts := services.NewAccountService(db)
	jobs := services.NewJobService(db)
	apps := services.NewApplicationService(db, resumes)
	admin := services.NewAdminService(db)

	authHandler := handlers.NewAuthHandler(accounts, sessions)
	jobHandler := handlers.NewJobHandler(jobs, apps)
	appHandler := handlers.NewApplicationHandler(jobs, apps)
	adminHandler := handlers.NewAdminHandler(admin)
	resumeHandler := handlers.NewResumeHandler(resumes)

	// --- Health endpoints ---
	r.HandleFunc("/health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded")
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	// --- Public ---
	r.HandleFunc("/", jobHandler.Index).Methods(http.MethodGet)
	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/job/{id:[0-9]+}", jobHandler.Detail).Methods(http.MethodGet)

	// --- Authenticated ---
	r.Handle("/logout", auth.RequireAuth(http.HandlerFunc(authHandler.Logout))).Methods(http.MethodGet)
	r.Handle("/job/create", auth.RequireAuth(http.HandlerFunc(jobHandler.Create))).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/job/{id:[0-9]+}/apply", auth.RequireAuth(http.HandlerFunc(appHandler.Apply))).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/job/{id:[0-9]+}/edit", auth.RequireAuth(http.HandlerFunc(jobHandler.Edit))).Methods(http.MethodGet, http.MethodPost)
	r.Handle("/job/{id:[0-9]+}/delete", auth.RequireAuth(http.HandlerFunc(jobHandler.Delete))).Methods(http.MethodPost)
	r.Handle("/dashboard", auth.RequireAuth(http.HandlerFunc(appHandler.Dashboard))).Methods(http.MethodGet)
	r.Handle("/uploads/resumes/{filename}", auth.RequireAuth(http.HandlerFunc(resumeHandler.Download))).Methods(http.MethodGet)

	// --- Admin ---
	r.Handle("/admin", auth.RequireAdmin(http.HandlerFunc(adminHandler.Index))).Methods(http.MethodGet)
	r.Handle("/admin/users", auth.RequireAdmin(http.HandlerFunc(adminHandler.Users))).Methods(http.MethodGet)
	r.Handle("/admin/jobs", auth.RequireAdmin(http.HandlerFunc(adminHandler.Jobs))).Methods(http.MethodGet)
	r.Handle("/admin/users/{id:[0-9]+}/delete", auth.RequireAdmin(http.HandlerFunc(adminHandler.DeleteUser))).Methods(http.MethodPost)
	r.Handle("/admin/jobs/{id:[0-9]+}/delete", auth.RequireAdmin(http.HandlerFunc(adminHandler.DeleteJob))).Methods(http.MethodPost)

	// Static assets
	r.PathPrefix("/static/").Handler(http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))

	var h http.Handler = r
	h = sessions.Middleware(h)
	h = metrics.HTTPMetricsMiddleware(h)
	h = middleware.Logging(h)
	h = middleware.Recover(h)
	return h
}
