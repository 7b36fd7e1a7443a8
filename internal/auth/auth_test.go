package auth

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/models"
)

func setupAuthTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// sessionCookie logs the user in via a throwaway response and returns the
// resulting cookie.
func sessionCookie(t *testing.T, m *Manager, userID uint) *http.Cookie {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/login", nil)
	if err := m.Login(w, r, userID); err != nil {
		t.Fatalf("login: %v", err)
	}
	cookies := w.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie issued")
	}
	return cookies[0]
}

func TestSessionCookieAttributes(t *testing.T) {
	db := setupAuthTestDB(t)
	m := NewManager("test-secret", db)

	c := sessionCookie(t, m, 1)
	if c.Path != "/" {
		t.Errorf("cookie path = %q, want /", c.Path)
	}
	if !c.HttpOnly {
		t.Error("session cookie must be HttpOnly")
	}
	if c.MaxAge != 14*24*60*60 {
		t.Errorf("cookie max-age = %d, want 14 days", c.MaxAge)
	}
	if c.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie samesite = %v, want Lax", c.SameSite)
	}
}

func TestSessionRoundtrip(t *testing.T) {
	db := setupAuthTestDB(t)
	user := models.User{FullName: "U", Email: "u@x.com", PasswordHash: "h"}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("create user: %v", err)
	}
	m := NewManager("test-secret", db)

	var seen *models.User
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = CurrentUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, m, user.ID))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if seen == nil || seen.ID != user.ID {
		t.Fatalf("expected user %d in context, got %+v", user.ID, seen)
	}
	if seen.Email != "u@x.com" {
		t.Fatalf("unexpected user loaded: %s", seen.Email)
	}
}

func TestMiddlewareClearsStaleSession(t *testing.T) {
	db := setupAuthTestDB(t)
	m := NewManager("test-secret", db)

	var present bool
	handler := m.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, present = CurrentUser(r.Context())
	}))

	// session points at a user id that does not exist
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(sessionCookie(t, m, 12345))
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if present {
		t.Fatal("stale session must not yield an identity")
	}
}

func TestRequireAuthRedirectsWithNext(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for anonymous request")
	}))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/dashboard?tab=jobs", nil))

	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
	loc := w.Header().Get("Location")
	if loc != "/login?next=%2Fdashboard%3Ftab%3Djobs" {
		t.Fatalf("unexpected redirect target %q", loc)
	}
}

func TestRequireAdmin(t *testing.T) {
	handler := RequireAdmin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// authenticated but not admin: 403
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(WithUser(req.Context(), &models.User{ID: 1}))
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}

	// admin passes
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req = req.WithContext(WithUser(req.Context(), &models.User{ID: 1, IsAdmin: true}))
	handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	// anonymous: redirect to login
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
	if w.Code != http.StatusSeeOther {
		t.Fatalf("expected 303, got %d", w.Code)
	}
}

func TestCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "s3cret" {
		t.Fatal("hash must not equal the password")
	}
	if !CheckPassword("s3cret", hash) {
		t.Fatal("correct password rejected")
	}
	if CheckPassword("wrong", hash) {
		t.Fatal("wrong password accepted")
	}
}
