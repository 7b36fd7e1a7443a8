package auth

import (
	"context"
	"net/http"
	"net/url"

	"github.com/gorilla/sessions"
	"gorm.io/gorm"

	"github.com/diewo77/jobboard/internal/models"
)

type ctxKey string

const (
	sessionName    = "session"
	sessionUserKey = "user_id"
	userCtxKey     = ctxKey("currentUser")
)

// Manager owns the signed session cookie and resolves the current user from
// the database on each request.
type Manager struct {
	store *sessions.CookieStore
	db    *gorm.DB
}

func NewManager(secret string, db *gorm.DB) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   14 * 24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store, db: db}
}

// Login establishes a session for the user.
func (m *Manager) Login(w http.ResponseWriter, r *http.Request, userID uint) error {
	sess, _ := m.store.Get(r, sessionName)
	sess.Values[sessionUserKey] = userID
	return sess.Save(r, w)
}

// Logout clears the session.
func (m *Manager) Logout(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, sessionName)
	delete(sess.Values, sessionUserKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}

// sessionUserID extracts the user id from a valid session cookie.
func (m *Manager) sessionUserID(r *http.Request) (uint, bool) {
	sess, err := m.store.Get(r, sessionName)
	if err != nil {
		return 0, false
	}
	switch v := sess.Values[sessionUserKey].(type) {
	case uint:
		return v, v != 0
	case int:
		if v > 0 {
			return uint(v), true
		}
	case uint64:
		if v > 0 {
			return uint(v), true
		}
	}
	return 0, false
}

// Middleware loads the session's user from the database into the request
// context. A session that refers to a deleted user is cleared so stale
// cookies do not keep a ghost identity alive.
func (m *Manager) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if uid, ok := m.sessionUserID(r); ok {
			var user models.User
			if err := m.db.First(&user, uid).Error; err == nil {
				r = r.WithContext(WithUser(r.Context(), &user))
			} else {
				_ = m.Logout(w, r)
			}
		}
		next.ServeHTTP(w, r)
	})
}

// WithUser stores the current user in context.
func WithUser(ctx context.Context, u *models.User) context.Context {
	return context.WithValue(ctx, userCtxKey, u)
}

// CurrentUser extracts the authenticated user, if any.
func CurrentUser(ctx context.Context) (*models.User, bool) {
	u, ok := ctx.Value(userCtxKey).(*models.User)
	return u, ok && u != nil
}

// RequireAuth redirects anonymous requests to /login, preserving the intended
// destination in the next query param.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := CurrentUser(r.Context()); !ok {
			http.Redirect(w, r, "/login?next="+url.QueryEscape(r.URL.RequestURI()), http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAdmin responds 403 unless the current user carries the admin flag.
func RequireAdmin(next http.Handler) http.Handler {
	return RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, _ := CurrentUser(r.Context())
		if !user.IsAdmin {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	}))
}
