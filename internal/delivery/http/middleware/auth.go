package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/sessions"

	"yatube/internal/model"
)

const LoginPath = "/auth/login/"

type contextKey string

const userContextKey contextKey = "current-user"

// Session wraps the cookie store so the handlers never touch gorilla
// directly. The session carries just enough identity to stamp posts: the
// user id and username.
type Session struct {
	store *sessions.CookieStore
	name  string
}

func NewSession(secret string, name string, maxAge int) *Session {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Session{store: store, name: name}
}

func (s *Session) SetCurrentUser(w http.ResponseWriter, r *http.Request, user *model.User) error {
	session, _ := s.store.Get(r, s.name)
	session.Values["user_id"] = user.ID
	session.Values["username"] = user.Username
	return session.Save(r, w)
}

func (s *Session) Clear(w http.ResponseWriter, r *http.Request) error {
	session, _ := s.store.Get(r, s.name)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

func (s *Session) currentUser(r *http.Request) (*model.User, bool) {
	session, err := s.store.Get(r, s.name)
	if err != nil {
		return nil, false
	}

	userID, ok1 := session.Values["user_id"].(int64)
	username, ok2 := session.Values["username"].(string)
	if !ok1 || !ok2 {
		return nil, false
	}

	return &model.User{ID: userID, Username: username}, true
}

// LoadUser attaches the authenticated user to the request context when a
// valid session exists, and passes the request through untouched otherwise.
// Public pages use it to show the correct header state.
func (s *Session) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := s.currentUser(r); ok {
			r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth redirects anonymous requests to the login page. Handlers
// behind it can rely on UserFrom returning a user.
func (s *Session) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := s.currentUser(r)
		if !ok {
			http.Redirect(w, r, LoginPath, http.StatusFound)
			return
		}
		r = r.WithContext(context.WithValue(r.Context(), userContextKey, user))
		next.ServeHTTP(w, r)
	})
}

// UserFrom returns the authenticated user placed by LoadUser or RequireAuth.
func UserFrom(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userContextKey).(*model.User)
	return user, ok
}
