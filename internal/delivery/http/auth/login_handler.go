package auth_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"yatube/internal/custom_errors"
	"yatube/internal/delivery/http/middleware"
	"yatube/internal/delivery/http/view"
	"yatube/internal/logger"
	"yatube/internal/metrics"
	"yatube/internal/model"
)

type UserAuthenticator interface {
	Login(ctx context.Context, username, password string) (*model.User, error)
}

type LoginHandler struct {
	userService UserAuthenticator
	session     *middleware.Session
	renderer    view.Renderer
	log         *logger.Logger
	metrics     metrics.Provider
}

func NewLoginHandler(
	userService UserAuthenticator,
	session *middleware.Session,
	renderer view.Renderer,
	log *logger.Logger,
	metrics metrics.Provider,
) *LoginHandler {
	return &LoginHandler{
		userService: userService,
		session:     session,
		renderer:    renderer,
		log:         log,
		metrics:     metrics,
	}
}

func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := h.renderer.Render(w, "login.html", map[string]any{}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")

	user, err := h.userService.Login(r.Context(), username, password)
	if err != nil {
		h.metrics.IncrementAuthOperations("login", false)
		if errors.Is(err, custom_errors.ErrInvalidCredentials) {
			data := map[string]any{
				"Error":    "Invalid username or password.",
				"Username": username,
			}
			if renderErr := h.renderer.Render(w, "login.html", data); renderErr != nil {
				http.Error(w, renderErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if err := h.session.SetCurrentUser(w, r, user); err != nil {
		h.log.Error("Failed to save session", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.metrics.IncrementAuthOperations("login", true)
	http.Redirect(w, r, "/", http.StatusFound)
}
