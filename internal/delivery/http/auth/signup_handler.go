package auth_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"yatube/internal/custom_errors"
	"yatube/internal/delivery/http/middleware"
	"yatube/internal/delivery/http/view"
	"yatube/internal/logger"
	"yatube/internal/metrics"
	"yatube/internal/model"
)

type UserRegistrar interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
}

type signupForm struct {
	Username string `validate:"required,min=3,max=150,alphanumunicode"`
	Password string `validate:"required,min=8"`
}

type SignupHandler struct {
	userService UserRegistrar
	session     *middleware.Session
	renderer    view.Renderer
	validate    *validator.Validate
	log         *logger.Logger
	metrics     metrics.Provider
}

func NewSignupHandler(
	userService UserRegistrar,
	session *middleware.Session,
	renderer view.Renderer,
	validate *validator.Validate,
	log *logger.Logger,
	metrics metrics.Provider,
) *SignupHandler {
	return &SignupHandler{
		userService: userService,
		session:     session,
		renderer:    renderer,
		validate:    validate,
		log:         log,
		metrics:     metrics,
	}
}

func (h *SignupHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodGet {
		if err := h.renderer.Render(w, "signup.html", map[string]any{}); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	form := &signupForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
	}

	if err := h.validate.Struct(form); err != nil {
		h.metrics.IncrementAuthOperations("signup", false)
		h.renderError(w, form.Username, "Username must be at least 3 characters and password at least 8.")
		return
	}

	user, err := h.userService.Register(r.Context(), form.Username, form.Password)
	if err != nil {
		h.metrics.IncrementAuthOperations("signup", false)
		if errors.Is(err, custom_errors.ErrUsernameExists) {
			h.renderError(w, form.Username, "This username is already taken.")
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

	h.metrics.IncrementAuthOperations("signup", true)
	http.Redirect(w, r, "/", http.StatusFound)
}

func (h *SignupHandler) renderError(w http.ResponseWriter, username, message string) {
	data := map[string]any{
		"Error":    message,
		"Username": username,
	}
	if err := h.renderer.Render(w, "signup.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
