package posts_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"yatube/internal/custom_errors"
	"yatube/internal/delivery/http/middleware"
	"yatube/internal/delivery/http/view"
	"yatube/internal/logger"
	"yatube/internal/metrics"
	"yatube/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type GroupLister interface {
	ListGroups(ctx context.Context) ([]*model.Group, error)
}

type PostCreateHandler struct {
	postService  PostCreator
	groupService GroupLister
	renderer     view.Renderer
	validate     *validator.Validate
	log          *logger.Logger
	metrics      metrics.Provider
}

func NewPostCreateHandler(
	postService PostCreator,
	groupService GroupLister,
	renderer view.Renderer,
	validate *validator.Validate,
	log *logger.Logger,
	metrics metrics.Provider,
) *PostCreateHandler {
	return &PostCreateHandler{
		postService:  postService,
		groupService: groupService,
		renderer:     renderer,
		validate:     validate,
		log:          log,
		metrics:      metrics,
	}
}

func (h *PostCreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// RequireAuth guarantees a user here; the author is always the session
	// identity, never anything the client submits.
	user, ok := middleware.UserFrom(r.Context())
	if !ok {
		http.Redirect(w, r, middleware.LoginPath, http.StatusFound)
		return
	}

	if r.Method == http.MethodGet {
		h.renderForm(w, r, user, &PostForm{Errors: make(map[string]string)})
		return
	}

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Error parsing form", http.StatusBadRequest)
		return
	}

	form := parsePostForm(r)
	if !form.Validate(h.validate) {
		h.metrics.IncrementPostOperations("create", false)
		h.renderForm(w, r, user, form)
		return
	}

	created, err := h.postService.CreatePost(r.Context(), &model.CreatePostDTO{
		AuthorID: user.ID,
		Text:     form.Text,
		GroupID:  form.GroupID,
	})
	if err != nil {
		if errors.Is(err, custom_errors.ErrGroupNotFound) {
			h.metrics.IncrementPostOperations("create", false)
			form.Errors["Group"] = "Select a valid group."
			h.renderForm(w, r, user, form)
			return
		}
		h.log.Error("Failed to create post", slog.Int64("author_id", user.ID), slog.String("error", err.Error()))
		h.metrics.IncrementPostOperations("create", false)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.metrics.IncrementPostOperations("create", true)
	h.log.Debug("Post created", slog.Int64("id", created.ID), slog.Int64("author_id", user.ID))
	http.Redirect(w, r, "/profile/"+url.PathEscape(user.Username)+"/", http.StatusFound)
}

func (h *PostCreateHandler) renderForm(w http.ResponseWriter, r *http.Request, user *model.User, form *PostForm) {
	groups, err := h.groupService.ListGroups(r.Context())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Form":        form,
		"Groups":      groups,
		"IsEdit":      false,
		"CurrentUser": user,
	}

	if err := h.renderer.Render(w, "create_post.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
