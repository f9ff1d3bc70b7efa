package posts_http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"yatube/internal/custom_errors"
	"yatube/internal/delivery/http/middleware"
	"yatube/internal/delivery/http/view"
	"yatube/internal/logger"
	"yatube/internal/model"
	"yatube/internal/pagination"
)

type UserGetter interface {
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
}

type ProfileHandler struct {
	userService UserGetter
	postService PostLister
	renderer    view.Renderer
	log         *logger.Logger
}

func NewProfileHandler(userService UserGetter, postService PostLister, renderer view.Renderer, log *logger.Logger) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		postService: postService,
		renderer:    renderer,
		log:         log,
	}
}

func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	username := mux.Vars(r)["username"]

	author, err := h.userService.GetUserByUsername(r.Context(), username)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("Failed to resolve profile user", slog.String("username", username), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pageNumber := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	page, err := h.postService.ListPosts(r.Context(), model.PostFilters{AuthorID: &author.ID}, pageNumber)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Author":  author,
		"PageObj": page,
		// The full author total, not the size of the current page.
		"PostsCount": page.TotalItems,
	}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		data["CurrentUser"] = user
	}

	if err := h.renderer.Render(w, "profile.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
