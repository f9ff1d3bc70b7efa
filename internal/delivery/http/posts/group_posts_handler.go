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

type GroupGetter interface {
	GetGroupBySlug(ctx context.Context, slug string) (*model.Group, error)
}

type GroupPostsHandler struct {
	groupService GroupGetter
	postService  PostLister
	renderer     view.Renderer
	log          *logger.Logger
}

func NewGroupPostsHandler(groupService GroupGetter, postService PostLister, renderer view.Renderer, log *logger.Logger) *GroupPostsHandler {
	return &GroupPostsHandler{
		groupService: groupService,
		postService:  postService,
		renderer:     renderer,
		log:          log,
	}
}

func (h *GroupPostsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)["slug"]

	group, err := h.groupService.GetGroupBySlug(r.Context(), slug)
	if err != nil {
		if errors.Is(err, custom_errors.ErrGroupNotFound) {
			http.NotFound(w, r)
			return
		}
		h.log.Error("Failed to resolve group", slog.String("slug", slug), slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	pageNumber := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	page, err := h.postService.ListPosts(r.Context(), model.PostFilters{GroupID: &group.ID}, pageNumber)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Group":   group,
		"PageObj": page,
	}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		data["CurrentUser"] = user
	}

	if err := h.renderer.Render(w, "group_list.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
