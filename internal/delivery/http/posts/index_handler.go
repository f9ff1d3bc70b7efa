package posts_http

import (
	"context"
	"net/http"

	"yatube/internal/delivery/http/middleware"
	"yatube/internal/delivery/http/view"
	"yatube/internal/logger"
	"yatube/internal/model"
	"yatube/internal/pagination"
)

type PostLister interface {
	ListPosts(ctx context.Context, filters model.PostFilters, pageNumber int) (*pagination.Page[*model.PostDetailed], error)
}

type IndexHandler struct {
	postService PostLister
	renderer    view.Renderer
	log         *logger.Logger
}

func NewIndexHandler(postService PostLister, renderer view.Renderer, log *logger.Logger) *IndexHandler {
	return &IndexHandler{
		postService: postService,
		renderer:    renderer,
		log:         log,
	}
}

func (h *IndexHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	pageNumber := pagination.ParsePageNumber(r.URL.Query().Get("page"))

	page, err := h.postService.ListPosts(r.Context(), model.PostFilters{}, pageNumber)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Title":   "Yatube home page",
		"PageObj": page,
	}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		data["CurrentUser"] = user
	}

	if err := h.renderer.Render(w, "index.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
