package posts_http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"yatube/internal/custom_errors"
	"yatube/internal/delivery/http/middleware"
	"yatube/internal/delivery/http/view"
	"yatube/internal/logger"
	"yatube/internal/model"
)

type PostGetter interface {
	GetPostByID(ctx context.Context, id int64) (*model.PostDetailed, error)
}

type PostDetailHandler struct {
	postService PostGetter
	renderer    view.Renderer
	log         *logger.Logger
}

func NewPostDetailHandler(postService PostGetter, renderer view.Renderer, log *logger.Logger) *PostDetailHandler {
	return &PostDetailHandler{
		postService: postService,
		renderer:    renderer,
		log:         log,
	}
}

func (h *PostDetailHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	post, err := h.postService.GetPostByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	data := map[string]any{
		"Post": post,
	}
	if user, ok := middleware.UserFrom(r.Context()); ok {
		data["CurrentUser"] = user
	}

	if err := h.renderer.Render(w, "post_detail.html", data); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
