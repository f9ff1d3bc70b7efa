package delivery_http

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"

	auth_http "yatube/internal/delivery/http/auth"
	"yatube/internal/delivery/http/middleware"
	posts_http "yatube/internal/delivery/http/posts"
	"yatube/internal/delivery/http/view"
	"yatube/internal/logger"
	"yatube/internal/metrics"
	group_service "yatube/internal/service/group"
	post_service "yatube/internal/service/post"
	user_service "yatube/internal/service/user"
)

// NewRouter wires every page of the site. Listing pages are public; only
// post create and edit sit behind the session check.
func NewRouter(
	postService post_service.Service,
	groupService group_service.Service,
	userService user_service.Service,
	session *middleware.Session,
	renderer view.Renderer,
	validate *validator.Validate,
	log *logger.Logger,
	metricsProvider metrics.Provider,
) *mux.Router {
	router := mux.NewRouter()

	public := func(name string, handler http.Handler) http.Handler {
		return middleware.Metrics(name, metricsProvider, session.LoadUser(handler))
	}
	private := func(name string, handler http.Handler) http.Handler {
		return middleware.Metrics(name, metricsProvider, session.RequireAuth(handler))
	}

	indexHandler := posts_http.NewIndexHandler(postService, renderer, log)
	groupPostsHandler := posts_http.NewGroupPostsHandler(groupService, postService, renderer, log)
	profileHandler := posts_http.NewProfileHandler(userService, postService, renderer, log)
	postDetailHandler := posts_http.NewPostDetailHandler(postService, renderer, log)
	postCreateHandler := posts_http.NewPostCreateHandler(postService, groupService, renderer, validate, log, metricsProvider)
	postEditHandler := posts_http.NewPostEditHandler(postService, groupService, renderer, validate, log, metricsProvider)

	loginHandler := auth_http.NewLoginHandler(userService, session, renderer, log, metricsProvider)
	signupHandler := auth_http.NewSignupHandler(userService, session, renderer, validate, log, metricsProvider)
	logoutHandler := auth_http.NewLogoutHandler(session, log)

	router.Handle("/", public("index", indexHandler)).Methods(http.MethodGet)
	router.Handle("/group/{slug}/", public("group_posts", groupPostsHandler)).Methods(http.MethodGet)
	router.Handle("/profile/{username}/", public("profile", profileHandler)).Methods(http.MethodGet)
	router.Handle("/posts/{id}/", public("post_detail", postDetailHandler)).Methods(http.MethodGet)

	router.Handle("/create/", private("post_create", postCreateHandler)).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/posts/{id}/edit/", private("post_edit", postEditHandler)).Methods(http.MethodGet, http.MethodPost)

	router.Handle(middleware.LoginPath, public("login", loginHandler)).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/auth/signup/", public("signup", signupHandler)).Methods(http.MethodGet, http.MethodPost)
	router.Handle("/auth/logout/", public("logout", logoutHandler)).Methods(http.MethodPost)

	return router
}
