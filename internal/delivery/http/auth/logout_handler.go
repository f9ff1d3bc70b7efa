package auth_http

import (
	"log/slog"
	"net/http"

	"yatube/internal/delivery/http/middleware"
	"yatube/internal/logger"
)

type LogoutHandler struct {
	session *middleware.Session
	log     *logger.Logger
}

func NewLogoutHandler(session *middleware.Session, log *logger.Logger) *LogoutHandler {
	return &LogoutHandler{session: session, log: log}
}

func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.session.Clear(w, r); err != nil {
		h.log.Error("Failed to clear session", slog.String("error", err.Error()))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/", http.StatusFound)
}
