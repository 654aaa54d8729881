package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/kshitijrv/mingle/internal/pkg/middleware"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/services/posts/handler/http"
)

// Handler coordinates the HTTP handlers of the posts service
type Handler struct {
	postHandler *http.PostHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(postHandler *http.PostHandler, cfg *models.Config) *Handler {
	return &Handler{
		postHandler: postHandler,
		cfg:         cfg,
	}
}

// RegisterRoutes wires the post endpoints. Creation requires a session, the
// feed is public.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	postGroup := e.Group("/posts")
	postGroup.POST("", h.postHandler.CreatePost, middleware.RequireSession(h.cfg.JWT.Secret))
	postGroup.GET("", h.postHandler.ListPosts)
}
