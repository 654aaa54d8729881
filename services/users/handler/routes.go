package handler

import (
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"

	"github.com/kshitijrv/mingle/internal/pkg/middleware"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/services/users/handler/http"
)

// Handler coordinates the HTTP handlers of the users service
type Handler struct {
	authHandler  *http.AuthHandler
	oauthHandler *http.OAuthHandler
	redisClient  *redis.Client
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(
	authHandler *http.AuthHandler,
	oauthHandler *http.OAuthHandler,
	redisClient *redis.Client,
	cfg *models.Config,
) *Handler {
	return &Handler{
		authHandler:  authHandler,
		oauthHandler: oauthHandler,
		redisClient:  redisClient,
		cfg:          cfg,
	}
}

// RegisterRoutes wires the auth endpoints. The OTP-sending routes sit behind
// a redis rate limiter so one address cannot drain the email sender.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	otpLimiter := middleware.IPRateLimiter(10, time.Minute, h.redisClient)

	authGroup := e.Group("/auth")
	authGroup.POST("/signup", h.authHandler.SignUp, otpLimiter)
	authGroup.POST("/signin", h.authHandler.SignIn, otpLimiter)
	authGroup.POST("/verify-otp", h.authHandler.VerifyOTP, otpLimiter)
	authGroup.POST("/forgot-password", h.authHandler.ForgotPassword)

	authGroup.GET("/google", h.oauthHandler.GoogleLogin)
	authGroup.GET("/google/callback", h.oauthHandler.GoogleCallback)

	authGroup.GET("/user-data", h.authHandler.GetUserData, middleware.OptionalSession(h.cfg.JWT.Secret))
	authGroup.GET("/get-id", h.authHandler.GetUserID, middleware.RequireSession(h.cfg.JWT.Secret))
	authGroup.GET("/logout", h.authHandler.Logout, middleware.RequireSession(h.cfg.JWT.Secret))
}
