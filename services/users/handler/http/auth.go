package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/middleware"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/pkg/validator"
	"github.com/kshitijrv/mingle/internal/utils"
	"github.com/kshitijrv/mingle/services/users"
)

// AuthHandler handles HTTP requests for the authentication flow
type AuthHandler struct {
	userUC users.UserUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(userUC users.UserUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		userUC: userUC,
		cfg:    cfg,
	}
}

// SignUp handles account creation requests
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req models.SignUpRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	user, err := h.userUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			return utils.ErrorResponseWithFlag(c, http.StatusBadRequest, "Email already exists", "UserExists")
		case errors.Is(err, users.ErrUsernameTaken):
			return utils.ErrorResponseWithFlag(c, http.StatusBadRequest, "Username already exists", "UserNameExists")
		default:
			logger.Error("Failed to sign up user",
				logger.Err(err),
				logger.String("email", utils.MaskEmail(req.Email)))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusCreated, "User created successfully and OTP sent", user)
}

// SignIn handles password authentication requests
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req models.SignInRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	resp, err := h.userUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		if errors.Is(err, users.ErrInvalidCredentials) {
			return utils.UnauthorizedResponse(c, "Invalid credentials")
		}
		logger.Error("Failed to sign in user",
			logger.Err(err),
			logger.String("email", utils.MaskEmail(req.Email)))
		return utils.InternalServerErrorResponse(c, "")
	}

	if resp.RequiresOTP {
		return utils.SuccessResponse(c, http.StatusOK, "OTP sent", resp)
	}

	c.SetCookie(middleware.NewSessionCookie(resp.Token, h.sessionMaxAge()))
	return utils.SuccessResponse(c, http.StatusOK, "Signed in successfully", resp)
}

// VerifyOTP handles one-time code submission for both signup verification
// and 2FA signin.
func (h *AuthHandler) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	result, err := h.userUC.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return utils.NotFoundResponse(c, "User not found")
		}
		logger.Error("Failed to verify OTP",
			logger.Err(err),
			logger.String("email", utils.MaskEmail(req.Email)))
		return utils.InternalServerErrorResponse(c, "")
	}

	switch result.Outcome {
	case models.OTPExpired:
		return utils.BadRequestResponse(c, "OTP expired")
	case models.OTPAttemptsExhausted:
		return utils.BadRequestResponse(c, "Too many invalid attempts. OTP reset.")
	case models.OTPInvalid:
		return c.JSON(http.StatusBadRequest, echo.Map{
			"success":      false,
			"error":        "Invalid OTP",
			"attemptsLeft": result.AttemptsLeft,
		})
	}

	c.SetCookie(middleware.NewSessionCookie(result.Auth.Token, h.sessionMaxAge()))
	return utils.SuccessResponse(c, http.StatusOK, "OTP verified successfully", result.Auth)
}

// ForgotPassword handles password reset requests
func (h *AuthHandler) ForgotPassword(c echo.Context) error {
	var req models.ForgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if err := c.Validate(&req); err != nil {
		return utils.ValidationErrorResponse(c, validator.FieldErrors(err))
	}

	user, err := h.userUC.ForgotPassword(c.Request().Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, users.ErrUserNotFound):
			return utils.ErrorResponseWithFlag(c, http.StatusNotFound, "User not found", "UserNotFound")
		case errors.Is(err, users.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, "Security answer does not match")
		default:
			logger.Error("Failed to reset password",
				logger.Err(err),
				logger.String("email", utils.MaskEmail(req.Email)))
			return utils.InternalServerErrorResponse(c, "")
		}
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated successfully", user)
}

// Logout clears the session cookie. Sessions are stateless so there is
// nothing to revoke server side.
func (h *AuthHandler) Logout(c echo.Context) error {
	c.SetCookie(middleware.ClearSessionCookie())
	return utils.SuccessResponse(c, http.StatusOK, "Logged out successfully", nil)
}

// GetUserID returns the id of the authenticated user
func (h *AuthHandler) GetUserID(c echo.Context) error {
	session := middleware.GetSession(c)
	if session == nil {
		return utils.UnauthorizedResponse(c, "")
	}
	return c.JSON(http.StatusOK, session.UserID)
}

// GetUserData returns the full account of the authenticated user. The route
// uses optional auth: an unauthenticated request gets authorized=false, not
// an error status cascade.
func (h *AuthHandler) GetUserData(c echo.Context) error {
	session := middleware.GetSession(c)
	if session == nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{
			"error":      "Unauthorized",
			"user":       nil,
			"authorized": false,
		})
	}

	user, err := h.userUC.GetUserByEmail(c.Request().Context(), session.Email)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{
				"error":      "User not found",
				"user":       nil,
				"authorized": false,
			})
		}
		logger.Error("Failed to load user data",
			logger.Err(err),
			logger.String("email", utils.MaskEmail(session.Email)))
		return utils.InternalServerErrorResponse(c, "")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":       user,
		"authorized": true,
	})
}

func (h *AuthHandler) sessionMaxAge() int {
	return h.cfg.JWT.Expiration * 3600
}
