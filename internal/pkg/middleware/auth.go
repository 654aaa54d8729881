package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	jwtpkg "github.com/kshitijrv/mingle/internal/pkg/jwt"
	"github.com/kshitijrv/mingle/internal/utils"
)

// SessionCookieName is the cookie carrying the session token
const SessionCookieName = "token"

// Context keys populated by the session middlewares
const (
	ContextKeySession = "session"
)

// GetSession extracts the authenticated session claims set by RequireSession
// or OptionalSession. Returns nil when the request is unauthenticated.
func GetSession(c echo.Context) *jwtpkg.SessionClaims {
	if claims, ok := c.Get(ContextKeySession).(*jwtpkg.SessionClaims); ok {
		return claims
	}
	return nil
}

// RequireSession rejects requests without a valid session cookie. Expired
// and invalid tokens get distinct messages so clients can react accordingly.
func RequireSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return utils.UnauthorizedResponseWithFlag(c, "Unauthorized. No token provided.", "NoTokenProvided")
			}

			claims, err := jwtpkg.ValidateToken(cookie.Value, secret)
			if err != nil {
				if errors.Is(err, jwtpkg.ErrTokenExpired) {
					return utils.UnauthorizedResponse(c, "Token has expired.")
				}
				return utils.UnauthorizedResponse(c, "Invalid token.")
			}

			c.Set(ContextKeySession, claims)
			return next(c)
		}
	}
}

// OptionalSession populates the session claims when a valid cookie is
// present and lets the request through either way. Bad tokens are treated
// as an absent session, never as an error.
func OptionalSession(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			claims, err := jwtpkg.ValidateToken(cookie.Value, secret)
			if err == nil {
				c.Set(ContextKeySession, claims)
			}

			return next(c)
		}
	}
}

// ClearSessionCookie returns the attributes used to expire the session
// cookie client-side on logout.
func ClearSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}

// NewSessionCookie builds the session cookie for a freshly minted token
func NewSessionCookie(token string, maxAgeSeconds int) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAgeSeconds,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	}
}
