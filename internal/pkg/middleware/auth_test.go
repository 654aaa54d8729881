package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	jwtpkg "github.com/kshitijrv/mingle/internal/pkg/jwt"
	"github.com/kshitijrv/mingle/internal/pkg/models"
)

const testSecret = "middleware-test-secret"

func mintToken(t *testing.T, expirationHours int) string {
	cfg := &models.Config{
		JWT: models.JWTConfig{Secret: testSecret, Expiration: expirationHours, Issuer: "mingle"},
	}
	token, _, err := jwtpkg.GenerateToken(uuid.New(), "jane@example.com", cfg)
	require.NoError(t, err)
	return token
}

func runWithCookie(mw echo.MiddlewareFunc, cookieValue string, withCookie bool) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/auth/get-id", nil)
	if withCookie {
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: cookieValue})
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		session := GetSession(c)
		if session == nil {
			return c.String(http.StatusOK, "no session")
		}
		return c.String(http.StatusOK, session.Email)
	}
	_ = mw(handler)(c)
	return rec
}

func TestRequireSession_NoCookie(t *testing.T) {
	rec := runWithCookie(RequireSession(testSecret), "", false)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))
	assert.Equal(t, "NoTokenProvided", response["flag"])
}

func TestRequireSession_ValidToken(t *testing.T) {
	token := mintToken(t, 1)
	rec := runWithCookie(RequireSession(testSecret), token, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@example.com", rec.Body.String())
}

func TestRequireSession_ExpiredToken(t *testing.T) {
	token := mintToken(t, -1)
	rec := runWithCookie(RequireSession(testSecret), token, true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token has expired.")
}

func TestRequireSession_GarbageToken(t *testing.T) {
	rec := runWithCookie(RequireSession(testSecret), "not-a-jwt", true)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token.")
}

func TestOptionalSession_NoCookiePassesThrough(t *testing.T) {
	rec := runWithCookie(OptionalSession(testSecret), "", false)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no session", rec.Body.String())
}

func TestOptionalSession_BadTokenPassesThrough(t *testing.T) {
	rec := runWithCookie(OptionalSession(testSecret), "not-a-jwt", true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "no session", rec.Body.String())
}

func TestOptionalSession_ValidTokenPopulatesSession(t *testing.T) {
	token := mintToken(t, 1)
	rec := runWithCookie(OptionalSession(testSecret), token, true)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "jane@example.com", rec.Body.String())
}
