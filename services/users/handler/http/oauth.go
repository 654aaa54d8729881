package http

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/kshitijrv/mingle/internal/pkg/logger"
	"github.com/kshitijrv/mingle/internal/pkg/middleware"
	"github.com/kshitijrv/mingle/internal/pkg/models"
	"github.com/kshitijrv/mingle/internal/utils"
	"github.com/kshitijrv/mingle/services/users"
)

const googleUserInfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

// OAuthHandler drives the Google OAuth2 authorization-code flow
type OAuthHandler struct {
	userUC      users.UserUC
	oauthConfig *oauth2.Config
	cfg         *models.Config
}

// NewOAuthHandler creates a new Google OAuth handler
func NewOAuthHandler(userUC users.UserUC, cfg *models.Config) *OAuthHandler {
	return &OAuthHandler{
		userUC: userUC,
		oauthConfig: &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.CallbackURL,
			Scopes:       []string{"profile", "email"},
			Endpoint:     google.Endpoint,
		},
		cfg: cfg,
	}
}

// oauthState rides through Google untouched and tells the callback where to
// send the browser afterwards.
type oauthState struct {
	RedirectURL string `json:"redirectUrl"`
}

func encodeState(state oauthState) string {
	data, _ := json.Marshal(state)
	return base64.RawURLEncoding.EncodeToString(data)
}

func decodeState(raw string) (oauthState, error) {
	var state oauthState
	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return state, fmt.Errorf("malformed state parameter: %w", err)
	}
	if err := json.Unmarshal(data, &state); err != nil {
		return state, fmt.Errorf("malformed state parameter: %w", err)
	}
	return state, nil
}

// GoogleLogin redirects the browser to Google's consent screen. The optional
// redirectUrl query parameter is preserved through the state parameter.
func (h *OAuthHandler) GoogleLogin(c echo.Context) error {
	state := encodeState(oauthState{RedirectURL: c.QueryParam("redirectUrl")})
	url := h.oauthConfig.AuthCodeURL(state)
	return c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback exchanges the authorization code, loads the Google profile
// and establishes a session. Failures redirect back to the login page with
// an error marker instead of surfacing JSON errors to the browser.
func (h *OAuthHandler) GoogleCallback(c echo.Context) error {
	loginURL := h.cfg.App.FrontendURL + "/login"

	rawState := c.QueryParam("state")
	if rawState == "" {
		return c.Redirect(http.StatusTemporaryRedirect, loginURL+"?error=missing_state")
	}
	state, err := decodeState(rawState)
	if err != nil {
		return c.Redirect(http.StatusTemporaryRedirect, loginURL+"?error=missing_state")
	}

	code := c.QueryParam("code")
	if code == "" {
		return c.Redirect(http.StatusTemporaryRedirect, loginURL+"?error=google_auth_failed")
	}

	ctx := c.Request().Context()
	token, err := h.oauthConfig.Exchange(ctx, code)
	if err != nil {
		logger.Error("Failed to exchange Google authorization code", logger.Err(err))
		return c.Redirect(http.StatusTemporaryRedirect, loginURL+"?error=google_auth_failed")
	}

	profile, err := h.fetchProfile(ctx, token)
	if err != nil {
		logger.Error("Failed to fetch Google profile", logger.Err(err))
		return c.Redirect(http.StatusTemporaryRedirect, loginURL+"?error=google_auth_failed")
	}

	resp, err := h.userUC.GoogleLogin(ctx, profile)
	if err != nil {
		logger.Error("Failed to complete Google login",
			logger.Err(err),
			logger.String("email", utils.MaskEmail(profile.Email)))
		return c.Redirect(http.StatusTemporaryRedirect, loginURL+"?error=user_not_found")
	}

	c.SetCookie(middleware.NewSessionCookie(resp.Token, h.cfg.JWT.Expiration*3600))

	// First-time accounts get sent to the profile completion page
	if resp.IsNew {
		return c.Redirect(http.StatusTemporaryRedirect, h.cfg.App.FrontendURL+"/user/auth/user-details")
	}
	if state.RedirectURL != "" {
		return c.Redirect(http.StatusTemporaryRedirect, state.RedirectURL)
	}
	return c.Redirect(http.StatusTemporaryRedirect, h.cfg.App.FrontendURL)
}

// fetchProfile retrieves the user's profile from the userinfo endpoint with
// the freshly exchanged token.
func (h *OAuthHandler) fetchProfile(ctx context.Context, token *oauth2.Token) (*models.GoogleProfile, error) {
	client := h.oauthConfig.Client(ctx, token)

	resp, err := client.Get(googleUserInfoURL)
	if err != nil {
		return nil, fmt.Errorf("userinfo request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo request returned status %d", resp.StatusCode)
	}

	var profile models.GoogleProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("failed to decode userinfo response: %w", err)
	}
	if profile.Email == "" {
		return nil, fmt.Errorf("userinfo response carried no email")
	}
	return &profile, nil
}
