package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"xogame/internal/auth"
	"xogame/internal/config"
	"xogame/internal/errors"
	"xogame/internal/service"
)

const (
	sessionCookieName = "token"
	stateTTL          = 10 * time.Minute
)

// AuthHandler handles Google OAuth endpoints.
type AuthHandler struct {
	authService service.AuthService
	states      auth.StateStoreInterface
	cfg         *config.Config
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, states auth.StateStoreInterface, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		states:      states,
		cfg:         cfg,
	}
}

// Hello godoc
// @Summary Liveness greeting
// @Tags auth
// @Produce plain
// @Success 200 {string} string "Hello World"
// @Router /auth/hello [get]
func (h *AuthHandler) Hello(c echo.Context) error {
	return c.String(http.StatusOK, "Hello World")
}

// GoogleLogin godoc
// @Summary Redirect to Google consent page
// @Tags auth
// @Success 302
// @Router /auth/google [get]
func (h *AuthHandler) GoogleLogin(c echo.Context) error {
	state := uuid.New().String()
	if err := h.states.Issue(c.Request().Context(), state, stateTTL); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, errors.ErrorResponse{
			Error: "failed to start login",
			Code:  "OAUTH_STATE_FAILED",
		})
	}
	return c.Redirect(http.StatusTemporaryRedirect, h.authService.AuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary Google OAuth callback
// @Description Completes the login: verifies the CSRF state, exchanges the
// @Description code, finds or creates the user and sets the session cookie.
// @Tags auth
// @Param state query string true "CSRF state"
// @Param code query string true "Authorization code"
// @Success 302
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c echo.Context) error {
	ctx := c.Request().Context()

	state := c.QueryParam("state")
	ok, _ := h.states.Consume(ctx, state)
	if state == "" || !ok {
		httpErr := errors.MapErrorToHTTP(errors.ErrInvalidOAuthState)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	token, _, err := h.authService.LoginWithGoogle(ctx, c.QueryParam("code"))
	if err != nil {
		httpErr := errors.MapErrorToHTTP(err)
		return echo.NewHTTPError(httpErr.StatusCode, httpErr.ToErrorResponse())
	}

	c.SetCookie(h.sessionCookie(token))
	return c.Redirect(http.StatusFound, h.cfg.FrontendURL)
}

// sessionCookie builds the HTTP-only session cookie. Secure and
// SameSite=None are tied to the production flag so local HTTP development
// still works.
func (h *AuthHandler) sessionCookie(token string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.CookieMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Production,
		SameSite: http.SameSiteLaxMode,
	}
	if h.cfg.Production {
		cookie.SameSite = http.SameSiteNoneMode
	}
	return cookie
}
