package api

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	reqdto "resto-booking/internal/handler/dto/request"
	resdto "resto-booking/internal/handler/dto/response"
	"resto-booking/internal/handler/middleware"
	"resto-booking/internal/pkg/errs"
	"resto-booking/internal/usecase/commands"
	"resto-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	frontendURL  string
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, frontendURL string) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		frontendURL:  frontendURL,
	}
}

const (
	stateCookieName   = "oauth_state"
	stateCookieMaxAge = 600 // seconds; consent flows rarely take longer
	stateCookiePath   = "/api/auth"
)

// @Summary Start Google login
// @Description Redirect the browser to the Google consent screen
// @Tags auth
// @Success 307
// @Router /auth/google/login [get]
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state := newState()
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookieName, state, stateCookieMaxAge, stateCookiePath, "", false, true)
	c.Redirect(http.StatusTemporaryRedirect, h.authCommands.ConsentURL(state))
}

// @Summary Google OAuth callback
// @Description Exchange the authorization code, sync the user and redirect to the frontend with a session token
// @Tags auth
// @Param code query string true "Authorization code"
// @Param state query string true "State nonce issued at login"
// @Success 307
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/google/callback [get]
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	var req reqdto.GoogleCallbackRequest
	if bindErr := c.ShouldBindQuery(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Authorization code required",
		})
		return
	}

	saved, cookieErr := c.Cookie(stateCookieName)
	if cookieErr != nil || req.State == "" ||
		subtle.ConstantTimeCompare([]byte(req.State), []byte(saved)) != 1 {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "Invalid state parameter",
		})
		return
	}
	// One-shot nonce
	c.SetCookie(stateCookieName, "", -1, stateCookiePath, "", false, true)

	result, err := h.authCommands.Callback(c.Request.Context(), req.Code)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrAuthenticationFailed):
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication failed",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	redirect := fmt.Sprintf("%s/auth/callback?token=%s&status=%s",
		h.frontendURL, url.QueryEscape(result.Token), url.QueryEscape(result.SyncStatus))
	c.Redirect(http.StatusTemporaryRedirect, redirect)
}

// @Summary Current user
// @Description Get the profile of the authenticated user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.MeResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.userQueries.GetByID(c.Request.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "User not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.MeResponse{User: view})
}

func newState() string {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "state"
	}
	return hex.EncodeToString(buf)
}
