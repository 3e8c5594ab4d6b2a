package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/jakiurshovon/Purchase-Web-App/internal/core/ports/services"
	"github.com/jakiurshovon/Purchase-Web-App/internal/dto"
	"github.com/jakiurshovon/Purchase-Web-App/internal/middleware"
	"github.com/jakiurshovon/Purchase-Web-App/internal/utils"
	"github.com/jakiurshovon/Purchase-Web-App/pkg/config"
)

const oauthStateCookie = "oauth_state"

// GoogleOAuthHandler handles the Google sign-in flow.
type GoogleOAuthHandler struct {
	oauthService portssvc.GoogleOAuthSvcFacade
	tokenService portssvc.TokenSvcFacade
	cfg          *config.Config
}

// NewGoogleOAuthHandler creates a new GoogleOAuthHandler.
func NewGoogleOAuthHandler(os portssvc.GoogleOAuthSvcFacade, ts portssvc.TokenSvcFacade, cfg *config.Config) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{oauthService: os, tokenService: ts, cfg: cfg}
}

// registerGoogleOAuthRoutes sets up the routes for Google sign-in.
func registerGoogleOAuthRoutes(rg *gin.RouterGroup, cfg *config.Config, services *portssvc.ServiceContainer) {
	h := NewGoogleOAuthHandler(services.GoogleOAuthSvc, services.TokenSvc, cfg)

	google := rg.Group("/google")
	{
		google.GET("/login", h.Login)
		google.GET("/callback", h.Callback)
		google.POST("/exchange", h.Exchange)
	}
}

// Login godoc
// @Summary Start Google sign-in
// @Description Redirects the browser to Google's consent page
// @Tags auth
// @Success 307 "Redirect to Google"
// @Router /auth/google/login [get]
func (h *GoogleOAuthHandler) Login(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	state, err := utils.GenerateSecureRandomString(16)
	if err != nil {
		logger.Error("Failed to generate oauth state", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start Google sign-in"})
		return
	}

	// Short-lived state cookie for CSRF protection of the callback
	c.SetCookie(oauthStateCookie, state, 600, "/", "", h.cfg.IsProduction, true)
	c.Redirect(http.StatusTemporaryRedirect, h.oauthService.GetAuthCodeURL(state))
}

// Callback godoc
// @Summary Google sign-in callback
// @Description Exchanges the authorization code and issues a JWT access token
// @Tags auth
// @Produce  json
// @Param   code query string true "Authorization code"
// @Param   state query string true "CSRF state"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid state or code"
// @Failure 401 {object} map[string]string "Sign-in failed"
// @Router /auth/google/callback [get]
func (h *GoogleOAuthHandler) Callback(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	expectedState, err := c.Cookie(oauthStateCookie)
	if err != nil || expectedState == "" || c.Query("state") != expectedState {
		logger.Warn("OAuth state mismatch")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid OAuth state"})
		return
	}
	// State is single use
	c.SetCookie(oauthStateCookie, "", -1, "/", "", h.cfg.IsProduction, true)

	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing authorization code"})
		return
	}

	user, err := h.oauthService.ExchangeCodeForUser(c.Request.Context(), code)
	if err != nil {
		logger.Error("Google sign-in failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	token, err := h.tokenService.GenerateToken(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to generate token after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete sign-in"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}

// Exchange godoc
// @Summary Exchange a Google authorization code
// @Description For frontends running the OAuth redirect themselves: exchanges the code and issues a JWT access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.ExchangeCodeRequest true "Authorization code"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Sign-in failed"
// @Router /auth/google/exchange [post]
func (h *GoogleOAuthHandler) Exchange(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": bindingErrorMessage(err)})
		return
	}

	user, err := h.oauthService.ExchangeCodeForUser(c.Request.Context(), req.Code)
	if err != nil {
		logger.Error("Google code exchange failed", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Google sign-in failed"})
		return
	}

	token, err := h.tokenService.GenerateToken(c.Request.Context(), user.UserID)
	if err != nil {
		logger.Error("Failed to generate token after Google sign-in", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to complete sign-in"})
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{Token: token, User: dto.ToUserResponse(user)})
}
