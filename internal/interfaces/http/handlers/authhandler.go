package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	userusecases "lumistream/internal/application/user/usecases"
	"lumistream/internal/interfaces/http/middleware"
	"lumistream/internal/shared/config"
	"lumistream/internal/shared/logger"
	"lumistream/internal/shared/utils"
)

type AuthHandler struct {
	login   userusecases.LoginExecutor
	current userusecases.GetCurrentUserExecutor
	authCfg *config.AuthConfig
	logger  logger.Interface
}

func NewAuthHandler(
	login userusecases.LoginExecutor,
	current userusecases.GetCurrentUserExecutor,
	authCfg *config.AuthConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		login:   login,
		current: current,
		authCfg: authCfg,
		logger:  logger,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates by email and password, then issues the session token
// both as an HTTP-only cookie and in the response body.
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.login.Execute(c.Request.Context(), userusecases.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.SetCookie(
		middleware.AccessTokenCookie,
		result.Token,
		int(result.ExpiresIn),
		"/",
		h.authCfg.CookieDomain,
		h.authCfg.CookieSecure,
		true,
	)

	utils.SuccessResponse(c, http.StatusOK, "Login successful", gin.H{
		"token":      result.Token,
		"expires_in": result.ExpiresIn,
		"user": gin.H{
			"id":    result.UserID,
			"email": result.Email,
			"name":  result.Name,
			"role":  result.Role,
		},
	})
}

// Logout clears the session cookie. The token itself is stateless so there
// is nothing to revoke server side.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(
		middleware.AccessTokenCookie,
		"",
		-1,
		"/",
		h.authCfg.CookieDomain,
		h.authCfg.CookieSecure,
		true,
	)

	utils.SuccessResponse(c, http.StatusOK, "Logged out", nil)
}

func (h *AuthHandler) Me(c *gin.Context) {
	result, err := h.current.Execute(c.Request.Context(), middleware.CurrentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"id":    result.UserID,
		"email": result.Email,
		"name":  result.Name,
		"role":  result.Role,
	})
}
