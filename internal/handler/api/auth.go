package api

import (
	"net/http"

	reqdto "lab-dashboard/internal/handler/dto/request"
	resdto "lab-dashboard/internal/handler/dto/response"
	"lab-dashboard/internal/handler/httperr"
	"lab-dashboard/internal/handler/middleware"
	"lab-dashboard/internal/pkg/config"
	"lab-dashboard/internal/pkg/cookie"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/usecase/commands"
	"lab-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

var errUnauthenticated = errs.New("unauthenticated")

type AuthHandler struct {
	authCommands commands.AuthCommands
	userQueries  queries.UserQueries
	cookieConfig config.CookieConfig
}

func NewAuthHandler(authCommands commands.AuthCommands, userQueries queries.UserQueries, cfg config.Config) *AuthHandler {
	return &AuthHandler{
		authCommands: authCommands,
		userQueries:  userQueries,
		cookieConfig: cfg.Cookie,
	}
}

// @Summary User login
// @Description Login with email and password. Sets an HttpOnly access_token cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body reqdto.LoginRequest true "Login request"
// @Success 200 {object} resdto.LoginResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req reqdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	result, err := h.authCommands.Login(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	cookie.SetAccessToken(c, h.cookieConfig, result.AccessToken, result.ExpiresIn)
	c.JSON(http.StatusOK, resdto.LoginResponse{
		AccessToken: result.AccessToken,
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		UserID:      result.UserID.String(),
		Role:        result.Role.String(),
	})
}

// @Summary User logout
// @Description Clears the access token cookie
// @Tags auth
// @Security BearerAuth
// @Success 204 "No Content"
// @Failure 401 {object} httperr.Response
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	cookie.ClearAccessToken(c, h.cookieConfig)
	c.Status(http.StatusNoContent)
}

// @Summary Get current user
// @Description Get current authenticated user information
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} resdto.UserResponse
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return
	}

	view, err := h.userQueries.GetCurrentUser(c.Request.Context(), userID)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUserView(view))
}
