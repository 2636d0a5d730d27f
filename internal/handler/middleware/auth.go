package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/handler/httperr"
	"lab-dashboard/internal/pkg/cookie"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var (
	errTokenMissing      = errs.New("access token missing")
	errInsufficientRole  = errs.New("insufficient role")
	errPrincipalNotFound = errs.New("principal not set")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
	logger         *slog.Logger
}

const ctxPrincipalKey = "principal"

func NewAuthMiddleware(tokenValidator usecase.TokenValidator, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
		logger:         logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errTokenMissing, "Access token required", nil)
			return
		}

		principal, err := m.tokenValidator.Validate(c.Request.Context(), token)
		if err != nil {
			m.logger.Warn("token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid or expired token", nil)
			return
		}

		c.Set(ctxPrincipalKey, *principal)
		c.Next()
	}
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, ok := GetPrincipal(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusInternalServerError, errPrincipalNotFound, "Internal server error", nil)
			return
		}

		if !p.Role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errInsufficientRole, "Insufficient permissions", nil)
			return
		}

		c.Next()
	}
}

// Cookie first, then "Authorization: Bearer".
func extractToken(c *gin.Context) string {
	if token := cookie.GetAccessToken(c); token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimSpace(authHeader[len("Bearer "):])
	}
	return ""
}

func GetPrincipal(c *gin.Context) (usecase.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return usecase.Principal{}, false
	}
	p, ok := v.(usecase.Principal)
	return p, ok
}

func GetUserID(c *gin.Context) (uuid.UUID, bool) {
	p, ok := GetPrincipal(c)
	if !ok {
		return uuid.Nil, false
	}
	return p.UserID, true
}
