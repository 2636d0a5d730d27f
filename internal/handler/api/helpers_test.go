//go:build unit

package api_test

import (
	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// fakeAuth stands in for RequireAuth: requests carrying an Authorization
// header are treated as the given principal.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") != "" {
			c.Set("principal", usecase.Principal{UserID: userID, Role: role})
		}
		c.Next()
	}
}
