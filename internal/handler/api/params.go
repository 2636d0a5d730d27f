package api

import (
	"net/http"

	"lab-dashboard/internal/handler/httperr"
	"lab-dashboard/internal/handler/middleware"
	"lab-dashboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func parseIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return uuid.Nil, false
	}
	return id, true
}

func actorFrom(c *gin.Context) (commands.Actor, bool) {
	p, ok := middleware.GetPrincipal(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errUnauthenticated, "Unauthorized", nil)
		return commands.Actor{}, false
	}
	return commands.Actor{UserID: p.UserID, Role: p.Role}, true
}
