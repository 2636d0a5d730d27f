package api

import (
	"net/http"

	reqdto "lab-dashboard/internal/handler/dto/request"
	resdto "lab-dashboard/internal/handler/dto/response"
	"lab-dashboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	cmds commands.UserCommands
}

func NewUserHandler(cmds commands.UserCommands) *UserHandler {
	return &UserHandler{cmds: cmds}
}

// @Summary Register user
// @Description Create a lab member account (admin only)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterUserRequest true "Register user request"
// @Success 201 {object} resdto.UserResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /users [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req reqdto.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Register(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/users/"+view.ID.String())
	c.JSON(http.StatusCreated, resdto.FromUserView(view))
}
