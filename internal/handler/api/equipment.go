package api

import (
	"net/http"

	reqdto "lab-dashboard/internal/handler/dto/request"
	resdto "lab-dashboard/internal/handler/dto/response"
	"lab-dashboard/internal/usecase/commands"
	"lab-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type EquipmentHandler struct {
	cmds commands.EquipmentCommands
	q    queries.EquipmentQueries
}

func NewEquipmentHandler(cmds commands.EquipmentCommands, q queries.EquipmentQueries) *EquipmentHandler {
	return &EquipmentHandler{cmds: cmds, q: q}
}

// @Summary Create equipment
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateEquipmentRequest true "Create equipment request"
// @Success 201 {object} resdto.EquipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /equipment [post]
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req reqdto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/equipment/"+view.ID.String())
	h.respond(c, http.StatusCreated, view)
}

// @Summary List equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.EquipmentResponse
// @Router /equipment [get]
func (h *EquipmentHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromEquipmentList(views)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"equipment": resp})
}

// @Summary Get equipment
// @Tags equipment
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 404 {object} httperr.Response
// @Router /equipment/{id} [get]
func (h *EquipmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Update equipment
// @Description Partial update. Renaming also relabels existing reservations.
// @Tags equipment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Param request body reqdto.UpdateEquipmentRequest true "Update equipment request"
// @Success 200 {object} resdto.EquipmentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /equipment/{id} [patch]
func (h *EquipmentHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Delete equipment
// @Description Rejected with 409 while reservations still reference the equipment
// @Tags equipment
// @Security BearerAuth
// @Param id path string true "Equipment ID"
// @Success 204 "No Content"
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /equipment/{id} [delete]
func (h *EquipmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *EquipmentHandler) respond(c *gin.Context, status int, view *queries.EquipmentView) {
	resp, err := resdto.FromEquipmentView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, resp)
}
