package api

import (
	"net/http"

	reqdto "lab-dashboard/internal/handler/dto/request"
	resdto "lab-dashboard/internal/handler/dto/response"
	"lab-dashboard/internal/handler/validation"
	"lab-dashboard/internal/usecase/commands"
	"lab-dashboard/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

// NewReservationHandler installs the civildate and clocktime binding tags its
// request DTOs rely on.
func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) (*ReservationHandler, error) {
	if err := validation.Register(); err != nil {
		return nil, err
	}
	return &ReservationHandler{cmds: cmds, q: q}, nil
}

// @Summary Create reservation
// @Description Book equipment for a date and time range. Overlapping bookings are accepted.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations [post]
func (h *ReservationHandler) Create(c *gin.Context) {
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Create(c.Request.Context(), req.ToInput(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}

	c.Header("Location", "/api/reservations/"+view.ID.String())
	h.respond(c, http.StatusCreated, view)
}

// @Summary List reservations
// @Description Reservations in schedule order with keyset pagination
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param equipmentId query string false "Equipment ID"
// @Param from query string false "First date (YYYY-MM-DD)"
// @Param to query string false "Last date (YYYY-MM-DD)"
// @Param cursor query string false "Cursor from a previous page"
// @Param limit query int false "Max items (default 50, max 200)"
// @Success 200 {object} resdto.ReservationPageResponse
// @Failure 400 {object} httperr.Response
// @Router /reservations [get]
func (h *ReservationHandler) List(c *gin.Context) {
	var query reqdto.ListReservationsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		abortWithBindError(c, err)
		return
	}

	page, err := h.q.List(c.Request.Context(), query.ToFilter(), query.ToCursor(), query.Limit)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	resp, err := resdto.FromReservationPage(page)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [get]
func (h *ReservationHandler) Get(c *gin.Context) {
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

// @Summary Update reservation
// @Description Staff may change their own reservations; admins may change any
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body reqdto.UpdateReservationRequest true "Update reservation request"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [patch]
func (h *ReservationHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	var req reqdto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithBindError(c, err)
		return
	}

	view, err := h.cmds.Update(c.Request.Context(), id, req.ToInput(), actor)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	h.respond(c, http.StatusOK, view)
}

// @Summary Delete reservation
// @Tags reservations
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204 "No Content"
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /reservations/{id} [delete]
func (h *ReservationHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	actor, ok := actorFrom(c)
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id, actor); err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ReservationHandler) respond(c *gin.Context, status int, view *queries.ReservationView) {
	resp, err := resdto.FromReservationView(view)
	if err != nil {
		abortWithUsecaseError(c, err)
		return
	}
	c.JSON(status, resp)
}
