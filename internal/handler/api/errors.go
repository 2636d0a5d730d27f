package api

import (
	"net/http"

	"lab-dashboard/internal/handler/httperr"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type errorMapping struct {
	target  error
	status  int
	message string
}

var errorMappings = []errorMapping{
	{errs.ErrDomainValidationFailed, http.StatusBadRequest, "Invalid request"},
	{errs.ErrInvalidFilter, http.StatusBadRequest, "Invalid filter"},
	{errs.ErrInvalidCursor, http.StatusBadRequest, "Invalid cursor"},
	{errs.ErrEquipmentNotFound, http.StatusNotFound, "Equipment not found"},
	{errs.ErrReservationNotFound, http.StatusNotFound, "Reservation not found"},
	{errs.ErrUserNotFound, http.StatusNotFound, "User not found"},
	{errs.ErrReservationNotOwned, http.StatusForbidden, "Reservation belongs to another user"},
	{errs.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
	{errs.ErrEquipmentNameTaken, http.StatusConflict, "Equipment name already in use"},
	{errs.ErrEquipmentInUse, http.StatusConflict, "Equipment still has reservations"},
	{errs.ErrEmailTaken, http.StatusConflict, "Email already registered"},
	{commands.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrAuthenticationFailed, http.StatusUnauthorized, "Invalid email or password"},
	{commands.ErrUserInactive, http.StatusForbidden, "Account is inactive"},
}

// abortWithUsecaseError maps use-case sentinels to HTTP statuses; anything
// unrecognized is a 500.
func abortWithUsecaseError(c *gin.Context, err error) {
	for _, m := range errorMappings {
		if errs.Is(err, m.target) {
			httperr.AbortWithError(c, m.status, err, m.message, nil)
			return
		}
	}
	httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
}

func abortWithBindError(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
}
