package commands

import (
	"lab-dashboard/internal/domain/user"

	"github.com/google/uuid"
)

// Actor is the authenticated caller of a write operation.
type Actor struct {
	UserID uuid.UUID
	Role   user.Role
}

func (a Actor) IsAdmin() bool {
	return a.Role.AtLeast(user.RoleAdmin)
}

// Command inputs are plain values so the write side never depends on handler DTOs.
type CreateEquipmentInput struct {
	Name     string
	Type     string
	Location string
}

type UpdateEquipmentInput struct {
	Name     *string
	Type     *string
	Location *string
}

type CreateReservationInput struct {
	EquipmentID uuid.UUID
	Date        string
	StartTime   string
	EndTime     string
	// Owner defaults to the actor's display name when nil or blank.
	Owner *string
	Note  *string
}

type UpdateReservationInput struct {
	EquipmentID *uuid.UUID
	Date        *string
	StartTime   *string
	EndTime     *string
	Owner       *string
	Note        *string
}

type LoginInput struct {
	Email    string
	Password string
}

type RegisterUserInput struct {
	Email       string
	DisplayName string
	Password    string
	Role        string
}
