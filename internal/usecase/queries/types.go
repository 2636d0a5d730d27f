package queries

import (
	"time"

	"lab-dashboard/internal/domain/availability"

	"github.com/google/uuid"
)

// EquipmentView represents read-optimized equipment data
type EquipmentView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (v *EquipmentView) Item() availability.EquipmentItem {
	return availability.EquipmentItem{ID: v.ID, Name: v.Name, Type: v.Type}
}

// ReservationView represents read-optimized reservation data
type ReservationView struct {
	ID             uuid.UUID  `json:"id"`
	EquipmentID    uuid.UUID  `json:"equipment_id"`
	EquipmentName  string     `json:"equipment_name"`
	Date           string     `json:"date"`
	StartTime      string     `json:"start_time"`
	EndTime        string     `json:"end_time"`
	Owner          string     `json:"owner"`
	Note           string     `json:"note"`
	CreatedBy      *uuid.UUID `json:"created_by,omitempty"`
	CreatedByEmail *string    `json:"created_by_email,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func (v *ReservationView) Booking() availability.Booking {
	return availability.Booking{
		ID:            v.ID,
		EquipmentID:   v.EquipmentID,
		EquipmentName: v.EquipmentName,
		Date:          v.Date,
		StartTime:     v.StartTime,
		EndTime:       v.EndTime,
		Owner:         v.Owner,
	}
}

// AuthorizedUserView represents read-optimized user data with authorization info
type AuthorizedUserView struct {
	ID          uuid.UUID `json:"id"`
	Email       string    `json:"email"`
	DisplayName string    `json:"display_name"`
	Role        string    `json:"role"`
	IsActive    bool      `json:"is_active"`
}

type ReservationFilter struct {
	EquipmentID *uuid.UUID
	From        *string
	To          *string
}

// ReservationKey is the keyset position of a reservation in schedule order.
type ReservationKey struct {
	Date      string
	StartTime string
	ID        uuid.UUID
}

// StatusBoard is a snapshot of every equipment item's availability.
type StatusBoard struct {
	GeneratedAt time.Time
	Items       []availability.StatusView
}

type EquipmentStatus struct {
	GeneratedAt time.Time
	View        availability.StatusView
}
