package response

import (
	"time"

	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID             uuid.UUID  `json:"id"`
	EquipmentID    uuid.UUID  `json:"equipmentId"`
	EquipmentName  string     `json:"equipmentName"`
	Date           string     `json:"date"`
	StartTime      string     `json:"startTime"`
	EndTime        string     `json:"endTime"`
	Owner          string     `json:"owner"`
	Note           string     `json:"note"`
	CreatedBy      *uuid.UUID `json:"createdBy,omitempty"`
	CreatedByEmail *string    `json:"createdByEmail,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type ReservationPageResponse struct {
	Reservations []*ReservationResponse `json:"reservations"`
	NextCursor   *string                `json:"nextCursor,omitempty"`
}

func FromReservationView(v *queries.ReservationView) (*ReservationResponse, error) {
	var resp ReservationResponse
	if err := copier.Copy(&resp, v); err != nil {
		return nil, err
	}
	return &resp, nil
}

func FromReservationPage(page *queries.ReservationPage) (*ReservationPageResponse, error) {
	items := make([]*ReservationResponse, 0, len(page.Items))
	if err := copier.Copy(&items, &page.Items); err != nil {
		return nil, err
	}
	return &ReservationPageResponse{Reservations: items, NextCursor: page.NextCursor}, nil
}
