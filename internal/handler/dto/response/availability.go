package response

import (
	"time"

	"lab-dashboard/internal/domain/availability"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID            uuid.UUID `json:"id"`
	EquipmentID   uuid.UUID `json:"equipmentId"`
	EquipmentName string    `json:"equipmentName"`
	Date          string    `json:"date"`
	StartTime     string    `json:"startTime"`
	EndTime       string    `json:"endTime"`
	Owner         string    `json:"owner"`
}

type EquipmentStatusResponse struct {
	EquipmentID      uuid.UUID          `json:"equipmentId"`
	EquipmentName    string             `json:"equipmentName"`
	EquipmentType    string             `json:"equipmentType,omitempty"`
	Status           string             `json:"status"`
	ActiveBooking    *BookingResponse   `json:"activeBooking"`
	NextAvailableAt  *time.Time         `json:"nextAvailableAt"`
	CurrentOwner     *string            `json:"currentOwner"`
	UpcomingCount    int                `json:"upcomingCount"`
	UpcomingBookings []*BookingResponse `json:"upcomingBookings"`
}

type StatusBoardResponse struct {
	GeneratedAt time.Time                  `json:"generatedAt"`
	Equipment   []*EquipmentStatusResponse `json:"equipment"`
}

type SingleStatusResponse struct {
	GeneratedAt time.Time                `json:"generatedAt"`
	Status      *EquipmentStatusResponse `json:"status"`
}

func FromStatusBoard(b *queries.StatusBoard) *StatusBoardResponse {
	items := make([]*EquipmentStatusResponse, len(b.Items))
	for i, v := range b.Items {
		items[i] = FromStatusView(v)
	}
	return &StatusBoardResponse{GeneratedAt: b.GeneratedAt, Equipment: items}
}

func FromEquipmentStatus(s *queries.EquipmentStatus) *SingleStatusResponse {
	return &SingleStatusResponse{GeneratedAt: s.GeneratedAt, Status: FromStatusView(s.View)}
}

func FromStatusView(v availability.StatusView) *EquipmentStatusResponse {
	upcoming := make([]*BookingResponse, len(v.UpcomingBookings))
	for i, b := range v.UpcomingBookings {
		upcoming[i] = fromBooking(b)
	}

	resp := &EquipmentStatusResponse{
		EquipmentID:      v.EquipmentID,
		EquipmentName:    v.EquipmentName,
		EquipmentType:    v.EquipmentType,
		Status:           v.Status.String(),
		NextAvailableAt:  v.NextAvailableAt,
		CurrentOwner:     v.CurrentOwner,
		UpcomingCount:    len(upcoming),
		UpcomingBookings: upcoming,
	}
	if v.ActiveBooking != nil {
		resp.ActiveBooking = fromBooking(*v.ActiveBooking)
	}
	return resp
}

func fromBooking(b availability.Booking) *BookingResponse {
	return &BookingResponse{
		ID:            b.ID,
		EquipmentID:   b.EquipmentID,
		EquipmentName: b.EquipmentName,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Owner:         b.Owner,
	}
}
