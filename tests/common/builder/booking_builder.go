//go:build unit || e2e

package builder

import (
	"time"

	"lab-dashboard/internal/domain/availability"
	reqdto "lab-dashboard/internal/handler/dto/request"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

// BookingBuilder builds reservations in every shape the layers exchange them.
type BookingBuilder struct {
	ID            uuid.UUID
	EquipmentID   uuid.UUID
	EquipmentName string
	Date          string
	StartTime     string
	EndTime       string
	Owner         string
	Note          string
	CreatedBy     *uuid.UUID
	Now           time.Time
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		ID:            uuid.New(),
		EquipmentID:   uuid.New(),
		EquipmentName: "Confocal Microscope",
		Date:          "2024-06-01",
		StartTime:     "09:00",
		EndTime:       "10:00",
		Owner:         "Alice",
		Now:           time.Date(2024, time.June, 1, 8, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

// Build methods
func (b *BookingBuilder) BuildBooking() availability.Booking {
	return availability.Booking{
		ID:            b.ID,
		EquipmentID:   b.EquipmentID,
		EquipmentName: b.EquipmentName,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Owner:         b.Owner,
	}
}

func (b *BookingBuilder) BuildView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:            b.ID,
		EquipmentID:   b.EquipmentID,
		EquipmentName: b.EquipmentName,
		Date:          b.Date,
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		Owner:         b.Owner,
		Note:          b.Note,
		CreatedBy:     b.CreatedBy,
		CreatedAt:     b.Now,
		UpdatedAt:     b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateReservationRequest {
	req := reqdto.CreateReservationRequest{
		EquipmentID: b.EquipmentID,
		Date:        b.Date,
		StartTime:   b.StartTime,
		EndTime:     b.EndTime,
	}
	if b.Owner != "" {
		owner := b.Owner
		req.Owner = &owner
	}
	if b.Note != "" {
		note := b.Note
		req.Note = &note
	}
	return req
}

// Fluent builder methods
func (b *BookingBuilder) WithID(id uuid.UUID) *BookingBuilder {
	b.ID = id
	return b
}

func (b *BookingBuilder) ForEquipment(e availability.EquipmentItem) *BookingBuilder {
	b.EquipmentID = e.ID
	b.EquipmentName = e.Name
	return b
}

func (b *BookingBuilder) On(date string) *BookingBuilder {
	b.Date = date
	return b
}

func (b *BookingBuilder) Between(start, end string) *BookingBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *BookingBuilder) OwnedBy(owner string) *BookingBuilder {
	b.Owner = owner
	return b
}

func (b *BookingBuilder) WithNote(note string) *BookingBuilder {
	b.Note = note
	return b
}

func (b *BookingBuilder) CreatedByUser(id uuid.UUID) *BookingBuilder {
	b.CreatedBy = &id
	return b
}

// AsLegacy drops the equipment id so the booking is matched by name only.
func (b *BookingBuilder) AsLegacy() *BookingBuilder {
	b.EquipmentID = uuid.Nil
	return b
}
