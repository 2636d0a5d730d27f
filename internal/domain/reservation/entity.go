package reservation

import (
	"errors"
	"time"

	"lab-dashboard/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidSlot      = errors.New("reservation date must be YYYY-MM-DD and times HH:MM")
	ErrInvalidOwner     = errors.New("reservation owner must be 1-100 characters")
	ErrNoteTooLong      = errors.New("reservation note must be at most 500 characters")
	ErrEquipmentMissing = errors.New("reservation must reference equipment")
)

type EquipmentRef struct {
	ID   uuid.UUID
	Name string
}

// Reservation is a booking of one equipment item. Overlapping reservations
// are allowed; the availability engine decides which one is active.
type Reservation struct {
	id        uuid.UUID
	equipment EquipmentRef
	slot      Slot
	owner     Owner
	note      Note
	createdBy uuid.UUID
	createdAt time.Time
	updatedAt time.Time
}

func NewReservation(equipment EquipmentRef, slot Slot, owner Owner, note Note, createdBy uuid.UUID, now time.Time) (*Reservation, error) {
	if equipment.ID == uuid.Nil {
		return nil, ErrEquipmentMissing
	}
	return &Reservation{
		id:        uuid.New(),
		equipment: equipment,
		slot:      slot,
		owner:     owner,
		note:      note,
		createdBy: createdBy,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReservation(
	id uuid.UUID,
	equipment EquipmentRef,
	slot Slot,
	owner Owner,
	note Note,
	createdBy uuid.UUID,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:        id,
		equipment: equipment,
		slot:      slot,
		owner:     owner,
		note:      note,
		createdBy: createdBy,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (r *Reservation) Reschedule(slot Slot, now time.Time) {
	r.slot = slot
	r.updatedAt = now
}

func (r *Reservation) Reassign(owner Owner, now time.Time) {
	r.owner = owner
	r.updatedAt = now
}

func (r *Reservation) Annotate(note Note, now time.Time) {
	r.note = note
	r.updatedAt = now
}

func (r *Reservation) MoveTo(equipment EquipmentRef, now time.Time) error {
	if equipment.ID == uuid.Nil {
		return ErrEquipmentMissing
	}
	r.equipment = equipment
	r.updatedAt = now
	return nil
}

// Booking converts the reservation into the engine's input shape.
func (r *Reservation) Booking() availability.Booking {
	return availability.Booking{
		ID:            r.id,
		EquipmentID:   r.equipment.ID,
		EquipmentName: r.equipment.Name,
		Date:          r.slot.Date().String(),
		StartTime:     r.slot.Start().String(),
		EndTime:       r.slot.End().String(),
		Owner:         r.owner.String(),
	}
}

func (r *Reservation) ID() uuid.UUID           { return r.id }
func (r *Reservation) Equipment() EquipmentRef { return r.equipment }
func (r *Reservation) Slot() Slot              { return r.slot }
func (r *Reservation) Owner() Owner            { return r.owner }
func (r *Reservation) Note() Note              { return r.note }
func (r *Reservation) CreatedBy() uuid.UUID    { return r.createdBy }
func (r *Reservation) CreatedAt() time.Time    { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time    { return r.updatedAt }
