package converter

import (
	"time"

	"lab-dashboard/internal/domain/reservation"
	"lab-dashboard/internal/pkg/pgconv"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

// ReservationRecord mirrors a reservations row with the date rendered as text.
type ReservationRecord struct {
	ID            uuid.UUID   `db:"id"`
	EquipmentID   uuid.UUID   `db:"equipment_id"`
	EquipmentName string      `db:"equipment_name"`
	Date          string      `db:"date"`
	StartTime     string      `db:"start_time"`
	EndTime       string      `db:"end_time"`
	Owner         string      `db:"owner"`
	Note          string      `db:"note"`
	CreatedBy     pgtype.UUID `db:"created_by"`
	CreatedAt     time.Time   `db:"created_at"`
	UpdatedAt     time.Time   `db:"updated_at"`
}

// ReservationParams are positional arguments for insert and update statements.
type ReservationParams struct {
	ID            uuid.UUID
	EquipmentID   uuid.UUID
	EquipmentName string
	Date          string
	StartTime     string
	EndTime       string
	Owner         string
	Note          string
	CreatedBy     pgtype.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReservationToInfra(res *reservation.Reservation) ReservationParams {
	slot := res.Slot()
	createdBy := res.CreatedBy()

	return ReservationParams{
		ID:            res.ID(),
		EquipmentID:   res.Equipment().ID,
		EquipmentName: res.Equipment().Name,
		Date:          slot.Date().String(),
		StartTime:     slot.Start().String(),
		EndTime:       slot.End().String(),
		Owner:         res.Owner().String(),
		Note:          res.Note().String(),
		CreatedBy:     pgconv.UUIDPtrToPgtype(&createdBy),
		CreatedAt:     res.CreatedAt(),
		UpdatedAt:     res.UpdatedAt(),
	}
}

func ReservationFromRecord(rec ReservationRecord) (*reservation.Reservation, error) {
	slot, err := reservation.NewSlot(rec.Date, rec.StartTime, rec.EndTime)
	if err != nil {
		return nil, errors.Wrapf(err, "reservation %s has an invalid slot", rec.ID)
	}
	owner, err := reservation.NewOwner(rec.Owner)
	if err != nil {
		return nil, errors.Wrapf(err, "reservation %s has an invalid owner", rec.ID)
	}
	note, err := reservation.NewNote(rec.Note)
	if err != nil {
		return nil, errors.Wrapf(err, "reservation %s has an invalid note", rec.ID)
	}

	var createdBy uuid.UUID
	if id := pgconv.UUIDPtrFromPgtype(rec.CreatedBy); id != nil {
		createdBy = *id
	}

	return reservation.ReconstructReservation(
		rec.ID,
		reservation.EquipmentRef{ID: rec.EquipmentID, Name: rec.EquipmentName},
		slot,
		owner,
		note,
		createdBy,
		rec.CreatedAt,
		rec.UpdatedAt,
	), nil
}
