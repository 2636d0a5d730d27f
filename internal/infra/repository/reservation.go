package repository

import (
	"context"

	"lab-dashboard/internal/domain/reservation"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/infra/repository/converter"
	"lab-dashboard/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	lockReservationSQL = `
SELECT id, equipment_id, equipment_name, to_char(date, 'YYYY-MM-DD') AS date,
       start_time, end_time, owner, note, created_by, created_at, updated_at
FROM reservations
WHERE id = $1
FOR UPDATE`

	insertReservationSQL = `
INSERT INTO reservations (
    id, equipment_id, equipment_name, date, start_time, end_time,
    owner, note, created_by, created_at, updated_at
) VALUES ($1, $2, $3, $4::date, $5, $6, $7, $8, $9, $10, $11)`

	updateReservationSQL = `
UPDATE reservations
SET equipment_id = $2, equipment_name = $3, date = $4::date,
    start_time = $5, end_time = $6, owner = $7, note = $8, updated_at = $9
WHERE id = $1`

	deleteReservationSQL = `DELETE FROM reservations WHERE id = $1`

	relabelReservationsSQL = `
UPDATE reservations
SET equipment_name = $2
WHERE equipment_id = $1 AND equipment_name <> $2`
)

type ReservationRepository struct {
	db db.DBTX
}

func NewReservationRepository(dbtx db.DBTX) *ReservationRepository {
	return &ReservationRepository{db: dbtx}
}

func (r *ReservationRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, lockReservationSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock reservation", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[converter.ReservationRecord])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	res, err := converter.ReservationFromRecord(rec)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to convert reservation", err)
	}
	return res, nil
}

func (r *ReservationRepository) Create(ctx context.Context, res *reservation.Reservation) error {
	p := converter.ReservationToInfra(res)
	_, err := r.db.Exec(ctx, insertReservationSQL,
		p.ID, p.EquipmentID, p.EquipmentName, p.Date, p.StartTime, p.EndTime,
		p.Owner, p.Note, p.CreatedBy, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to create reservation", err)
	}
	return nil
}

func (r *ReservationRepository) Update(ctx context.Context, res *reservation.Reservation) error {
	p := converter.ReservationToInfra(res)
	tag, err := r.db.Exec(ctx, updateReservationSQL,
		p.ID, p.EquipmentID, p.EquipmentName, p.Date, p.StartTime, p.EndTime,
		p.Owner, p.Note, p.UpdatedAt)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteReservationSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) RelabelEquipment(ctx context.Context, equipmentID uuid.UUID, name string) (int64, error) {
	tag, err := r.db.Exec(ctx, relabelReservationsSQL, equipmentID, name)
	if err != nil {
		return 0, infra.WrapRepoErr("failed to relabel reservations", err)
	}
	return tag.RowsAffected(), nil
}
