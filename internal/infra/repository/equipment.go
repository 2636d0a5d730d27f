package repository

import (
	"context"
	"time"

	"lab-dashboard/internal/domain/equipment"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	lockEquipmentSQL = `
SELECT id, name, type, location, created_at, updated_at
FROM equipment
WHERE id = $1
FOR UPDATE`

	insertEquipmentSQL = `
INSERT INTO equipment (id, name, type, location, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)`

	updateEquipmentSQL = `
UPDATE equipment
SET name = $2, type = $3, location = $4, updated_at = $5
WHERE id = $1`

	deleteEquipmentSQL = `DELETE FROM equipment WHERE id = $1`

	countEquipmentReservationsSQL = `SELECT count(*) FROM reservations WHERE equipment_id = $1`
)

type equipmentRecord struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Location  string    `db:"location"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type EquipmentRepository struct {
	db db.DBTX
}

func NewEquipmentRepository(dbtx db.DBTX) *EquipmentRepository {
	return &EquipmentRepository{db: dbtx}
}

func (r *EquipmentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	rows, err := r.db.Query(ctx, lockEquipmentSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to lock equipment", err)
	}
	rec, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[equipmentRecord])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan equipment", err)
	}

	name, err := equipment.NewName(rec.Name)
	if err != nil {
		return nil, infra.WrapRepoErr("stored equipment name is invalid", err)
	}
	return equipment.ReconstructEquipment(rec.ID, name, rec.Type, rec.Location, rec.CreatedAt, rec.UpdatedAt), nil
}

func (r *EquipmentRepository) Create(ctx context.Context, e *equipment.Equipment) error {
	_, err := r.db.Exec(ctx, insertEquipmentSQL,
		e.ID(), e.Name().String(), e.Type(), e.Location(), e.CreatedAt(), e.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to create equipment", err)
	}
	return nil
}

func (r *EquipmentRepository) Update(ctx context.Context, e *equipment.Equipment) error {
	tag, err := r.db.Exec(ctx, updateEquipmentSQL,
		e.ID(), e.Name().String(), e.Type(), e.Location(), e.UpdatedAt())
	if err != nil {
		return infra.WrapRepoErr("failed to update equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EquipmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, deleteEquipmentSQL, id)
	if err != nil {
		return infra.WrapRepoErr("failed to delete equipment", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("equipment not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *EquipmentRepository) CountReservations(ctx context.Context, id uuid.UUID) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, countEquipmentReservationsSQL, id).Scan(&n); err != nil {
		return 0, infra.WrapRepoErr("failed to count equipment reservations", err)
	}
	return n, nil
}
