package readstore

import (
	"context"
	"time"

	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/pkg/pgconv"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	equipmentColumns = `id, name, type, location, created_at, updated_at`

	findEquipmentByIDSQL = `SELECT ` + equipmentColumns + ` FROM equipment WHERE id = $1`
	listEquipmentSQL     = `SELECT ` + equipmentColumns + ` FROM equipment ORDER BY name, id`
)

type equipmentRow struct {
	ID        uuid.UUID `db:"id"`
	Name      string    `db:"name"`
	Type      string    `db:"type"`
	Location  string    `db:"location"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r equipmentRow) toView() *queries.EquipmentView {
	return &queries.EquipmentView{
		ID:        r.ID,
		Name:      r.Name,
		Type:      r.Type,
		Location:  r.Location,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

type EquipmentReadStore struct {
	db db.DBTX
}

func NewEquipmentReadStore(dbtx db.DBTX) *EquipmentReadStore {
	return &EquipmentReadStore{db: dbtx}
}

func (r *EquipmentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.EquipmentView, error) {
	rows, err := r.db.Query(ctx, findEquipmentByIDSQL, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get equipment by id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[equipmentRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("equipment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan equipment", err)
	}
	return row.toView(), nil
}

func (r *EquipmentReadStore) FindAll(ctx context.Context) ([]*queries.EquipmentView, error) {
	rows, err := r.db.Query(ctx, listEquipmentSQL)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[equipmentRow])
	if err != nil {
		return nil, infra.WrapRepoErr("failed to scan equipment list", err)
	}
	views := make([]*queries.EquipmentView, len(list))
	for i, row := range list {
		views[i] = row.toView()
	}
	return views, nil
}
