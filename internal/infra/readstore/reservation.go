package readstore

import (
	"context"
	"fmt"
	"strings"
	"time"

	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/infra/db"
	"lab-dashboard/internal/pkg/pgconv"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const reservationSelect = `
SELECT r.id,
       r.equipment_id,
       r.equipment_name,
       to_char(r.date, 'YYYY-MM-DD') AS date,
       r.start_time,
       r.end_time,
       r.owner,
       r.note,
       r.created_by,
       u.email AS created_by_email,
       r.created_at,
       r.updated_at
FROM reservations r
LEFT JOIN users u ON u.id = r.created_by`

const scheduleOrder = ` ORDER BY r.date, r.start_time, r.id`

type reservationRow struct {
	ID             uuid.UUID   `db:"id"`
	EquipmentID    uuid.UUID   `db:"equipment_id"`
	EquipmentName  string      `db:"equipment_name"`
	Date           string      `db:"date"`
	StartTime      string      `db:"start_time"`
	EndTime        string      `db:"end_time"`
	Owner          string      `db:"owner"`
	Note           string      `db:"note"`
	CreatedBy      pgtype.UUID `db:"created_by"`
	CreatedByEmail pgtype.Text `db:"created_by_email"`
	CreatedAt      time.Time   `db:"created_at"`
	UpdatedAt      time.Time   `db:"updated_at"`
}

func (r reservationRow) toView() *queries.ReservationView {
	return &queries.ReservationView{
		ID:             r.ID,
		EquipmentID:    r.EquipmentID,
		EquipmentName:  r.EquipmentName,
		Date:           r.Date,
		StartTime:      r.StartTime,
		EndTime:        r.EndTime,
		Owner:          r.Owner,
		Note:           r.Note,
		CreatedBy:      pgconv.UUIDPtrFromPgtype(r.CreatedBy),
		CreatedByEmail: pgconv.StringPtrFromPgtype(r.CreatedByEmail),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
}

type ReservationReadStore struct {
	db db.DBTX
}

func NewReservationReadStore(dbtx db.DBTX) *ReservationReadStore {
	return &ReservationReadStore{db: dbtx}
}

func (r *ReservationReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, reservationSelect+` WHERE r.id = $1`, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to get reservation by id", err)
	}
	row, err := pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}
	return row.toView(), nil
}

// List returns reservations in schedule order, starting after the given key.
func (r *ReservationReadStore) List(ctx context.Context, filter queries.ReservationFilter, after *queries.ReservationKey, limit int32) ([]*queries.ReservationView, error) {
	var w whereBuilder
	if filter.EquipmentID != nil {
		w.add("r.equipment_id = $%d", *filter.EquipmentID)
	}
	if filter.From != nil {
		w.add("r.date >= $%d::date", *filter.From)
	}
	if filter.To != nil {
		w.add("r.date <= $%d::date", *filter.To)
	}
	if after != nil {
		w.addTuple("(r.date, r.start_time, r.id) > ($%d::date, $%d, $%d)", after.Date, after.StartTime, after.ID)
	}
	w.args = append(w.args, limit)
	sql := reservationSelect + w.clause() + scheduleOrder + fmt.Sprintf(" LIMIT $%d", len(w.args))

	return r.collect(ctx, "failed to list reservations", sql, w.args...)
}

// FindFrom returns every reservation dated on or after fromDate.
func (r *ReservationReadStore) FindFrom(ctx context.Context, fromDate string, equipmentID *uuid.UUID) ([]*queries.ReservationView, error) {
	var w whereBuilder
	w.add("r.date >= $%d::date", fromDate)
	if equipmentID != nil {
		w.add("r.equipment_id = $%d", *equipmentID)
	}
	sql := reservationSelect + w.clause() + scheduleOrder

	return r.collect(ctx, "failed to load reservations for availability", sql, w.args...)
}

func (r *ReservationReadStore) collect(ctx context.Context, msg, sql string, args ...any) ([]*queries.ReservationView, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	list, err := pgx.CollectRows(rows, pgx.RowToStructByName[reservationRow])
	if err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	views := make([]*queries.ReservationView, len(list))
	for i, row := range list {
		views[i] = row.toView()
	}
	return views, nil
}

type whereBuilder struct {
	conds []string
	args  []any
}

func (w *whereBuilder) add(cond string, arg any) {
	w.args = append(w.args, arg)
	w.conds = append(w.conds, fmt.Sprintf(cond, len(w.args)))
}

func (w *whereBuilder) addTuple(cond string, args ...any) {
	idx := make([]any, len(args))
	for i, a := range args {
		w.args = append(w.args, a)
		idx[i] = len(w.args)
	}
	w.conds = append(w.conds, fmt.Sprintf(cond, idx...))
}

func (w *whereBuilder) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}
