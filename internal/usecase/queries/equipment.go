package queries

import (
	"context"

	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/pkg/errs"

	"github.com/google/uuid"
)

type EquipmentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	List(ctx context.Context) ([]*EquipmentView, error)
}

type EquipmentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error)
	FindAll(ctx context.Context) ([]*EquipmentView, error)
}

type equipmentQueriesImpl struct {
	readStore EquipmentReadStore
}

func NewEquipmentQueries(readStore EquipmentReadStore) EquipmentQueries {
	return &equipmentQueriesImpl{readStore: readStore}
}

func (q *equipmentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*EquipmentView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrEquipmentNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *equipmentQueriesImpl) List(ctx context.Context) ([]*EquipmentView, error) {
	return q.readStore.FindAll(ctx)
}
