package commands

import (
	"context"
	"log/slog"

	"lab-dashboard/internal/domain/equipment"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/pkg/patch"
	"lab-dashboard/internal/usecase/queries"
	"lab-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type EquipmentCommands interface {
	Create(ctx context.Context, in CreateEquipmentInput) (*queries.EquipmentView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateEquipmentInput) (*queries.EquipmentView, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type equipmentCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.EquipmentQueries
	clock   clock.Clock
	logger  *slog.Logger
}

func NewEquipmentCommands(uow shared.UnitOfWork, q queries.EquipmentQueries, clk clock.Clock, logger *slog.Logger) EquipmentCommands {
	return &equipmentCommandsImpl{uow: uow, queries: q, clock: clk, logger: logger}
}

func (uc *equipmentCommandsImpl) Create(ctx context.Context, in CreateEquipmentInput) (*queries.EquipmentView, error) {
	e, err := equipment.NewEquipment(in.Name, in.Type, in.Location, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Equipment().Create(ctx, e)
	})
	if err != nil {
		return nil, mapEquipmentWriteErr(err)
	}

	return uc.queries.GetByID(ctx, e.ID())
}

// Update renames in the same transaction as the reservation relabel so the
// denormalized name never diverges from the equipment row.
func (uc *equipmentCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateEquipmentInput) (*queries.EquipmentView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Equipment().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}

		oldName := e.Name().String()
		name := patch.Coalesce(in.Name, oldName)
		kind := patch.Coalesce(in.Type, e.Type())
		location := patch.Coalesce(in.Location, e.Location())
		if err := e.Update(name, kind, location, uc.clock.Now()); err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}

		if err := tx.Equipment().Update(ctx, e); err != nil {
			return err
		}

		if e.Name().String() == oldName {
			return nil
		}
		relabeled, err := tx.Reservations().RelabelEquipment(ctx, id, e.Name().String())
		if err != nil {
			return err
		}
		uc.logger.Info("equipment renamed",
			"equipment_id", id,
			"old_name", oldName,
			"new_name", e.Name().String(),
			"reservations_relabeled", relabeled)
		return nil
	})
	if err != nil {
		return nil, mapEquipmentWriteErr(err)
	}

	return uc.queries.GetByID(ctx, id)
}

func (uc *equipmentCommandsImpl) Delete(ctx context.Context, id uuid.UUID) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Equipment().FindByIDForUpdate(ctx, id); err != nil {
			return err
		}
		n, err := tx.Equipment().CountReservations(ctx, id)
		if err != nil {
			return err
		}
		if n > 0 {
			return errs.ErrEquipmentInUse
		}
		return tx.Equipment().Delete(ctx, id)
	})
	if err != nil {
		return mapEquipmentWriteErr(err)
	}
	return nil
}

func mapEquipmentWriteErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrEquipmentNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrEquipmentNameTaken)
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.Mark(err, errs.ErrEquipmentInUse)
	default:
		return err
	}
}
