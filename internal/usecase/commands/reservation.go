package commands

import (
	"context"
	"log/slog"
	"strings"

	"lab-dashboard/internal/domain/reservation"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/pkg/patch"
	"lab-dashboard/internal/usecase/queries"
	"lab-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
)

type ReservationCommands interface {
	Create(ctx context.Context, in CreateReservationInput, actor Actor) (*queries.ReservationView, error)
	Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput, actor Actor) (*queries.ReservationView, error)
	Delete(ctx context.Context, id uuid.UUID, actor Actor) error
}

type reservationCommandsImpl struct {
	uow     shared.UnitOfWork
	queries queries.ReservationQueries
	clock   clock.Clock
	logger  *slog.Logger
}

func NewReservationCommands(uow shared.UnitOfWork, q queries.ReservationQueries, clk clock.Clock, logger *slog.Logger) ReservationCommands {
	return &reservationCommandsImpl{uow: uow, queries: q, clock: clk, logger: logger}
}

// Create stores the reservation as given. Overlaps with other reservations
// are accepted; availability picks the earliest matching one as active.
func (uc *reservationCommandsImpl) Create(ctx context.Context, in CreateReservationInput, actor Actor) (*queries.ReservationView, error) {
	slot, err := reservation.NewSlot(in.Date, in.StartTime, in.EndTime)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	note, err := reservation.NewNote(patch.Coalesce(in.Note, ""))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidationFailed)
	}

	var createdID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		e, err := tx.Equipment().FindByIDForUpdate(ctx, in.EquipmentID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrEquipmentNotFound)
			}
			return err
		}

		owner, err := uc.resolveOwner(ctx, tx, in.Owner, actor)
		if err != nil {
			return err
		}

		ref := reservation.EquipmentRef{ID: e.ID(), Name: e.Name().String()}
		res, err := reservation.NewReservation(ref, slot, owner, note, actor.UserID, uc.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		createdID = res.ID()
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("reservation created", "reservation_id", createdID, "equipment_id", in.EquipmentID, "user_id", actor.UserID)

	// Read-after-write: Get the complete reservation view from read store
	return uc.queries.GetByID(ctx, createdID)
}

func (uc *reservationCommandsImpl) Update(ctx context.Context, id uuid.UUID, in UpdateReservationInput, actor Actor) (*queries.ReservationView, error) {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := uc.lockOwned(ctx, tx, id, actor)
		if err != nil {
			return err
		}
		now := uc.clock.Now()

		if in.EquipmentID != nil && *in.EquipmentID != res.Equipment().ID {
			e, err := tx.Equipment().FindByIDForUpdate(ctx, *in.EquipmentID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.Mark(err, errs.ErrEquipmentNotFound)
				}
				return err
			}
			if err := res.MoveTo(reservation.EquipmentRef{ID: e.ID(), Name: e.Name().String()}, now); err != nil {
				return errs.Mark(err, errs.ErrDomainValidationFailed)
			}
		}

		current := res.Slot()
		slot, err := reservation.NewSlot(
			patch.Coalesce(in.Date, current.Date().String()),
			patch.Coalesce(in.StartTime, current.Start().String()),
			patch.Coalesce(in.EndTime, current.End().String()),
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidationFailed)
		}
		res.Reschedule(slot, now)

		if in.Owner != nil {
			owner, err := reservation.NewOwner(*in.Owner)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidationFailed)
			}
			res.Reassign(owner, now)
		}
		if in.Note != nil {
			note, err := reservation.NewNote(*in.Note)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidationFailed)
			}
			res.Annotate(note, now)
		}

		return tx.Reservations().Update(ctx, res)
	})
	if err != nil {
		return nil, err
	}
	return uc.queries.GetByID(ctx, id)
}

func (uc *reservationCommandsImpl) Delete(ctx context.Context, id uuid.UUID, actor Actor) error {
	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := uc.lockOwned(ctx, tx, id, actor); err != nil {
			return err
		}
		if err := tx.Reservations().Delete(ctx, id); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(err, errs.ErrReservationNotFound)
			}
			return err
		}
		uc.logger.Info("reservation deleted", "reservation_id", id, "user_id", actor.UserID)
		return nil
	})
}

// lockOwned loads the reservation for update. Staff may only change their own
// reservations; admins may change any.
func (uc *reservationCommandsImpl) lockOwned(ctx context.Context, tx shared.Tx, id uuid.UUID, actor Actor) (*reservation.Reservation, error) {
	res, err := tx.Reservations().FindByIDForUpdate(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	if !actor.IsAdmin() && res.CreatedBy() != actor.UserID {
		return nil, errs.ErrReservationNotOwned
	}
	return res, nil
}

func (uc *reservationCommandsImpl) resolveOwner(ctx context.Context, tx shared.Tx, requested *string, actor Actor) (reservation.Owner, error) {
	if requested != nil && strings.TrimSpace(*requested) != "" {
		owner, err := reservation.NewOwner(*requested)
		if err != nil {
			return reservation.Owner{}, errs.Mark(err, errs.ErrDomainValidationFailed)
		}
		return owner, nil
	}

	u, err := tx.Users().FindByID(ctx, actor.UserID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return reservation.Owner{}, errs.Mark(err, errs.ErrUserNotFound)
		}
		return reservation.Owner{}, err
	}
	owner, err := reservation.NewOwner(u.DisplayName().String())
	if err != nil {
		return reservation.Owner{}, errs.Mark(err, errs.ErrDomainValidationFailed)
	}
	return owner, nil
}
