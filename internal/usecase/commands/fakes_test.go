//go:build unit

package commands_test

import (
	"context"
	"maps"
	"testing"
	"time"

	"lab-dashboard/internal/domain/equipment"
	"lab-dashboard/internal/domain/reservation"
	"lab-dashboard/internal/domain/user"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/pkg/errs"
	"lab-dashboard/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// assertIs matches sentinels attached with errs.Mark.
func assertIs(t *testing.T, err, target error) bool {
	t.Helper()
	if errs.Is(err, target) {
		return true
	}
	return assert.Failf(t, "error does not match target", "got %v, want %v", err, target)
}

// memoryUoW is an in-memory unit of work. A failing callback rolls every
// table back to its state before Within.
type memoryUoW struct {
	equipment    map[uuid.UUID]*equipment.Equipment
	reservations map[uuid.UUID]*reservation.Reservation
	users        map[uuid.UUID]*user.User
	lastLogin    map[uuid.UUID]time.Time

	failLastLogin error
	commits       int
}

func newMemoryUoW() *memoryUoW {
	return &memoryUoW{
		equipment:    map[uuid.UUID]*equipment.Equipment{},
		reservations: map[uuid.UUID]*reservation.Reservation{},
		users:        map[uuid.UUID]*user.User{},
		lastLogin:    map[uuid.UUID]time.Time{},
	}
}

func (u *memoryUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	eq, rs, us, ll := maps.Clone(u.equipment), maps.Clone(u.reservations), maps.Clone(u.users), maps.Clone(u.lastLogin)
	if err := fn(ctx, memoryTx{u}); err != nil {
		u.equipment, u.reservations, u.users, u.lastLogin = eq, rs, us, ll
		return err
	}
	u.commits++
	return nil
}

type memoryTx struct{ u *memoryUoW }

func (t memoryTx) Equipment() shared.EquipmentRepository      { return memoryEquipment{t.u} }
func (t memoryTx) Reservations() shared.ReservationRepository { return memoryReservations{t.u} }
func (t memoryTx) Users() shared.UserRepository               { return memoryUsers{t.u} }

func notFound(what string) error {
	return infra.WrapRepoErr(what+" not found", nil, infra.KindNotFound)
}

type memoryEquipment struct{ u *memoryUoW }

func (r memoryEquipment) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*equipment.Equipment, error) {
	e, ok := r.u.equipment[id]
	if !ok {
		return nil, notFound("equipment")
	}
	cp := *e
	return &cp, nil
}

func (r memoryEquipment) Create(_ context.Context, e *equipment.Equipment) error {
	if err := r.checkUnique(e); err != nil {
		return err
	}
	cp := *e
	r.u.equipment[e.ID()] = &cp
	return nil
}

func (r memoryEquipment) Update(_ context.Context, e *equipment.Equipment) error {
	if _, ok := r.u.equipment[e.ID()]; !ok {
		return notFound("equipment")
	}
	if err := r.checkUnique(e); err != nil {
		return err
	}
	cp := *e
	r.u.equipment[e.ID()] = &cp
	return nil
}

func (r memoryEquipment) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.u.equipment[id]; !ok {
		return notFound("equipment")
	}
	delete(r.u.equipment, id)
	return nil
}

func (r memoryEquipment) CountReservations(_ context.Context, id uuid.UUID) (int64, error) {
	var n int64
	for _, res := range r.u.reservations {
		if res.Equipment().ID == id {
			n++
		}
	}
	return n, nil
}

func (r memoryEquipment) checkUnique(e *equipment.Equipment) error {
	for id, other := range r.u.equipment {
		if id != e.ID() && other.Name() == e.Name() {
			return infra.WrapRepoErr("duplicate equipment name", nil, infra.KindDuplicateKey)
		}
	}
	return nil
}

type memoryReservations struct{ u *memoryUoW }

func (r memoryReservations) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	res, ok := r.u.reservations[id]
	if !ok {
		return nil, notFound("reservation")
	}
	cp := *res
	return &cp, nil
}

func (r memoryReservations) Create(_ context.Context, res *reservation.Reservation) error {
	cp := *res
	r.u.reservations[res.ID()] = &cp
	return nil
}

func (r memoryReservations) Update(_ context.Context, res *reservation.Reservation) error {
	if _, ok := r.u.reservations[res.ID()]; !ok {
		return notFound("reservation")
	}
	cp := *res
	r.u.reservations[res.ID()] = &cp
	return nil
}

func (r memoryReservations) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := r.u.reservations[id]; !ok {
		return notFound("reservation")
	}
	delete(r.u.reservations, id)
	return nil
}

func (r memoryReservations) RelabelEquipment(_ context.Context, equipmentID uuid.UUID, name string) (int64, error) {
	var n int64
	for id, res := range r.u.reservations {
		ref := res.Equipment()
		if ref.ID != equipmentID || ref.Name == name {
			continue
		}
		relabeled := reservation.ReconstructReservation(res.ID(), reservation.EquipmentRef{ID: ref.ID, Name: name},
			res.Slot(), res.Owner(), res.Note(), res.CreatedBy(), res.CreatedAt(), res.UpdatedAt())
		r.u.reservations[id] = relabeled
		n++
	}
	return n, nil
}

type memoryUsers struct{ u *memoryUoW }

func (r memoryUsers) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.u.users[id]
	if !ok {
		return nil, notFound("user")
	}
	return u, nil
}

func (r memoryUsers) Create(_ context.Context, u *user.User) error {
	for _, other := range r.u.users {
		if other.Email() == u.Email() {
			return infra.WrapRepoErr("duplicate email", nil, infra.KindDuplicateKey)
		}
	}
	r.u.users[u.ID()] = u
	return nil
}

func (r memoryUsers) UpdateLastLogin(_ context.Context, id uuid.UUID, at time.Time) error {
	if r.u.failLastLogin != nil {
		return r.u.failLastLogin
	}
	r.u.lastLogin[id] = at
	return nil
}
