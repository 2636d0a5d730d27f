package shared

import (
	"context"
	"time"

	"lab-dashboard/internal/domain/equipment"
	"lab-dashboard/internal/domain/reservation"
	"lab-dashboard/internal/domain/user"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to one database transaction.
type Tx interface {
	Equipment() EquipmentRepository
	Reservations() ReservationRepository
	Users() UserRepository
}

type EquipmentRepository interface {
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*equipment.Equipment, error)
	Create(ctx context.Context, e *equipment.Equipment) error
	Update(ctx context.Context, e *equipment.Equipment) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountReservations(ctx context.Context, id uuid.UUID) (int64, error)
}

type ReservationRepository interface {
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error)
	Create(ctx context.Context, r *reservation.Reservation) error
	Update(ctx context.Context, r *reservation.Reservation) error
	Delete(ctx context.Context, id uuid.UUID) error
	// RelabelEquipment rewrites the denormalized equipment name after a rename.
	RelabelEquipment(ctx context.Context, equipmentID uuid.UUID, name string) (int64, error)
}

type UserRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	Create(ctx context.Context, u *user.User) error
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}
