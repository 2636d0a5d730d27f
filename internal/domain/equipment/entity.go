package equipment

import (
	"errors"
	"time"

	"lab-dashboard/internal/domain/availability"

	"github.com/google/uuid"
)

var (
	ErrInvalidName     = errors.New("equipment name must be 1-255 characters")
	ErrInvalidType     = errors.New("equipment type must be at most 100 characters")
	ErrInvalidLocation = errors.New("equipment location must be at most 255 characters")
)

type Equipment struct {
	id        uuid.UUID
	name      Name
	kind      string
	location  string
	createdAt time.Time
	updatedAt time.Time
}

func NewEquipment(name, kind, location string, now time.Time) (*Equipment, error) {
	e := &Equipment{
		id:        uuid.New(),
		createdAt: now,
	}
	if err := e.Update(name, kind, location, now); err != nil {
		return nil, err
	}
	return e, nil
}

func ReconstructEquipment(id uuid.UUID, name Name, kind, location string, createdAt, updatedAt time.Time) *Equipment {
	return &Equipment{
		id:        id,
		name:      name,
		kind:      kind,
		location:  location,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// Update replaces all mutable attributes. It is all-or-nothing: on error
// the entity is left untouched.
func (e *Equipment) Update(name, kind, location string, now time.Time) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	k, err := normalizeOptional(kind, MaxTypeLength, ErrInvalidType)
	if err != nil {
		return err
	}
	loc, err := normalizeOptional(location, MaxLocationLength, ErrInvalidLocation)
	if err != nil {
		return err
	}
	e.name = n
	e.kind = k
	e.location = loc
	e.updatedAt = now
	return nil
}

// Item is the view of this equipment the availability engine consumes.
func (e *Equipment) Item() availability.EquipmentItem {
	return availability.EquipmentItem{ID: e.id, Name: e.name.String(), Type: e.kind}
}

func (e *Equipment) ID() uuid.UUID        { return e.id }
func (e *Equipment) Name() Name           { return e.name }
func (e *Equipment) Type() string         { return e.kind }
func (e *Equipment) Location() string     { return e.location }
func (e *Equipment) CreatedAt() time.Time { return e.createdAt }
func (e *Equipment) UpdatedAt() time.Time { return e.updatedAt }
