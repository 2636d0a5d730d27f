package availability

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusAvailable Status = "available"
	StatusInUse     Status = "in_use"
)

func (s Status) String() string {
	return string(s)
}

// EquipmentItem is a piece of shared lab equipment. Type is optional.
type EquipmentItem struct {
	ID   uuid.UUID
	Name string
	Type string
}

// Booking is a time-bounded claim on one equipment item.
// EquipmentID is the stable key; bookings carrying uuid.Nil are legacy
// records matched by exact EquipmentName instead.
type Booking struct {
	ID            uuid.UUID
	EquipmentID   uuid.UUID
	EquipmentName string
	Date          string
	StartTime     string
	EndTime       string
	Owner         string
}

type StatusView struct {
	EquipmentID      uuid.UUID
	EquipmentName    string
	EquipmentType    string
	Status           Status
	ActiveBooking    *Booking
	NextAvailableAt  *time.Time
	CurrentOwner     *string
	UpcomingBookings []Booking
}

type SkipReason string

const (
	SkipMalformed SkipReason = "malformed"
	SkipOrphaned  SkipReason = "orphaned"
)

// Skipped is a booking the aggregator could not place on any status view.
type Skipped struct {
	Booking Booking
	Reason  SkipReason
	Err     error
}

type Result struct {
	Views   map[uuid.UUID]StatusView
	Skipped []Skipped
}

// Ordered returns the views in the order the equipment was supplied.
func (r Result) Ordered(equipment []EquipmentItem) []StatusView {
	out := make([]StatusView, 0, len(r.Views))
	seen := make(map[uuid.UUID]struct{}, len(equipment))
	for _, e := range equipment {
		if _, dup := seen[e.ID]; dup {
			continue
		}
		seen[e.ID] = struct{}{}
		if v, ok := r.Views[e.ID]; ok {
			out = append(out, v)
		}
	}
	return out
}
