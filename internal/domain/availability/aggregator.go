package availability

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"
)

type placedBooking struct {
	booking  Booking
	interval Interval
}

// ComputeStatus returns one status view per equipment item, keyed by id.
// Instants are resolved in now's location.
func ComputeStatus(equipment []EquipmentItem, bookings []Booking, now time.Time) map[uuid.UUID]StatusView {
	return Evaluate(equipment, bookings, now).Views
}

// Evaluate is ComputeStatus that also reports the bookings it had to skip.
func Evaluate(equipment []EquipmentItem, bookings []Booking, now time.Time) Result {
	loc := now.Location()

	known := make(map[uuid.UUID]struct{}, len(equipment))
	byName := make(map[string][]uuid.UUID, len(equipment))
	for _, e := range equipment {
		if _, dup := known[e.ID]; dup {
			continue
		}
		known[e.ID] = struct{}{}
		byName[e.Name] = append(byName[e.Name], e.ID)
	}

	placed := make(map[uuid.UUID][]placedBooking, len(equipment))
	var skipped []Skipped
	for _, b := range bookings {
		owners := owningEquipment(b, known, byName)
		if len(owners) == 0 {
			skipped = append(skipped, Skipped{Booking: b, Reason: SkipOrphaned})
			continue
		}
		iv, err := ResolveBooking(b, loc)
		if err != nil {
			skipped = append(skipped, Skipped{Booking: b, Reason: SkipMalformed, Err: err})
			continue
		}
		for _, id := range owners {
			placed[id] = append(placed[id], placedBooking{booking: b, interval: iv})
		}
	}

	views := make(map[uuid.UUID]StatusView, len(equipment))
	for _, e := range equipment {
		views[e.ID] = statusOf(e, placed[e.ID], now)
	}
	return Result{Views: views, Skipped: skipped}
}

func owningEquipment(b Booking, known map[uuid.UUID]struct{}, byName map[string][]uuid.UUID) []uuid.UUID {
	if b.EquipmentID != uuid.Nil {
		if _, ok := known[b.EquipmentID]; ok {
			return []uuid.UUID{b.EquipmentID}
		}
		return nil
	}
	return byName[b.EquipmentName]
}

func statusOf(e EquipmentItem, bookings []placedBooking, now time.Time) StatusView {
	current := make([]placedBooking, 0, len(bookings))
	for _, p := range bookings {
		if p.interval.End.Before(now) {
			continue
		}
		current = append(current, p)
	}

	// Date and time strings are validated zero-padded, so byte order is chronological.
	slices.SortStableFunc(current, func(a, b placedBooking) int {
		if c := cmp.Compare(a.booking.Date, b.booking.Date); c != 0 {
			return c
		}
		return cmp.Compare(a.booking.StartTime, b.booking.StartTime)
	})

	active := slices.IndexFunc(current, func(p placedBooking) bool {
		return p.interval.Contains(now)
	})

	view := StatusView{
		EquipmentID:      e.ID,
		EquipmentName:    e.Name,
		EquipmentType:    e.Type,
		Status:           StatusAvailable,
		UpcomingBookings: make([]Booking, 0, len(current)),
	}

	nextAvailable := now
	if active >= 0 {
		hit := current[active]
		booking := hit.booking
		owner := booking.Owner
		nextAvailable = hit.interval.End

		view.Status = StatusInUse
		view.ActiveBooking = &booking
		view.CurrentOwner = &owner
	}
	view.NextAvailableAt = &nextAvailable

	// Only bookings that have not started yet are upcoming; an overlapping
	// booking already in progress is neither active nor upcoming.
	for _, p := range current {
		if !p.interval.Start.After(now) {
			continue
		}
		view.UpcomingBookings = append(view.UpcomingBookings, p.booking)
	}
	return view
}
