package queries

import (
	"context"
	"log/slog"
	"time"

	"lab-dashboard/internal/domain/availability"
	"lab-dashboard/internal/pkg/clock"
	"lab-dashboard/internal/pkg/config"

	"github.com/google/uuid"
)

type AvailabilityQueries interface {
	// Board evaluates every equipment item at the current instant, ordered by name.
	Board(ctx context.Context) (*StatusBoard, error)
	ForEquipment(ctx context.Context, equipmentID uuid.UUID) (*EquipmentStatus, error)
}

type availabilityQueriesImpl struct {
	equipment    EquipmentQueries
	reservations ReservationReadStore
	clock        clock.Clock
	location     *time.Location
	historyDays  int
	logger       *slog.Logger
}

func NewAvailabilityQueries(
	equipment EquipmentQueries,
	reservations ReservationReadStore,
	clk clock.Clock,
	cfg config.AvailabilityConfig,
	logger *slog.Logger,
) (AvailabilityQueries, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return &availabilityQueriesImpl{
		equipment:    equipment,
		reservations: reservations,
		clock:        clk,
		location:     loc,
		historyDays:  max(cfg.HistoryDays, 0),
		logger:       logger,
	}, nil
}

func (q *availabilityQueriesImpl) Board(ctx context.Context) (*StatusBoard, error) {
	now := q.now()

	list, err := q.equipment.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]availability.EquipmentItem, len(list))
	for i, e := range list {
		items[i] = e.Item()
	}

	bookings, err := q.bookingsFrom(ctx, now, nil)
	if err != nil {
		return nil, err
	}

	result := availability.Evaluate(items, bookings, now)
	q.logSkipped(result.Skipped)

	return &StatusBoard{
		GeneratedAt: now,
		Items:       result.Ordered(items),
	}, nil
}

func (q *availabilityQueriesImpl) ForEquipment(ctx context.Context, equipmentID uuid.UUID) (*EquipmentStatus, error) {
	now := q.now()

	e, err := q.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	item := e.Item()

	bookings, err := q.bookingsFrom(ctx, now, &equipmentID)
	if err != nil {
		return nil, err
	}

	result := availability.Evaluate([]availability.EquipmentItem{item}, bookings, now)
	q.logSkipped(result.Skipped)

	return &EquipmentStatus{
		GeneratedAt: now,
		View:        result.Views[item.ID],
	}, nil
}

func (q *availabilityQueriesImpl) now() time.Time {
	return q.clock.Now().In(q.location)
}

// A booking never ends after 23:59 of its own date, so older dates are always over.
func (q *availabilityQueriesImpl) bookingsFrom(ctx context.Context, now time.Time, equipmentID *uuid.UUID) ([]availability.Booking, error) {
	from := availability.DateOf(now).AddDays(-q.historyDays)
	views, err := q.reservations.FindFrom(ctx, from.String(), equipmentID)
	if err != nil {
		return nil, err
	}
	bookings := make([]availability.Booking, len(views))
	for i, v := range views {
		bookings[i] = v.Booking()
	}
	return bookings, nil
}

func (q *availabilityQueriesImpl) logSkipped(skipped []availability.Skipped) {
	for _, s := range skipped {
		attrs := []any{
			"booking_id", s.Booking.ID,
			"equipment_name", s.Booking.EquipmentName,
			"reason", string(s.Reason),
		}
		if s.Err != nil {
			attrs = append(attrs, "error", s.Err.Error())
		}
		q.logger.Warn("booking skipped by availability evaluation", attrs...)
	}
}
