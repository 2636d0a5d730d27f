package queries

import (
	"context"
	"log/slog"

	"lab-dashboard/internal/domain/availability"
	"lab-dashboard/internal/infra"
	"lab-dashboard/internal/pkg/errs"

	"github.com/google/uuid"
)

type ReservationQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, cursor *Cursor, limit int) (*ReservationPage, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*ReservationView, error)
	List(ctx context.Context, filter ReservationFilter, after *ReservationKey, limit int32) ([]*ReservationView, error)
	FindFrom(ctx context.Context, fromDate string, equipmentID *uuid.UUID) ([]*ReservationView, error)
}

type ReservationPage struct {
	Items      []*ReservationView
	NextCursor *string
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
	logger    *slog.Logger
}

func NewReservationQueries(readStore ReservationReadStore, logger *slog.Logger) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore, logger: logger}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, errs.ErrReservationNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) List(ctx context.Context, filter ReservationFilter, cursor *Cursor, limit int) (*ReservationPage, error) {
	if err := validateFilter(filter); err != nil {
		return nil, err
	}

	var after *ReservationKey
	if cursor != nil && cursor.After != "" {
		key, err := DecodeAfterCursor(cursor.After)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrInvalidCursor)
		}
		after = &key
	}

	pageSize := ValidateLimit(limit)
	// one extra row tells us whether another page exists
	items, err := q.readStore.List(ctx, filter, after, int32(pageSize+1)) // #nosec G115 -- bounded by MaxListLimit
	if err != nil {
		return nil, err
	}

	page := &ReservationPage{Items: items}
	if len(items) > pageSize {
		page.Items = items[:pageSize]
		last := page.Items[pageSize-1]
		next := EncodeAfterCursor(ReservationKey{Date: last.Date, StartTime: last.StartTime, ID: last.ID})
		page.NextCursor = &next
	}

	q.logger.Debug("listed reservations", "count", len(page.Items), "has_next", page.NextCursor != nil)
	return page, nil
}

func validateFilter(filter ReservationFilter) error {
	var from, to availability.CivilDate
	if filter.From != nil {
		d, err := availability.ParseCivilDate(*filter.From)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidFilter)
		}
		from = d
	}
	if filter.To != nil {
		d, err := availability.ParseCivilDate(*filter.To)
		if err != nil {
			return errs.Mark(err, errs.ErrInvalidFilter)
		}
		to = d
	}
	if filter.From != nil && filter.To != nil && to.Before(from) {
		return errs.Mark(errs.New("to must not be before from"), errs.ErrInvalidFilter)
	}
	return nil
}
