package request

import (
	"lab-dashboard/internal/usecase/commands"
	"lab-dashboard/internal/usecase/queries"

	"github.com/google/uuid"
)

// CreateReservationRequest carries civil date and wall-clock times exactly as
// the lab writes them. An end time of "00:00" means the end of that day.
type CreateReservationRequest struct {
	EquipmentID uuid.UUID `json:"equipmentId" binding:"required"`
	Date        string    `json:"date" binding:"required,civildate"`
	StartTime   string    `json:"startTime" binding:"required,clocktime"`
	EndTime     string    `json:"endTime" binding:"required,clocktime"`
	Owner       *string   `json:"owner,omitempty" binding:"omitempty,max=100"`
	Note        *string   `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		EquipmentID: r.EquipmentID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Owner:       r.Owner,
		Note:        r.Note,
	}
}

type UpdateReservationRequest struct {
	EquipmentID *uuid.UUID `json:"equipmentId,omitempty"`
	Date        *string    `json:"date,omitempty" binding:"omitempty,civildate"`
	StartTime   *string    `json:"startTime,omitempty" binding:"omitempty,clocktime"`
	EndTime     *string    `json:"endTime,omitempty" binding:"omitempty,clocktime"`
	Owner       *string    `json:"owner,omitempty" binding:"omitempty,min=1,max=100"`
	Note        *string    `json:"note,omitempty" binding:"omitempty,max=500"`
}

func (r UpdateReservationRequest) ToInput() commands.UpdateReservationInput {
	return commands.UpdateReservationInput{
		EquipmentID: r.EquipmentID,
		Date:        r.Date,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Owner:       r.Owner,
		Note:        r.Note,
	}
}

type ListReservationsQuery struct {
	EquipmentID string `form:"equipmentId" binding:"omitempty,uuid"`
	From        string `form:"from" binding:"omitempty,civildate"`
	To          string `form:"to" binding:"omitempty,civildate"`
	Cursor      string `form:"cursor"`
	Limit       int    `form:"limit" binding:"omitempty,min=1,max=200"`
}

func (q ListReservationsQuery) ToFilter() queries.ReservationFilter {
	var f queries.ReservationFilter
	if q.EquipmentID != "" {
		if id, err := uuid.Parse(q.EquipmentID); err == nil {
			f.EquipmentID = &id
		}
	}
	if q.From != "" {
		from := q.From
		f.From = &from
	}
	if q.To != "" {
		to := q.To
		f.To = &to
	}
	return f
}

func (q ListReservationsQuery) ToCursor() *queries.Cursor {
	if q.Cursor == "" {
		return nil
	}
	return &queries.Cursor{After: q.Cursor}
}
