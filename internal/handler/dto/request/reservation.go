package request

import (
	"strings"

	"room-reserve/internal/usecase/commands"
	"room-reserve/internal/usecase/queries"

	"github.com/google/uuid"
)

// Date, time and duration stay strings and raw ints here. Normalization and
// every validity check belong to the booking validator, so the binding layer
// only requires presence. Duration is a pointer so an explicit 0 binds and
// gets rejected with its own reason instead of a generic 400.
type CreateReservationRequest struct {
	RoomID          uuid.UUID `json:"room_id" binding:"required"`
	Date            string    `json:"date" binding:"required"`
	Time            string    `json:"time" binding:"required"`
	DurationMinutes *int      `json:"duration_minutes" binding:"required"`
}

func (r CreateReservationRequest) ToInput() commands.CreateReservationInput {
	return commands.CreateReservationInput{
		RoomID:          r.RoomID,
		Date:            r.Date,
		Time:            r.Time,
		DurationMinutes: *r.DurationMinutes,
	}
}

type RescheduleReservationRequest struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	DurationMinutes *int   `json:"duration_minutes" binding:"required"`
}

func (r RescheduleReservationRequest) ToInput() commands.RescheduleReservationInput {
	return commands.RescheduleReservationInput{
		Date:            r.Date,
		Time:            r.Time,
		DurationMinutes: *r.DurationMinutes,
	}
}

type ListQuery struct {
	Page    int    `form:"page,default=1"`
	PerPage int    `form:"per_page"`
	Search  string `form:"search"`
}

func (q ListQuery) ToPageRequest() queries.PageRequest {
	return queries.PageRequest{
		Page:    q.Page,
		PerPage: q.PerPage,
		Search:  strings.TrimSpace(q.Search),
	}
}
