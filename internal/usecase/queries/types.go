package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTOs for the read side)

type ReservationView struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	UserID     uuid.UUID `json:"user_id"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	ShareToken string    `json:"share_token"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type ReservationListItem struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	ShareToken string    `json:"share_token"`
	CreatedAt  time.Time `json:"created_at"`
}

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	Photo     string    `json:"photo"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// PageRequest is classic page/per-page pagination with an optional name
// search, matching the portal listings this read side serves.
type PageRequest struct {
	Page    int
	PerPage int
	Search  string
}

func (p PageRequest) Normalize(defaultPerPage, maxPerPage int) PageRequest {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PerPage < 1 {
		p.PerPage = defaultPerPage
	}
	if p.PerPage > maxPerPage {
		p.PerPage = maxPerPage
	}
	return p
}

func (p PageRequest) Limit() int32 {
	return int32(p.PerPage)
}

func (p PageRequest) Offset() int32 {
	return int32((p.Page - 1) * p.PerPage)
}

type ReservationPage struct {
	Items   []*ReservationListItem `json:"items"`
	Total   int64                  `json:"total"`
	Page    int                    `json:"page"`
	PerPage int                    `json:"per_page"`
}

type RoomPage struct {
	Items   []*RoomView `json:"items"`
	Total   int64       `json:"total"`
	Page    int         `json:"page"`
	PerPage int         `json:"per_page"`
}
