package response

import (
	"time"

	"room-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
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

type ReservationListResponse struct {
	ID         uuid.UUID `json:"id"`
	RoomID     uuid.UUID `json:"room_id"`
	RoomName   string    `json:"room_name"`
	StartAt    time.Time `json:"start_at"`
	EndAt      time.Time `json:"end_at"`
	ShareToken string    `json:"share_token"`
	CreatedAt  time.Time `json:"created_at"`
}

type ReservationPageResponse struct {
	Items   []*ReservationListResponse `json:"items"`
	Total   int64                      `json:"total"`
	Page    int                        `json:"page"`
	PerPage int                        `json:"per_page"`
}

// SharedReservationResponse is the projection behind a share link. It hides
// the owner and the token itself, so a forwarded link exposes only the slot.
type SharedReservationResponse struct {
	RoomName string    `json:"room_name"`
	StartAt  time.Time `json:"start_at"`
	EndAt    time.Time `json:"end_at"`
}

func FromReservationView(view *queries.ReservationView) *ReservationResponse {
	var resp ReservationResponse
	// Field sets match by name; copier keeps the mapping maintenance-free.
	// A copy failure means the structs drifted apart, so let recovery turn
	// it into a 500.
	if err := copier.Copy(&resp, view); err != nil {
		panic(err)
	}
	return &resp
}

func FromReservationPage(page *queries.ReservationPage) *ReservationPageResponse {
	items := make([]*ReservationListResponse, len(page.Items))
	for i, item := range page.Items {
		var resp ReservationListResponse
		if err := copier.Copy(&resp, item); err != nil {
			panic(err)
		}
		items[i] = &resp
	}
	return &ReservationPageResponse{
		Items:   items,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
	}
}

func FromSharedView(view *queries.ReservationView) *SharedReservationResponse {
	return &SharedReservationResponse{
		RoomName: view.RoomName,
		StartAt:  view.StartAt,
		EndAt:    view.EndAt,
	}
}
