package response

import (
	"time"

	"room-reserve/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int32     `json:"capacity"`
	Photo     string    `json:"photo"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type RoomPageResponse struct {
	Items   []*RoomResponse `json:"items"`
	Total   int64           `json:"total"`
	Page    int             `json:"page"`
	PerPage int             `json:"per_page"`
}

func FromRoomView(view *queries.RoomView) *RoomResponse {
	var resp RoomResponse
	if err := copier.Copy(&resp, view); err != nil {
		panic(err)
	}
	return &resp
}

func FromRoomPage(page *queries.RoomPage) *RoomPageResponse {
	items := make([]*RoomResponse, len(page.Items))
	for i, item := range page.Items {
		items[i] = FromRoomView(item)
	}
	return &RoomPageResponse{
		Items:   items,
		Total:   page.Total,
		Page:    page.Page,
		PerPage: page.PerPage,
	}
}
