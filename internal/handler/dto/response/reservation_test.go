//go:build unit

package response_test

import (
	"testing"

	"room-reserve/internal/handler/dto/response"
	"room-reserve/internal/usecase/queries"
	"room-reserve/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestFromReservationView(t *testing.T) {
	view := builder.NewReservationBuilder().BuildView()

	resp := response.FromReservationView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.RoomID, resp.RoomID)
	assert.Equal(t, view.RoomName, resp.RoomName)
	assert.Equal(t, view.UserID, resp.UserID)
	assert.Equal(t, view.StartAt, resp.StartAt)
	assert.Equal(t, view.EndAt, resp.EndAt)
	assert.Equal(t, view.ShareToken, resp.ShareToken)
}

func TestFromReservationPage(t *testing.T) {
	item := builder.NewReservationBuilder().BuildListItem()
	page := &queries.ReservationPage{
		Items:   []*queries.ReservationListItem{item},
		Total:   1,
		Page:    1,
		PerPage: 5,
	}

	resp := response.FromReservationPage(page)

	assert.Len(t, resp.Items, 1)
	assert.Equal(t, item.ID, resp.Items[0].ID)
	assert.Equal(t, item.RoomName, resp.Items[0].RoomName)
	assert.Equal(t, item.ShareToken, resp.Items[0].ShareToken)
	assert.Equal(t, int64(1), resp.Total)
}

func TestFromSharedView(t *testing.T) {
	view := builder.NewReservationBuilder().BuildView()

	resp := response.FromSharedView(view)

	assert.Equal(t, view.RoomName, resp.RoomName)
	assert.Equal(t, view.StartAt, resp.StartAt)
	assert.Equal(t, view.EndAt, resp.EndAt)
}

func TestFromRoomView(t *testing.T) {
	view := builder.NewRoomBuilder().BuildView()

	resp := response.FromRoomView(view)

	assert.Equal(t, view.ID, resp.ID)
	assert.Equal(t, view.Name, resp.Name)
	assert.Equal(t, view.Capacity, resp.Capacity)
	assert.Equal(t, view.Status, resp.Status)
}
