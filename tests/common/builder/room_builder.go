//go:build unit || e2e

package builder

import (
	"time"

	domroom "room-reserve/internal/domain/room"
	"room-reserve/internal/usecase/queries"
	"room-reserve/internal/usecase/shared"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID          uuid.UUID
	Name        string
	Capacity    int
	Photo       string
	Status      domroom.Status
	RecordState domroom.RecordState
	CreatedAt   time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:          uuid.New(),
		Name:        "Sala Pequena",
		Capacity:    6,
		Photo:       "sala.jpg",
		Status:      domroom.StatusAvailable,
		RecordState: domroom.RecordActive,
		CreatedAt:   time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (b *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(b)
	return b
}

func (b *RoomBuilder) BuildDomain() (*domroom.Room, error) {
	return domroom.NewRoom(b.ID, b.Name, b.Capacity, b.Photo, b.Status, b.RecordState)
}

func (b *RoomBuilder) BuildView() *queries.RoomView {
	return &queries.RoomView{
		ID:        b.ID,
		Name:      b.Name,
		Capacity:  int32(b.Capacity),
		Photo:     b.Photo,
		Status:    b.Status.String(),
		CreatedAt: b.CreatedAt,
	}
}

func (b *RoomBuilder) BuildSnapshot() *shared.RoomSnapshot {
	return &shared.RoomSnapshot{
		ID:          b.ID,
		Name:        b.Name,
		Capacity:    b.Capacity,
		Photo:       b.Photo,
		Status:      b.Status.String(),
		RecordState: b.RecordState.String(),
	}
}
