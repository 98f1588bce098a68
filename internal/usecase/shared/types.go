package shared

import (
	"time"

	"github.com/google/uuid"
)

// Minimal snapshots for command-side validation reads

type RoomSnapshot struct {
	ID          uuid.UUID
	Name        string
	Capacity    int
	Photo       string
	Status      string
	RecordState string
}

type ReservationSnapshot struct {
	ID         uuid.UUID
	RoomID     uuid.UUID
	UserID     uuid.UUID
	StartAt    time.Time
	EndAt      time.Time
	ShareToken string
}
